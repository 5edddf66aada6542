package store

import (
	"encoding/json"
	"sync"
	"time"
)

// Warning is a single immutable warning record
type Warning struct {
	Reason    string    `json:"reason"`
	Moderator string    `json:"moderator"`
	Timestamp time.Time `json:"timestamp"`
}

// Warnings stores ordered warning records per (guild, user) pair.
//
// Same load-modify-save discipline as Config: one mutex per document, corrupt
// or missing document reads as empty.
type Warnings struct {
	backend Backend
	m       sync.Mutex
}

// NewWarnings provides Warnings ledger instance over given backend
func NewWarnings(backend Backend) *Warnings {
	return &Warnings{backend: backend}
}

func (s *Warnings) load() map[string]map[string][]Warning {
	doc := make(map[string]map[string][]Warning)

	data, err := s.backend.Load()
	if err != nil || len(data) == 0 {
		return doc
	}

	if json.Unmarshal(data, &doc) != nil {
		return make(map[string]map[string][]Warning)
	}

	return doc
}

func (s *Warnings) save(doc map[string]map[string][]Warning) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return s.backend.Save(data)
}

// List returns warnings for given user in insertion order, empty if none
func (s *Warnings) List(guildID, userID string) []Warning {
	s.m.Lock()
	defer s.m.Unlock()

	return s.load()[guildID][userID]
}

// Count returns the number of warnings for given user
func (s *Warnings) Count(guildID, userID string) int {
	s.m.Lock()
	defer s.m.Unlock()

	return len(s.load()[guildID][userID])
}

// Add appends a warning record and returns the resulting total, atomically
// with the write.
func (s *Warnings) Add(guildID, userID, reason, moderator string) (count int, err error) {
	s.m.Lock()
	defer s.m.Unlock()

	doc := s.load()

	users, ok := doc[guildID]
	if !ok {
		users = make(map[string][]Warning)
		doc[guildID] = users
	}

	users[userID] = append(users[userID], Warning{
		Reason:    reason,
		Moderator: moderator,
		Timestamp: time.Now().UTC(),
	})

	err = s.save(doc)
	if err != nil {
		return 0, err
	}

	return len(users[userID]), nil
}

// Clear removes all warnings for given user; no-op if none exist
func (s *Warnings) Clear(guildID, userID string) error {
	s.m.Lock()
	defer s.m.Unlock()

	doc := s.load()

	users, ok := doc[guildID]
	if !ok {
		return nil
	}

	if _, ok = users[userID]; !ok {
		return nil
	}

	delete(users, userID)

	return s.save(doc)
}
