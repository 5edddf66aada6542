package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
)

type guildRoles struct {
	ModRoleID   int64 `json:"mod_role_id,omitempty"`
	AdminRoleID int64 `json:"admin_role_id,omitempty"`
}

// Config stores per-guild moderator and administrator role IDs.
//
// Every mutation is a full load-modify-save of the backing document under a
// single mutex, so concurrent writers to different guild keys cannot lose
// updates. An unreadable or corrupt document is treated as empty
// configuration and never surfaces as an error to readers.
type Config struct {
	backend Backend
	m       sync.Mutex
}

// NewConfig provides Config store instance over given backend
func NewConfig(backend Backend) *Config {
	return &Config{backend: backend}
}

func (s *Config) load() map[string]*guildRoles {
	doc := make(map[string]*guildRoles)

	data, err := s.backend.Load()
	if err != nil || len(data) == 0 {
		return doc
	}

	if json.Unmarshal(data, &doc) != nil {
		return make(map[string]*guildRoles)
	}

	return doc
}

func (s *Config) save(doc map[string]*guildRoles) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return s.backend.Save(data)
}

func (s *Config) set(guildID string, update func(*guildRoles)) error {
	s.m.Lock()
	defer s.m.Unlock()

	doc := s.load()

	roles, ok := doc[guildID]
	if !ok {
		roles = &guildRoles{}
		doc[guildID] = roles
	}

	update(roles)

	return s.save(doc)
}

// ModeratorRole returns configured moderator role ID for given guild
func (s *Config) ModeratorRole(guildID string) (roleID string, ok bool) {
	s.m.Lock()
	defer s.m.Unlock()

	roles := s.load()[guildID]
	if roles == nil || roles.ModRoleID == 0 {
		return "", false
	}

	return strconv.FormatInt(roles.ModRoleID, 10), true
}

// AdministratorRole returns configured administrator role ID for given guild
func (s *Config) AdministratorRole(guildID string) (roleID string, ok bool) {
	s.m.Lock()
	defer s.m.Unlock()

	roles := s.load()[guildID]
	if roles == nil || roles.AdminRoleID == 0 {
		return "", false
	}

	return strconv.FormatInt(roles.AdminRoleID, 10), true
}

// SetModeratorRole sets moderator role ID for given guild
func (s *Config) SetModeratorRole(guildID, roleID string) error {
	id, err := parseID(roleID)
	if err != nil {
		return err
	}

	return s.set(guildID, func(roles *guildRoles) {
		roles.ModRoleID = id
	})
}

// SetAdministratorRole sets administrator role ID for given guild
func (s *Config) SetAdministratorRole(guildID, roleID string) error {
	id, err := parseID(roleID)
	if err != nil {
		return err
	}

	return s.set(guildID, func(roles *guildRoles) {
		roles.AdminRoleID = id
	})
}

func parseID(roleID string) (int64, error) {
	id, err := strconv.ParseInt(roleID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid role ID %q: %w", roleID, err)
	}

	return id, nil
}
