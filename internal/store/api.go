// Package store provides document stores for per-guild moderation state
package store

// Backend persists a single document as an opaque byte slice.
//
// Load returns nil bytes and nil error when no document exists yet.
type Backend interface {
	Load() ([]byte, error)
	Save(data []byte) error
}
