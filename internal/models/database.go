package models

import (
	"fmt"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// Keys for the single-record settings stored in bolthold
const (
	keyIdentity  = "user_identity"
	keyFavorites = "favorites"
	keyTheme     = "theme"
)

// UserIdentity is the persisted per-installation opaque identifier
type UserIdentity struct {
	Value     string
	CreatedAt time.Time
}

// FavoritesSnapshot is the whole favorites collection persisted as one
// last-write-wins record, newest entry first
type FavoritesSnapshot struct {
	Entries   []Recommendation
	UpdatedAt time.Time
}

// ThemeSetting is the persisted UI theme choice
type ThemeSetting struct {
	Value     Theme
	UpdatedAt time.Time
}

// Database wraps the bolthold store
type Database struct {
	store *bolthold.Store
}

// NewDatabase creates a new database connection
func NewDatabase(path string) (*Database, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{store: store}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.store.Close()
}

// Identity operations

// GetUserIdentity retrieves the persisted identity, or "" if none exists
func (db *Database) GetUserIdentity() (string, error) {
	var identity UserIdentity
	err := db.store.Get(keyIdentity, &identity)
	if err == bolthold.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return identity.Value, nil
}

// SaveUserIdentity persists the identity value
func (db *Database) SaveUserIdentity(value string) error {
	return db.store.Upsert(keyIdentity, &UserIdentity{
		Value:     value,
		CreatedAt: time.Now(),
	})
}

// Favorites operations

// GetFavorites retrieves the persisted favorites collection, newest first.
// A missing snapshot yields an empty collection, not an error.
func (db *Database) GetFavorites() ([]Recommendation, error) {
	var snapshot FavoritesSnapshot
	err := db.store.Get(keyFavorites, &snapshot)
	if err == bolthold.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snapshot.Entries, nil
}

// SaveFavorites persists the entire favorites collection in one snapshot
func (db *Database) SaveFavorites(entries []Recommendation) error {
	return db.store.Upsert(keyFavorites, &FavoritesSnapshot{
		Entries:   entries,
		UpdatedAt: time.Now(),
	})
}

// Theme operations

// GetTheme retrieves the persisted theme, or "" if none was saved yet
func (db *Database) GetTheme() (Theme, error) {
	var setting ThemeSetting
	err := db.store.Get(keyTheme, &setting)
	if err == bolthold.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// SaveTheme persists the theme choice
func (db *Database) SaveTheme(theme Theme) error {
	return db.store.Upsert(keyTheme, &ThemeSetting{
		Value:     theme,
		UpdatedAt: time.Now(),
	})
}
