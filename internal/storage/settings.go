package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// GetInt reads an integer setting. Missing keys read as 0.
func (s *Store) GetInt(key string) (int, error) {
	var v int64
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return int(v), nil
}

// SetInt writes an integer setting, replacing any previous value.
func (s *Store) SetInt(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// KV adapts the settings table to the game's high score store. The game
// loop cannot handle errors, so they are passed to OnError instead.
type KV struct {
	store   *Store
	OnError func(error)
}

// NewKV creates a KV backed by store. onError may be nil.
func NewKV(store *Store, onError func(error)) *KV {
	return &KV{store: store, OnError: onError}
}

// Get returns the stored value, or 0 on a missing key or error.
func (kv *KV) Get(key string) int {
	v, err := kv.store.GetInt(key)
	if err != nil {
		kv.report(err)
		return 0
	}
	return v
}

// Set stores value under key.
func (kv *KV) Set(key string, value int) {
	if err := kv.store.SetInt(key, value); err != nil {
		kv.report(err)
	}
}

func (kv *KV) report(err error) {
	if kv.OnError != nil {
		kv.OnError(err)
	}
}
