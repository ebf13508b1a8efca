package features

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
)

const storageKey = "catalog:features"

// Store keeps the admin panel's feature list as process-wide state: loaded
// once at startup, saved back on every change. Single writer in practice
// (one admin tab), but guarded anyway since handlers run concurrently.
type Store struct {
	mu   sync.RWMutex
	rdb  *redis.Client
	list []string
}

// NewStore builds a store backed by rdb. A nil client keeps the list in
// memory only, which is what tests use.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Load pulls the persisted list. A missing key is an empty list, not an
// error.
func (s *Store) Load(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	raw, err := s.rdb.Get(ctx, storageKey).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return err
	}

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
	return nil
}

// List returns a copy of the current feature list.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.list))
	copy(out, s.list)
	return out
}

// Replace swaps the whole list and persists it.
func (s *Store) Replace(ctx context.Context, list []string) error {
	s.mu.Lock()
	s.list = append([]string(nil), list...)
	s.mu.Unlock()

	return s.save(ctx)
}

func (s *Store) save(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	s.mu.RLock()
	raw, err := json.Marshal(s.list)
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, storageKey, raw, 0).Err()
}
