package favourites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// DefaultKey is the entry favourites are kept under
const DefaultKey = "favourites"

// ErrNotFound is returned by a Store for a key it has never seen
var ErrNotFound = errors.New("key not found")

// Store is a key-value collaborator holding raw values
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Key returns the entry for a device, or DefaultKey without one
func Key(deviceID string) string {
	if deviceID == "" {
		return DefaultKey
	}
	return DefaultKey + ":" + deviceID
}

// Load reads the set stored under key. A missing or unreadable entry is an
// empty set; only a failing store is an error.
func Load(ctx context.Context, store Store, key string) (Set, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return Set{}, nil
	}
	if err != nil {
		return Set{}, fmt.Errorf("failed to read favourites: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Printf("[Favourites] Ignoring malformed entry %q: %v", key, err)
		return Set{}, nil
	}
	return NewSet(ids...), nil
}

// Save overwrites the entry under key with s as a JSON array
func Save(ctx context.Context, store Store, key string, s Set) error {
	raw, err := json.Marshal(s.IDs())
	if err != nil {
		return fmt.Errorf("failed to encode favourites: %w", err)
	}
	if err := store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write favourites: %w", err)
	}
	return nil
}

// Toggle loads the set under key, flips id and saves the result
func Toggle(ctx context.Context, store Store, key, id string) (Set, error) {
	current, err := Load(ctx, store, key)
	if err != nil {
		return Set{}, err
	}

	next := current.Toggle(id)
	if err := Save(ctx, store, key, next); err != nil {
		return Set{}, err
	}
	return next, nil
}
