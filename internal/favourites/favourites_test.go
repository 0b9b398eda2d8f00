package favourites

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type memStore struct {
	data   map[string][]byte
	putErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *memStore) Put(ctx context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func TestNewSetDropsDuplicates(t *testing.T) {
	s := NewSet("a", "b", "a", "", "c")

	want := []string{"a", "b", "c"}
	if got := s.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestToggleTwiceRestoresSet(t *testing.T) {
	for _, start := range []Set{NewSet(), NewSet("a"), NewSet("a", "b", "c")} {
		for _, id := range []string{"a", "b", "z"} {
			got := start.Toggle(id).Toggle(id)
			if !got.Equal(start) {
				t.Errorf("Toggling %q twice on %v gave %v", id, start.IDs(), got.IDs())
			}
		}
	}
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	s := NewSet("a", "b")
	added := s.Toggle("c")
	removed := s.Toggle("a")

	if s.Len() != 2 || !s.Has("a") || s.Has("c") {
		t.Errorf("Expected original set unchanged, got %v", s.IDs())
	}
	if !added.Has("c") || added.Len() != 3 {
		t.Errorf("Expected c added, got %v", added.IDs())
	}
	if removed.Has("a") || removed.Len() != 1 {
		t.Errorf("Expected a removed, got %v", removed.IDs())
	}
}

func TestLoadMissingEntryIsEmpty(t *testing.T) {
	s, err := Load(context.Background(), newMemStore(), DefaultKey)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty set, got %v", s.IDs())
	}
}

func TestLoadMalformedEntryIsEmpty(t *testing.T) {
	store := newMemStore()
	for _, raw := range []string{"not json", `{"a":1}`, `[1,2]`, "null", ""} {
		store.data[DefaultKey] = []byte(raw)

		s, err := Load(context.Background(), store, DefaultKey)
		if err != nil {
			t.Errorf("Load(%q) failed: %v", raw, err)
		}
		if s.Len() != 0 {
			t.Errorf("Load(%q): expected empty set, got %v", raw, s.IDs())
		}
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	if err := Save(ctx, store, "k", NewSet("x", "y")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := string(store.data["k"]); got != `["x","y"]` {
		t.Errorf("Expected JSON array, got %s", got)
	}

	s, err := Load(ctx, store, "k")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !s.Equal(NewSet("x", "y")) {
		t.Errorf("Expected [x y], got %v", s.IDs())
	}
}

func TestToggleThroughStore(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	key := Key("device-1")

	s, err := Toggle(ctx, store, key, "station-7")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !s.Has("station-7") {
		t.Error("Expected station-7 to be a favourite")
	}

	s, err = Toggle(ctx, store, key, "station-7")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty set after second toggle, got %v", s.IDs())
	}
	if _, ok := store.data[DefaultKey]; ok {
		t.Error("Expected device key to be used, not the default key")
	}
}

func TestToggleStoreFailure(t *testing.T) {
	store := newMemStore()
	store.putErr = errors.New("disk full")

	if _, err := Toggle(context.Background(), store, DefaultKey, "a"); err == nil {
		t.Error("Expected write failure to surface")
	}
}

func TestKey(t *testing.T) {
	if got := Key(""); got != "favourites" {
		t.Errorf("Expected 'favourites', got '%s'", got)
	}
	if got := Key("abc"); got != "favourites:abc" {
		t.Errorf("Expected 'favourites:abc', got '%s'", got)
	}
}
