package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jengzang/velomap-backend-go/internal/database"
	"github.com/jengzang/velomap-backend-go/internal/favourites"
)

func newTestKV(t *testing.T) *KVRepository {
	t.Helper()
	conn, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := database.NewMigrationManager(conn).RunMigrations(); err != nil {
		t.Fatalf("RunMigrations failed: %v", err)
	}
	return NewKVRepository(conn)
}

func TestKVGetMissing(t *testing.T) {
	repo := newTestKV(t)

	if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, favourites.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestKVPutOverwrites(t *testing.T) {
	repo := newTestKV(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "k", []byte(`["a"]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Put(ctx, "k", []byte(`["a","b"]`)); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `["a","b"]` {
		t.Errorf("Expected latest value, got %s", got)
	}
}

func TestKVBacksFavourites(t *testing.T) {
	repo := newTestKV(t)
	ctx := context.Background()
	key := favourites.Key("dev")

	if _, err := favourites.Toggle(ctx, repo, key, "s1"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if _, err := favourites.Toggle(ctx, repo, key, "s2"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	set, err := favourites.Load(ctx, repo, key)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !set.Equal(favourites.NewSet("s1", "s2")) {
		t.Errorf("Expected [s1 s2], got %v", set.IDs())
	}

	// a corrupt entry reads back as no favourites
	if err := repo.Put(ctx, key, []byte("{corrupt")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	set, err = favourites.Load(ctx, repo, key)
	if err != nil || set.Len() != 0 {
		t.Errorf("Expected empty set from corrupt entry, got %v (err %v)", set.IDs(), err)
	}
}
