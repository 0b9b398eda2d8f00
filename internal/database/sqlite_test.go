package database

import "testing"

func TestOpenRunsMigrations(t *testing.T) {
	conn, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	mgr := NewMigrationManager(conn)
	if err := mgr.RunMigrations(); err != nil {
		t.Fatalf("RunMigrations failed: %v", err)
	}
	// a second run is a no-op
	if err := mgr.RunMigrations(); err != nil {
		t.Fatalf("second RunMigrations failed: %v", err)
	}

	applied, err := mgr.GetAppliedMigrations()
	if err != nil {
		t.Fatalf("GetAppliedMigrations failed: %v", err)
	}
	if !applied[1] {
		t.Errorf("Expected migration 1 to be applied, got %v", applied)
	}

	if _, err := conn.Exec("INSERT INTO kv_store (key, value) VALUES ('k', 'v')"); err != nil {
		t.Errorf("Expected kv_store table to exist: %v", err)
	}
}

func TestLoadMigrationsOrdered(t *testing.T) {
	migrations, err := NewMigrationManager(nil).LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations failed: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("Expected embedded migrations")
	}
	for i := 1; i < len(migrations); i++ {
		if migrations[i-1].Version >= migrations[i].Version {
			t.Errorf("Migrations out of order: %d before %d", migrations[i-1].Version, migrations[i].Version)
		}
	}
	if migrations[0].Name != "001_create_kv_store" {
		t.Errorf("Expected 001_create_kv_store, got %s", migrations[0].Name)
	}
}
