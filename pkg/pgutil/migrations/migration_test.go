package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/config"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/pgutil"
)

type entryDao struct {
	bun.BaseModel `bun:"table:entries"`
	ID            int64  `bun:",pk,autoincrement"`
	Wallet        string `bun:",notnull,type:varchar(42)"`
	Note          string `bun:",nullzero"`
}

func setupDB(t *testing.T) (context.Context, *bun.DB) {
	t.Helper()
	pgutil.RequireDocker(t)

	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)
	return context.Background(), db
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:         "invalid-host-that-does-not-exist",
		Port:         5432,
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 1,
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		db.Close()
		t.Fatal("ConnectDB() should fail with invalid host")
	}
}

func TestCreateSchemaAndDropTables(t *testing.T) {
	ctx, db := setupDB(t)

	if err := CreateSchema(ctx, db, &entryDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "entries")

	if err := CreateSchema(ctx, db, &entryDao{}); err != nil {
		t.Fatalf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &entryDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "entries")

	if err := DropTables(ctx, db, &entryDao{}); err != nil {
		t.Fatalf("DropTables() second call failed: %v", err)
	}
}

func TestTruncateTables(t *testing.T) {
	ctx, db := setupDB(t)

	if err := CreateSchema(ctx, db, &entryDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	entries := []*entryDao{{Wallet: "0xaaa"}, {Wallet: "0xbbb"}}
	if _, err := db.NewInsert().Model(&entries).Exec(ctx); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "entries", 2)

	if err := TruncateTables(ctx, db, &entryDao{}); err != nil {
		t.Fatalf("TruncateTables() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "entries", 0)
	pgutil.AssertTableExists(t, db, "entries")
}

func TestCreateAndDropModelIndexes(t *testing.T) {
	ctx, db := setupDB(t)

	if err := CreateSchema(ctx, db, &entryDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelIndexes(ctx, db, &entryDao{}, "wallet", "note"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_entries_wallet")
	pgutil.AssertIndexExists(t, db, "idx_entries_note")

	if err := DropModelIndexes(ctx, db, &entryDao{}, "wallet", "note"); err != nil {
		t.Fatalf("DropModelIndexes() failed: %v", err)
	}

	var exists bool
	query := `SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`
	if err := db.NewRaw(query, "idx_entries_wallet").Scan(ctx, &exists); err != nil {
		t.Fatalf("failed to check index: %v", err)
	}
	if exists {
		t.Fatal("idx_entries_wallet should be dropped")
	}
}

func TestRunMigrations_Commands(t *testing.T) {
	ctx, db := setupDB(t)

	collection := migrate.NewMigrations()
	collection.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return CreateSchema(ctx, db, &entryDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return DropTables(ctx, db, &entryDao{})
	})
	migrator := migrate.NewMigrator(db, collection)

	for _, cmd := range []string{"init", "up", "status"} {
		if err := RunMigrations(ctx, migrator, cmd); err != nil {
			t.Fatalf("RunMigrations(%s) failed: %v", cmd, err)
		}
	}
	pgutil.AssertTableExists(t, db, "entries")

	if err := RunMigrations(ctx, migrator, "down"); err != nil {
		t.Fatalf("RunMigrations(down) failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "entries")

	if err := RunMigrations(ctx, migrator, "sideways"); err == nil {
		t.Fatal("expected error for unknown command")
	}
	if err := RunMigrations(ctx, migrator); err == nil {
		t.Fatal("expected error for missing command")
	}
}
