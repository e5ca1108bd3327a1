package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/migrations/raffledb"
	mghelper "github.com/joshuatochinwachi/ronhub-raffle/pkg/pgutil"
)

func setupMigrator(t *testing.T) (context.Context, *bun.DB, *migrate.Migrator) {
	t.Helper()
	mghelper.RequireDocker(t)

	db, cleanup := mghelper.SetupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, raffledb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return ctx, db, migrator
}

func TestRaffleDBMigrations_Apply(t *testing.T) {
	ctx, db, migrator := setupMigrator(t)

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range []string{"tickets", "raffle_state", "bun_migrations"} {
		mghelper.AssertTableExists(t, db, table)
	}
	mghelper.AssertIndexExists(t, db, "idx_tickets_buyer_address")
	mghelper.AssertIndexExists(t, db, "idx_tickets_created_at")
}

func TestRaffleDBMigrations_Constraints(t *testing.T) {
	ctx, db, migrator := setupMigrator(t)
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO tickets (id, buyer_address, tx_hash) VALUES (0, '0x1111111111111111111111111111111111111111', '0xaa')`,
	); err == nil {
		t.Fatal("expected ticket id 0 to violate the positive id check")
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO raffle_state (id, draw_id, winner_ticket_id, winner_address, winner_tx_hash, drawn_at, is_complete)
		 VALUES (2, gen_random_uuid(), 1, '0x1111111111111111111111111111111111111111', '0xaa', now(), TRUE)`,
	); err == nil {
		t.Fatal("expected raffle_state id 2 to violate the singleton check")
	}
}

func TestRaffleDBMigrations_Rollback(t *testing.T) {
	ctx, db, migrator := setupMigrator(t)

	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to revert migrations")
	}

	mghelper.AssertTableNotExists(t, db, "tickets")
	mghelper.AssertTableNotExists(t, db, "raffle_state")
}

func TestRaffleDBMigrations_Idempotent(t *testing.T) {
	ctx, _, migrator := setupMigrator(t)

	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("first Migrate() failed: %v", err)
	}
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Errorf("expected no migrations on second run, got %s", group)
	}
}
