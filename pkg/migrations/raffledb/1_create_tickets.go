package raffledb

import (
	"context"
	"log"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ledger"
	mghelper "github.com/joshuatochinwachi/ronhub-raffle/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating tickets table...")
		if err := mghelper.CreateSchema(ctx, db, &ledger.TicketDao{}); err != nil {
			return err
		}
		// Ticket ids start at 1; the upper bound is configuration and is enforced by the allocator.
		if _, err := db.ExecContext(ctx, "ALTER TABLE tickets ADD CONSTRAINT tickets_id_positive CHECK (id >= 1)"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &ledger.TicketDao{}, "buyer_address", "created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping tickets table...")
		return mghelper.DropTables(ctx, db, &ledger.TicketDao{})
	})
}
