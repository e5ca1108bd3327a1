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
		log.Println("creating raffle_state table...")
		if err := mghelper.CreateSchema(ctx, db, &ledger.RaffleStateDao{}); err != nil {
			return err
		}
		// At most one winner row, ever.
		_, err := db.ExecContext(ctx, "ALTER TABLE raffle_state ADD CONSTRAINT singleton_check CHECK (id = 1)")
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping raffle_state table...")
		return mghelper.DropTables(ctx, db, &ledger.RaffleStateDao{})
	})
}
