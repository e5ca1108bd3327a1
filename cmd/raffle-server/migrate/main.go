package main

import (
	"context"
	"flag"
	"log"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/config"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/migrations/raffledb"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/pgutil"
	mghelper "github.com/joshuatochinwachi/ronhub-raffle/pkg/pgutil/migrations"

	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadRaffleServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	// Connect to database
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for raffle database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, raffledb.Migrations)

	if err = mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}
