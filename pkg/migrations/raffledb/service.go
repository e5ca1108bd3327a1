// Package raffledb holds all the migrations for the raffle database
package raffledb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the raffle database
var Migrations = migrate.NewMigrations()
