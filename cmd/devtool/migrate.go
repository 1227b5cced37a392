package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GranblueTeam_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or list edit key store migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}
	subcmd := args[0]
	if subcmd != "up" && subcmd != "status" {
		return fmt.Errorf("unknown subcommand %q: want up or status", subcmd)
	}

	pool, err := openPool()
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := context.Background()
	if subcmd == "up" {
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
		return nil
	}

	PrintHeader("Migration status")
	statuses, err := database.MigrationStatus(ctx, pool)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		fmt.Fprintf(out, "  %05d  %-10s %s\n", s.Source.Version, s.State, s.Source.Path)
	}
	return nil
}

func openPool() (*pgxpool.Pool, error) {
	dbURL := os.Getenv(envDatabaseURL)
	if dbURL == "" {
		return nil, fmt.Errorf("%s must be set", envDatabaseURL)
	}
	return database.NewPool(dbURL, database.DefaultMinConnections, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
}
