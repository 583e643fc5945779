package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/matteocalo/photodesk/db"
	"github.com/matteocalo/photodesk/internal"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
	}
	migrateRollback bool
	migrateDir      string
)

const migrationsTable = "schema_migrations"

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "", "read migrations from this directory instead of the embedded set")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Database.Driver != internal.DriverPostgres {
		return fmt.Errorf("migrate needs the postgres driver, got %q (sqlite schemas are created on startup)", cfg.Database.Driver)
	}

	sqlDB, err := goose.OpenDBWithDriver("pgx", cfg.Database.Source)
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v\n", err)
	}
	defer sqlDB.Close()

	command := "up"
	if migrateRollback {
		command = "down"
	}

	if err := Migrate(ctx, sqlDB, command, migrateDir); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}
	return nil
}

// Migrate runs a goose command. An empty dir selects the embedded migrations.
func Migrate(ctx context.Context, sqlDB *sql.DB, command, dir string) error {
	goose.SetTableName(migrationsTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if dir == "" {
		goose.SetBaseFS(db.Migrations)
		defer goose.SetBaseFS(nil)
		dir = db.MigrationsDir
	}

	return goose.RunContext(ctx, command, sqlDB, dir)
}
