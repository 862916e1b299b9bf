package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/Materials_Go/internal/database/migrations"
)

// RunMigrations applies the embedded migrations to the database behind connString
func RunMigrations(ctx context.Context, connString string) error {
	return withMigrator(connString, func(db *sql.DB) error {
		if err := goose.UpContext(ctx, db, "."); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
		}
		version, err := goose.GetDBVersionContext(ctx, db)
		if err == nil {
			slog.Default().Info(LogMsgMigrationsApplied, "version", version)
		}
		return nil
	})
}

// ResetMigrations rolls back every migration, dropping the snapshot tables
func ResetMigrations(ctx context.Context, connString string) error {
	return withMigrator(connString, func(db *sql.DB) error {
		if err := goose.ResetContext(ctx, db, "."); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToResetMigrations, err)
		}
		return nil
	})
}

// ConnString returns a database/sql compatible connection string for an existing pool
func ConnString(pool *pgxpool.Pool) string {
	return stdlib.RegisterConnConfig(pool.Config().ConnConfig)
}

func withMigrator(connString string, fn func(db *sql.DB) error) error {
	db, err := sql.Open(MigrationDriver, connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrationDB, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	return fn(db)
}
