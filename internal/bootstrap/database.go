package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Materials_Go/internal/config"
	"github.com/osse101/Materials_Go/internal/database"
	"github.com/osse101/Materials_Go/internal/database/postgres"
	"github.com/osse101/Materials_Go/internal/material"
)

// ConnectDatabase opens the connection pool and applies pending migrations
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	connString := cfg.GetDBConnString()

	if err := database.RunMigrations(ctx, connString); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
	}

	pool, err := database.NewPool(ctx, connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}
	return pool, nil
}

// NewMaterialSyncer returns a syncer writing registry snapshots through pool
func NewMaterialSyncer(pool *pgxpool.Pool) *material.Syncer {
	return material.NewSyncer(postgres.NewMaterialRepository(pool))
}
