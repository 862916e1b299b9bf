package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/Materials_Go/internal/database"
	"github.com/osse101/Materials_Go/internal/database/postgres"
)

func main() {
	drop := flag.Bool("drop", false, "roll back every migration and re-apply them instead of truncating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *drop {
		log.Println("Rolling back all migrations...")
		if err := database.ResetMigrations(ctx, connString); err != nil {
			log.Fatalf("Failed to reset migrations: %v", err)
		}
		log.Println("Re-applying migrations...")
		if err := database.RunMigrations(ctx, connString); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		log.Println("Schema recreated.")
		return
	}

	pool, err := database.NewPool(ctx, connString, database.DefaultMinConnections, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := postgres.TruncateSnapshots(ctx, pool); err != nil {
		log.Fatalf("Failed to truncate material snapshots: %v", err)
	}
	log.Println("Material snapshots cleared. The next sync rewrites every row.")
}
