package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/Materials_Go/internal/bootstrap"
	"github.com/osse101/Materials_Go/internal/config"
	"github.com/osse101/Materials_Go/internal/database"
	"github.com/osse101/Materials_Go/internal/diagnostics"
	"github.com/osse101/Materials_Go/internal/event"
	"github.com/osse101/Materials_Go/internal/material"
	"github.com/osse101/Materials_Go/internal/reload"
	"github.com/osse101/Materials_Go/internal/scheduler"
	"github.com/osse101/Materials_Go/internal/server"
	"github.com/osse101/Materials_Go/internal/sse"
	"github.com/osse101/Materials_Go/internal/worker"
)

// watchQueueSize bounds pending watch ticks; a full queue skips the tick
const watchQueueSize = 1

func main() {
	if err := config.ValidateEnv(); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.Info(bootstrap.LogMsgStartingService, "version", cfg.Version, "environment", cfg.Environment)

	warnings, _ := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := bootstrap.ContentPaths{
		MaterialsDir: cfg.MaterialsDir,
		ItemsPath:    cfg.ItemsPath,
		LocalePath:   cfg.LocalePath,
	}
	result, err := bootstrap.BuildRegistry(ctx, paths, diagnostics.NewLogSink(slog.Default()))
	if err != nil {
		slog.Error("Failed to build material registry", "error", err)
		os.Exit(1)
	}
	store := material.NewStore(result.Registry, bootstrap.RegistryBuilder(paths, false))

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	var pool database.Pool
	var syncer reload.Syncer
	if cfg.SyncToDB {
		dbPool, err := bootstrap.ConnectDatabase(ctx, cfg)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		pool = dbPool
		syncer = bootstrap.NewMaterialSyncer(dbPool)
	}

	reloads := reload.NewService(store, bus, syncer)
	if _, err := reloads.Sync(ctx, store.Registry(), ""); err != nil {
		slog.Error("Failed to sync materials", "error", err)
		os.Exit(1)
	}

	workers := worker.NewPool(cfg.WorkerCount, watchQueueSize)
	sched := scheduler.New(workers)
	if cfg.WatchInterval > 0 {
		watch := reload.NewWatchJob(reloads, cfg.MaterialsDir, cfg.ItemsPath, cfg.LocalePath)
		if err := watch.Prime(); err != nil {
			slog.Error("Failed to start content watch", "error", err)
			os.Exit(1)
		}
		workers.Start()
		sched.Schedule(cfg.WatchInterval, watch)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		DBPool:         pool,
		Reloader:       reloads,
		Events:         hub,
	}, store)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	go reloadOnHangup(ctx, reloads)

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Events:  hub,
		Server:  srv,
		Workers: []bootstrap.Halter{sched, workers},
		DBPool:  pool,
	})
}

// reloadOnHangup rebuilds the registry on every SIGHUP until ctx ends
func reloadOnHangup(ctx context.Context, reloads *reload.Service) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			// failures are logged and published by the service
			_, _ = reloads.ReloadFrom(ctx, event.SourceSignal)
		}
	}
}
