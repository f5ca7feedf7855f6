package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/RaidCompanion_Go/internal/bootstrap"
	"github.com/osse101/RaidCompanion_Go/internal/config"
	"github.com/osse101/RaidCompanion_Go/internal/server"
)

const (
	serviceName     = "raidcompanion-api"
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title RaidCompanion API
// @version 1.0
// @description Recycling chains, reverse material search, quest tracking and requirement calculation for raid loot.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg, serviceName)
	if err != nil {
		slog.Error("Failed to setup logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "detail", w)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	repos, err := bootstrap.InitializeRepositories(startCtx, cfg)
	cancel()
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	services := bootstrap.InitializeServices(cfg, repos)
	srv := server.NewServer(bootstrap.ServerOptions(cfg), services.ServerServices(repos))
	background := bootstrap.StartBackground(cfg, repos, services)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:       srv,
		Background:   background,
		Repositories: repos,
	})

	if exitCode != 0 {
		logFile.Close()
		os.Exit(exitCode)
	}
}
