package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/GranblueTeam_Go/docs"
	"github.com/osse101/GranblueTeam_Go/internal/assets"
	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/bootstrap"
	"github.com/osse101/GranblueTeam_Go/internal/catalog"
	"github.com/osse101/GranblueTeam_Go/internal/config"
	"github.com/osse101/GranblueTeam_Go/internal/handler"
	"github.com/osse101/GranblueTeam_Go/internal/party"
	"github.com/osse101/GranblueTeam_Go/internal/server"
	"github.com/osse101/GranblueTeam_Go/internal/session"
	"github.com/osse101/GranblueTeam_Go/internal/validation"
)

// shutdownTimeout bounds the graceful shutdown sequence
const shutdownTimeout = 15 * time.Second

// @title hensei gateway API
// @version 1.0
// @description Backend-for-frontend for the granblue.team party builder.
// @BasePath /
func main() {
	if err := run(); err != nil {
		slog.Error("Gateway failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.SetupStorage(ctx, cfg)
	if err != nil {
		return err
	}

	client := backend.NewClient(cfg.APIURL, cfg.BackendTimeout)
	deps := server.Dependencies{
		Backend: client,
		Parties: party.NewService(client, storage.EditKeys, assets.NewImages(cfg.ImageURL)),
		Catalog: catalog.NewService(client, catalog.CacheConfig{
			Size: cfg.CatalogCacheSize,
			TTL:  cfg.CatalogCacheTTL,
		}),
		Sessions: session.NewManager(session.CookieOptions{
			Secure: cfg.CookieSecure,
			Domain: cfg.CookieDomain,
		}),
		Bodies:   validation.NewBodyValidator(),
		Checkers: append([]handler.HealthChecker{backend.NewHealthChecker(client)}, storage.Checkers()...),
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, deps)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Storage: storage,
	})
	return err
}
