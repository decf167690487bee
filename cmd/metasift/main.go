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

	"github.com/jackc/pgx/v5/pgxpool"

	metasift "github.com/nevindra/metasift"
	"github.com/nevindra/metasift/extract"
	"github.com/nevindra/metasift/ingest"
	"github.com/nevindra/metasift/internal/config"
	"github.com/nevindra/metasift/internal/server"
	"github.com/nevindra/metasift/observer"
	"github.com/nevindra/metasift/store/postgres"
	"github.com/nevindra/metasift/store/sqlite"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		logger.Error("metasift: fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load config
	cfg := config.Load(os.Getenv("METASIFT_CONFIG"))

	// 2. Open store by driver
	var store metasift.Store
	switch cfg.Database.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		store = postgres.New(pool)
	default:
		store = sqlite.New(cfg.Database.Path, sqlite.WithLogger(logger))
	}
	defer store.Close()
	if err := store.Init(ctx); err != nil {
		return err
	}

	// 3. Build pipeline
	var processor ingest.Processor = ingest.NewPipeline(
		ingest.WithMetadataExtractor(extract.New(
			extract.WithMaxKeywords(cfg.Extract.MaxKeywords),
			extract.WithMaxSummarySentences(cfg.Extract.MaxSummarySentences),
		)),
		ingest.WithPipelineLogger(logger),
	)

	// 4. Optional observability
	if cfg.Observer.Enabled {
		inst, shutdown, err := observer.Init(ctx)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Error("metasift: observer shutdown", "error", err)
			}
		}()
		processor = observer.WrapPipeline(processor, inst)
	}

	// 5. Serve HTTP until signalled
	srv := server.New(processor,
		server.WithStore(store),
		server.WithLogger(logger),
		server.WithMaxUploadBytes(cfg.Server.MaxUploadBytes),
	)
	httpSrv := &http.Server{Addr: cfg.Server.Addr, Handler: srv.Handler()}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metasift: listening", "addr", cfg.Server.Addr, "driver", cfg.Database.Driver)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("metasift: stopped")
	return nil
}
