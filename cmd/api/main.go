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

	"github.com/prometheus/client_golang/prometheus"

	"flare/internal/awsutil"
	"flare/internal/config"
	"flare/internal/httpapi"
	"flare/internal/logging"
	"flare/internal/observability"
	sqsqueue "flare/internal/queue/sqs"
	"flare/internal/service"
	"flare/internal/store/pg"
)

func main() {
	cfg := config.LoadAPI()
	logging.Init("api", cfg.LogFormat, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.DBMigrateOnStart {
		if err := pg.Migrate(cfg.DBDSN, "up"); err != nil && !errors.Is(err, pg.ErrNoChange) {
			slog.Error("api migrate failed", "err", err)
			os.Exit(1)
		}
	}

	db, err := pg.NewPool(ctx, cfg.DBDSN, pg.PoolOptions{
		MaxConns:          cfg.DBPoolMaxConns,
		MinConns:          cfg.DBPoolMinConns,
		MaxConnLifetime:   cfg.DBPoolMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBPoolMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBPoolHealthCheckPeriod,
	})
	if err != nil {
		slog.Error("api db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	observability.Register(prometheus.DefaultRegisterer)

	store := pg.New(db)
	svc := &service.IntakeService{Store: store}

	if cfg.EventsEnabled() {
		sqsClient, err := awsutil.NewSQSClient(ctx, cfg.AWSRegion, cfg.LocalstackEndpoint)
		if err != nil {
			slog.Error("api sqs client init failed", "err", err)
			os.Exit(1)
		}
		svc.Events = sqsqueue.NewProducer(sqsClient, cfg.EventsQueueURL, cfg.EventsRPS, cfg.EventsBurst, cfg.EventsTimeout)
		slog.Info("registration events enabled", "queue_url", cfg.EventsQueueURL)
	}

	s := httpapi.New()
	api := &httpapi.API{Svc: svc}
	api.Register(s.Mux)

	s.Mux.HandleFunc("/healthz", httpapi.Healthz()).Methods(http.MethodGet)
	s.Mux.HandleFunc("/readyz", httpapi.Readyz(2*time.Second, map[string]httpapi.ReadyzCheck{
		"db": store.Ping,
	})).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Handler(cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("api shutdown", "signal", sig.String())
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}()

	slog.Info("api listening", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("api server failed", "err", err)
		os.Exit(1)
	}
}
