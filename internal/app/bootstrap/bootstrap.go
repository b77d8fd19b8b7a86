package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	classlifecycle "tutorlink/contexts/class-marketplace/class-lifecycle-service"
	classpostgres "tutorlink/contexts/class-marketplace/class-lifecycle-service/adapters/postgres"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/application/workers"
	tutorprofile "tutorlink/contexts/class-marketplace/tutor-profile-service"
	tutorpostgres "tutorlink/contexts/class-marketplace/tutor-profile-service/adapters/postgres"
	accessguard "tutorlink/contexts/identity-access/access-guard-service"
	"tutorlink/internal/platform/config"
	"tutorlink/internal/platform/db"
	"tutorlink/internal/platform/httpserver"
	"tutorlink/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	relay        workers.NotificationRelay
	kafka        *messaging.Kafka
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	classRepo := classpostgres.NewRepository(pg.DB, logger)
	classModule := classlifecycle.NewModule(classlifecycle.Dependencies{
		Classes:     classRepo,
		History:     classRepo,
		Outbox:      classRepo,
		Sink:        classRepo,
		Directory:   classRepo,
		Clock:       classpostgres.SystemClock{},
		IDGenerator: classpostgres.UUIDGenerator{},
		RelayTopic:  cfg.NotificationTopic,
		RelayBatch:  cfg.RelayBatchSize,
		Logger:      logger,
	})

	tutorRepo := tutorpostgres.NewRepository(pg.DB, logger)
	tutorModule := tutorprofile.NewModule(tutorprofile.Dependencies{
		Profiles:    tutorRepo,
		Clock:       tutorpostgres.SystemClock{},
		IDGenerator: tutorpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	guardModule := accessguard.NewJWTModule(cfg.JWTSecret, logger)

	server := httpserver.New(classModule, tutorModule, guardModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := classpostgres.NewRepository(pg.DB, logger)
	relay := workers.NotificationRelay{
		Outbox:    repo,
		Sink:      repo,
		Clock:     classpostgres.SystemClock{},
		Topic:     cfg.NotificationTopic,
		BatchSize: cfg.RelayBatchSize,
		Logger:    logger,
	}

	var kafka *messaging.Kafka
	if cfg.EnableEventRelay {
		kafka, err = messaging.NewKafka(cfg.KafkaBrokers, logger)
		if err != nil {
			_ = pg.Close()
			return nil, err
		}
		relay.Publisher = kafka
	}

	return &WorkerApp{
		postgres:     pg,
		relay:        relay,
		kafka:        kafka,
		pollInterval: cfg.RelayInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.relay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	var firstErr error
	if w.kafka != nil {
		firstErr = w.kafka.Close()
	}
	if w.postgres != nil {
		if err := w.postgres.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
