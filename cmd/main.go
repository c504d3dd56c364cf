package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ProfJake/lab10/config"
	"github.com/ProfJake/lab10/internal/application"
	pginfra "github.com/ProfJake/lab10/internal/infrastructure/postgres"
	"github.com/ProfJake/lab10/internal/session"
	"github.com/ProfJake/lab10/pkg/helpers"
	"github.com/ProfJake/lab10/pkg/tracker"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()

	// Initialize Postgres pool
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	// Run migrations using database/sql with pgx stdlib
	if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil && !errors.Is(migrate.ErrNoChange, err) {
		log.Fatalf("migration failed: %v", err)
	}

	// Session store: process-local map by default, Redis when configured
	var sessions session.Store
	if cfg.SessionBackend == "redis" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
	} else {
		sessions = session.NewMemoryStore()
	}

	authSvc := application.NewAuthService(pginfra.NewUserRepository(pool), sessions, logger)
	activitySvc := application.NewActivityService(pginfra.NewActivityRepository(pool), tracker.Calculate, logger)

	// Optional activity event publishing
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventQueue)
		if err != nil {
			log.Fatalf("failed to connect to rabbitmq: %v", err)
		}
		defer pub.Close()
		activitySvc.Rabbit = pub
	}

	// Optional Elasticsearch mirror
	if len(cfg.ESAddrs()) > 0 {
		es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			log.Fatalf("failed to init elasticsearch client: %v", err)
		}
		activitySvc.ES = es
		activitySvc.ESIndex = cfg.ESActivitiesIndex
	}

	logger.WithFields(logrus.Fields{
		"session_backend": cfg.SessionBackend,
		"auth_ready":      authSvc != nil,
		"events_enabled":  activitySvc.Rabbit != nil,
		"es_enabled":      activitySvc.ES != nil,
	}).Info("activity core ready")

	// The delivery layer runs out of process; hold the core open until
	// shutdown is requested.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	// Open sql DB via pgx stdlib
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(migrate.ErrNoChange, err) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
