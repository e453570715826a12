package main

import (
	"context"
	"os"

	"github.com/roosly/site-api/internal/api"
	mongodb "github.com/roosly/site-api/internal/infrastructure/db/mongo"
	redisdb "github.com/roosly/site-api/internal/infrastructure/db/redis"
	"github.com/roosly/site-api/internal/pkg/config"
	"github.com/roosly/site-api/pkg/logger"
)

// @title        Roosly Site API
// @version      1.0
// @description  Marketing site backend with an admin-gated customer CRUD panel.
// @BasePath     /
//
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        roosly_session
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to mongodb")
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	// Indexes back the uniqueness invariants; creating them is idempotent.
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ensure user indexes")
		os.Exit(1)
	}
	if err := mongodb.NewCustomerRepository(db).EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ensure customer indexes")
		os.Exit(1)
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to redis")
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting roosly site api")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
