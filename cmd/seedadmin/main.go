// Command seedadmin provisions the admin user out of band. The serving
// process never creates or mutates users; this tool is the only write path.
//
//	MONGO_URI=... go run ./cmd/seedadmin -email admin@roosly.com -password admin123
//
// Pass -reset to replace an existing admin with a fresh password hash.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"

	mongodb "github.com/roosly/site-api/internal/infrastructure/db/mongo"
	"github.com/roosly/site-api/pkg/logger"
	"github.com/roosly/site-api/pkg/password"
)

type seedConfig struct {
	Mongo struct {
		URI      string `env:"MONGO_URI, required"`
		Database string `env:"MONGO_DB,  default=roosly"`
	}
}

func main() {
	var (
		name  = flag.String("name", "Admin User", "admin display name")
		email = flag.String("email", "admin@roosly.com", "admin email")
		pass  = flag.String("password", "", "admin password (required)")
		reset = flag.Bool("reset", false, "replace an existing admin user")
	)
	flag.Parse()

	log := logger.Init(logger.Options{Level: "info", Pretty: true})

	if *pass == "" {
		fmt.Fprintln(os.Stderr, "seedadmin: -password is required")
		flag.Usage()
		os.Exit(2)
	}

	var cfg seedConfig
	ctx := context.Background()
	if err := envconfig.Process(ctx, &cfg); err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to mongodb")
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	users := mongodb.NewUserRepository(db)
	customers := mongodb.NewCustomerRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create user indexes")
		os.Exit(1)
	}
	if err := customers.EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create customer indexes")
		os.Exit(1)
	}

	hash, err := password.NewHasher().Hash(*pass)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		os.Exit(1)
	}

	if err := users.SeedAdmin(ctx, *name, *email, hash, *reset); err != nil {
		log.Error().Err(err).Msg("failed to seed admin user")
		os.Exit(1)
	}

	log.Info().Str("email", *email).Bool("reset", *reset).Msg("admin user provisioned")
}
