package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pasteshare/paste-api/internal/core/service"
	mongostore "github.com/pasteshare/paste-api/internal/infrastructure/db/mongo"
	"github.com/pasteshare/paste-api/internal/infrastructure/hasher"
	"github.com/pasteshare/paste-api/internal/infrastructure/token"
	"github.com/pasteshare/paste-api/internal/pkg/config"
	"github.com/pasteshare/paste-api/pkg/logger"
)

// loadConfig reads the environment and initialises the process logger.
func loadConfig(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
		Env:     cfg.Env,
	})
	return cfg, log, nil
}

// openStore connects to MongoDB and makes sure the indexes exist.
func openStore(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongostore.Store, error) {
	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, nil, err
	}
	store := mongostore.NewStore(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return client, store, nil
}

func newAuthService(cfg *config.Config, store *mongostore.Store, log zerolog.Logger) (*service.AuthService, error) {
	jwt, err := token.NewJWT(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	bcrypt := hasher.NewBcrypt(cfg.Security.BcryptCost, cfg.Security.HashConcurrency)
	return service.NewAuthService(store.Users, bcrypt, jwt, log), nil
}
