package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/fiskfix/workorder-service/internal/auth"
	"github.com/fiskfix/workorder-service/internal/config"
	"github.com/fiskfix/workorder-service/internal/domain"
	"github.com/fiskfix/workorder-service/internal/observability"
	"github.com/fiskfix/workorder-service/internal/persistence"
	"github.com/fiskfix/workorder-service/internal/repository"
)

// Seeds a known account for local development. Any existing user with the
// same email is removed first, matching the legacy seed script.
func main() {
	email := flag.String("email", "student@fisk.edu", "email for the seeded account")
	password := flag.String("password", "password123", "password for the seeded account")
	role := flag.String("role", string(domain.RoleStudent), "role for the seeded account")
	flag.Parse()

	seedRole := domain.Role(*role)
	if !seedRole.Valid() {
		log.Fatalf("invalid role: %s", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	users := repository.NewUserRepository(pg.PoolHandle())

	if err := users.DeleteByEmail(ctx, *email); err != nil {
		logger.Fatal("failed to remove existing user", zap.Error(err))
	}

	hash, err := auth.HashPassword(*password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	user := &domain.User{
		Email:        *email,
		PasswordHash: hash,
		Role:         seedRole,
	}
	if err := users.Create(ctx, user); err != nil {
		logger.Fatal("failed to create user", zap.Error(err))
	}

	logger.Info("user seeded",
		zap.String("id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))
}
