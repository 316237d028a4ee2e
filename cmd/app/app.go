package app

import (
	"context"
	"fmt"
	"log/slog"

	"luxestate/internal/auth"
	"luxestate/internal/config"
	"luxestate/internal/database"
	handlers "luxestate/internal/handler"
	"luxestate/internal/repository"
	"luxestate/internal/service"
	"luxestate/internal/storage"
)

type App struct {
	DB       *database.DB
	Repo     *repository.Repository
	Services *service.Service
	Guard    *auth.Guard
	Handlers *handlers.Handlers
}

// New connects to PostgreSQL and MinIO and wires every layer. MinIO is
// optional: without it image uploads answer 503.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.ConnectDB(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	var images storage.Storage
	minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
	if err != nil {
		slog.Warn("image storage unavailable, uploads disabled", "endpoint", cfg.MinIO.Endpoint, "error", err)
	} else {
		images = minioClient
	}

	app, err := Wire(db, cfg, images)
	if err != nil {
		db.CloseDB()
		return nil, err
	}

	return app, nil
}

// Wire builds repositories, services and handlers over an open database.
func Wire(db *database.DB, cfg *config.Config, images storage.Storage) (*App, error) {
	tokens, err := auth.NewTokenManager(cfg.JWTSecretKey)
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	repo := repository.NewRepository(db.DB)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	services := service.NewService(repo, cfg, hasher, tokens, images)

	return &App{
		DB:       db,
		Repo:     repo,
		Services: services,
		Guard:    auth.NewGuard(tokens, repo.User),
		Handlers: handlers.NewHandlers(services, db, cfg),
	}, nil
}

func (a *App) Close() error {
	return a.DB.CloseDB()
}
