package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "vedika_events/internal/app/http"
	"vedika_events/internal/config"
	"vedika_events/internal/repository"
	"vedika_events/internal/services/auth"
	contact "vedika_events/internal/services/contact_service"
	gallery "vedika_events/internal/services/gallery_service"
	filestorage "vedika_events/internal/storage/filestorage"
	"vedika_events/internal/storage/objectstorage"
	redisapp "vedika_events/internal/storage/redis"
	httprouters "vedika_events/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Repo       *repository.Repository
	Redis      *redisapp.Client
}

// New wires the whole application from cfg. Everything is constructed here
// and injected; no package keeps process-global state.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	cache := repository.NewRedisEventListCache(redisClient, cfg.CacheTTL)

	fileStorage, err := newFileStorage(ctx, cfg)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	authService := auth.New(log, repo.Admin, cfg.AppSecret, cfg.TokenTTL)
	galleryService := gallery.NewGalleryService(log, repo.Event, fileStorage, cache)
	contactService := contact.NewContactService(log, repo.Contact)

	routers := httprouters.NewRouter(log, authService, galleryService, contactService, fileStorage)
	server := httpapp.New(log, cfg.AppSecret, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: server,
		Repo:       repo,
		Redis:      redisClient,
	}, nil
}

func newFileStorage(ctx context.Context, cfg *config.Config) (filestorage.FileStorage, error) {
	switch cfg.FileStorage.Backend {
	case "minio":
		return objectstorage.New(ctx, cfg.Minio, cfg.FileStorage.BaseURL, cfg.FileStorage.MaxSize)
	case "local", "":
		return filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL, cfg.FileStorage.MaxSize)
	default:
		return nil, fmt.Errorf("unknown file storage backend %q", cfg.FileStorage.Backend)
	}
}
