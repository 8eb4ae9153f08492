package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"vedika_events/internal/domain/models"
	"vedika_events/internal/lib/logger/sl"
	"vedika_events/internal/metrics"
	"vedika_events/internal/repository"
	"vedika_events/internal/storage"
	filestorage "vedika_events/internal/storage/filestorage"
	"vedika_events/internal/transport/http/dto"

	"github.com/google/uuid"
)

var (
	ErrNoImages   = errors.New("at least one image is required")
	ErrValidation = errors.New("missing required event field")
)

// uploadField is the multipart field name images arrive under; it prefixes
// every generated asset name.
const uploadField = "images"

type GalleryService struct {
	log         *slog.Logger
	repo        repository.EventRepository
	fileStorage filestorage.FileStorage
	cache       repository.EventListCache
}

func NewGalleryService(log *slog.Logger, repo repository.EventRepository, fileStorage filestorage.FileStorage, cache repository.EventListCache) *GalleryService {
	return &GalleryService{
		log:         log,
		repo:        repo,
		fileStorage: fileStorage,
		cache:       cache,
	}
}

// CreateEvent writes every image payload to the asset store, then persists
// the event record referencing them. Metadata is validated before any asset
// write; if the record insert fails the assets written for this request are
// removed best-effort.
func (s *GalleryService) CreateEvent(ctx context.Context, input dto.CreateEventInput) (*models.GalleryEvent, error) {
	const op = "gallery_service.CreateEvent"

	log := s.log.With(
		slog.String("op", op),
		slog.String("event_name", input.EventName),
	)

	if err := validateMetadata(input.CreateEventRequest); err != nil {
		log.Warn("invalid event metadata", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(input.Files) == 0 {
		log.Warn("create rejected: no image payloads")

		return nil, fmt.Errorf("%s: %w", op, ErrNoImages)
	}

	log.Info("creating gallery event", slog.Int("images", len(input.Files)))

	var saved []string
	for _, file := range input.Files {
		name := filestorage.NewUploadName(uploadField, file.Filename)

		if _, err := s.fileStorage.Save(ctx, file, name); err != nil {
			log.Error("failed to save image", sl.Err(err), slog.String("filename", file.Filename))
			s.removeAssets(ctx, saved)

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		metrics.UploadedAssetsTotal.Inc()
		saved = append(saved, name)
	}

	images := make([]string, 0, len(saved))
	for _, name := range saved {
		images = append(images, path.Join(s.fileStorage.BaseURL(), name))
	}

	event := models.GalleryEvent{
		EventName:     input.EventName,
		EventLocation: input.EventLocation,
		EventDate:     input.EventDate,
		EventTime:     input.EventTime,
		Details:       input.Details,
		Images:        images,
		MapURL:        input.MapURL,
	}

	created, err := s.repo.SaveEvent(ctx, event)
	if err != nil {
		log.Error("failed to save event, reclaiming assets", sl.Err(err))
		s.removeAssets(ctx, saved)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateListing(ctx, log)

	log.Info("gallery event created", slog.String("id", created.ID.String()))

	return &created, nil
}

// ListEvents returns every event, newest first, through the read-through
// cache. Cache failures fall back to the record store.
func (s *GalleryService) ListEvents(ctx context.Context) ([]models.GalleryEvent, error) {
	const op = "gallery_service.ListEvents"

	log := s.log.With(slog.String("op", op))

	cached, found, err := s.cache.Get(ctx)
	if err != nil {
		log.Warn("event list cache read failed", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	events, err := s.repo.Events(ctx)
	if err != nil {
		log.Error("failed to list events", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if events == nil {
		events = []models.GalleryEvent{}
	}

	if err := s.cache.Set(ctx, events); err != nil {
		log.Warn("event list cache write failed", sl.Err(err))
	}

	return events, nil
}

// DeleteEvent reclaims the event's asset files and then removes the record.
// Both steps tolerate "already gone", which makes concurrent deletes of one
// id safe.
func (s *GalleryService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	const op = "gallery_service.DeleteEvent"

	log := s.log.With(
		slog.String("op", op),
		slog.String("event_id", id.String()),
	)

	event, err := s.repo.EventByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			log.Warn("event not found")

			return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		log.Error("failed to load event", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	for _, img := range event.Images {
		name := path.Base(img)

		if err := s.fileStorage.Delete(ctx, name); err != nil {
			if errors.Is(err, storage.ErrFileNotFound) {
				continue
			}
			log.Warn("failed to remove asset, leaving orphan", sl.Err(err), slog.String("asset", name))
		}
	}

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		log.Error("failed to delete event record", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateListing(ctx, log)

	log.Info("gallery event deleted")

	return nil
}

func (s *GalleryService) removeAssets(ctx context.Context, names []string) {
	for _, name := range names {
		if err := s.fileStorage.Delete(ctx, name); err != nil && !errors.Is(err, storage.ErrFileNotFound) {
			s.log.Warn("failed to clean up asset", sl.Err(err), slog.String("asset", name))
		}
	}
}

func (s *GalleryService) invalidateListing(ctx context.Context, log *slog.Logger) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn("event list cache invalidation failed", sl.Err(err))
	}
}

func validateMetadata(req dto.CreateEventRequest) error {
	if req.EventName == "" || req.EventLocation == "" || req.EventDate == "" || req.EventTime == "" {
		return ErrValidation
	}

	return nil
}
