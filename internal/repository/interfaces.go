package repository

import (
	"context"

	"vedika_events/internal/domain/models"

	"github.com/google/uuid"
)

type AdminRepository interface {
	SaveAdmin(ctx context.Context, admin models.Admin) (uuid.UUID, error)
	AdminByUsername(ctx context.Context, username string) (models.Admin, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event models.GalleryEvent) (models.GalleryEvent, error)
	Events(ctx context.Context) ([]models.GalleryEvent, error)
	EventByID(ctx context.Context, id uuid.UUID) (models.GalleryEvent, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	SaveInquiry(ctx context.Context, inquiry models.ContactInquiry) (uuid.UUID, error)
}

// EventListCache caches the public event listing. Implementations must be
// failure-tolerant: a broken cache degrades to the record store, it never
// fails a request.
type EventListCache interface {
	Get(ctx context.Context) ([]models.GalleryEvent, bool, error)
	Set(ctx context.Context, events []models.GalleryEvent) error
	Invalidate(ctx context.Context) error
}
