package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryEvent is a past event shown in the public gallery.
// Images holds server-relative asset paths ("/uploads/<name>") in upload
// order; a persisted event always has at least one entry.
type GalleryEvent struct {
	ID            uuid.UUID `json:"id"`
	EventName     string    `json:"eventName"`
	EventLocation string    `json:"eventLocation"`
	EventDate     string    `json:"eventDate"`
	EventTime     string    `json:"eventTime"`
	Details       string    `json:"details,omitempty"`
	Images        []string  `json:"images"`
	MapURL        string    `json:"mapUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
