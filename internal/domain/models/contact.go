package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactInquiry is write-only from the API's perspective.
type ContactInquiry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	EventType string    `json:"eventType,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
