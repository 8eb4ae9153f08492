package dto

import "mime/multipart"

// CreateEventRequest carries the multipart form fields of a gallery create.
// The image payloads travel separately (see CreateEventInput); field names
// match what the site frontend submits.
type CreateEventRequest struct {
	EventName     string `form:"eventName" validate:"required"`
	EventLocation string `form:"eventLocation" validate:"required"`
	EventDate     string `form:"eventDate" validate:"required"`
	EventTime     string `form:"eventTime" validate:"required"`
	Details       string `form:"details"`
	MapURL        string `form:"mapUrl" validate:"omitempty,url"`
}

// CreateEventInput is the validated request plus its image payloads, as
// handed to the gallery service.
type CreateEventInput struct {
	CreateEventRequest
	Files []*multipart.FileHeader
}
