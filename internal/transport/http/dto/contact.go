package dto

type ContactRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	EventType string `json:"eventType"`
	Message   string `json:"message" validate:"required"`
}
