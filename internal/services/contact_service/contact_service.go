package services

import (
	"context"
	"fmt"
	"log/slog"

	"vedika_events/internal/domain/models"
	"vedika_events/internal/lib/logger/sl"
	"vedika_events/internal/repository"
	"vedika_events/internal/transport/http/dto"

	"github.com/google/uuid"
)

type ContactService struct {
	log  *slog.Logger
	repo repository.ContactRepository
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository) *ContactService {
	return &ContactService{
		log:  log,
		repo: repo,
	}
}

// SubmitInquiry persists a contact-form submission. Inquiries are
// write-only from the API's perspective.
func (s *ContactService) SubmitInquiry(ctx context.Context, req dto.ContactRequest) (uuid.UUID, error) {
	const op = "contact_service.SubmitInquiry"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.Email),
	)

	inquiry := models.ContactInquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventType: req.EventType,
		Message:   req.Message,
	}

	id, err := s.repo.SaveInquiry(ctx, inquiry)
	if err != nil {
		log.Error("failed to save inquiry", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("inquiry saved", slog.String("id", id.String()))

	return id, nil
}
