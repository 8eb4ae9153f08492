package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"vedika_events/internal/domain/models"
	"vedika_events/internal/transport/http/dto"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) SaveInquiry(ctx context.Context, inquiry models.ContactInquiry) (uuid.UUID, error) {
	args := m.Called(ctx, inquiry)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func TestContactService_SubmitInquiry(t *testing.T) {
	ctx := context.Background()

	req := dto.ContactRequest{
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Phone:     gofakeit.Phone(),
		EventType: "wedding",
		Message:   gofakeit.Sentence(10),
	}

	t.Run("successful submission", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		service := NewContactService(slog.Default(), mockRepo)

		id := uuid.New()
		mockRepo.On("SaveInquiry", ctx, models.ContactInquiry{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			EventType: req.EventType,
			Message:   req.Message,
		}).Return(id, nil).Once()

		got, err := service.SubmitInquiry(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, id, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		service := NewContactService(slog.Default(), mockRepo)

		mockRepo.On("SaveInquiry", ctx, mock.Anything).
			Return(uuid.Nil, errors.New("db error")).Once()

		got, err := service.SubmitInquiry(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, uuid.Nil, got)
		mockRepo.AssertExpectations(t)
	})
}
