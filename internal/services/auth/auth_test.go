package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"vedika_events/internal/domain/models"
	"vedika_events/internal/lib/jwt"
	"vedika_events/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockAdminProvider struct {
	mock.Mock
}

func (m *MockAdminProvider) AdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.Admin), args.Error(1)
}

const testSecret = "test-secret"

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.Admin{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: hash,
	}

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(m *MockAdminProvider)
		wantErr   error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "correct-password",
			mockSetup: func(m *MockAdminProvider) {
				m.On("AdminByUsername", ctx, "admin").Return(admin, nil).Once()
			},
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "correct-password",
			mockSetup: func(m *MockAdminProvider) {
				m.On("AdminByUsername", ctx, "nobody").
					Return(models.Admin{}, storage.ErrAdminNotFound).Once()
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "wrong-password",
			mockSetup: func(m *MockAdminProvider) {
				m.On("AdminByUsername", ctx, "admin").Return(admin, nil).Once()
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProvider := new(MockAdminProvider)
			tt.mockSetup(mockProvider)

			service := New(slog.Default(), mockProvider, testSecret, time.Hour)

			token, err := service.Login(ctx, tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)

				identity, err := jwt.VerifyToken(token, testSecret)
				require.NoError(t, err)
				assert.Equal(t, admin.ID, identity.ID)
				assert.Equal(t, admin.Username, identity.Username)
			}

			mockProvider.AssertExpectations(t)
		})
	}
}

// Unknown usernames and wrong passwords must produce the same error so the
// login response cannot be used to probe which usernames exist.
func TestAuth_Login_IndistinguishableFailures(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("real-password"), bcrypt.MinCost)
	require.NoError(t, err)

	mockProvider := new(MockAdminProvider)
	mockProvider.On("AdminByUsername", ctx, "ghost").
		Return(models.Admin{}, storage.ErrAdminNotFound)
	mockProvider.On("AdminByUsername", ctx, "admin").
		Return(models.Admin{ID: uuid.New(), Username: "admin", PasswordHash: hash}, nil)

	service := New(slog.Default(), mockProvider, testSecret, time.Hour)

	_, errUnknownUser := service.Login(ctx, "ghost", "whatever")
	_, errWrongPassword := service.Login(ctx, "admin", "not-real-password")

	assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
}

func TestAuth_Login_ProviderError(t *testing.T) {
	ctx := context.Background()

	mockProvider := new(MockAdminProvider)
	mockProvider.On("AdminByUsername", ctx, "admin").
		Return(models.Admin{}, errors.New("connection refused")).Once()

	service := New(slog.Default(), mockProvider, testSecret, time.Hour)

	_, err := service.Login(ctx, "admin", "password")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	mockProvider.AssertExpectations(t)
}
