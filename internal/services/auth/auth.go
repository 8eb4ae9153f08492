package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vedika_events/internal/domain/models"
	"vedika_events/internal/lib/jwt"
	"vedika_events/internal/lib/logger/sl"
	"vedika_events/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Auth struct {
	log           *slog.Logger
	adminProvider AdminProvider
	secret        string
	tokenTTL      time.Duration
}

type AdminProvider interface {
	AdminByUsername(ctx context.Context, username string) (models.Admin, error)
}

func New(log *slog.Logger, adminProvider AdminProvider, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		log:           log,
		adminProvider: adminProvider,
		secret:        secret,
		tokenTTL:      tokenTTL,
	}
}

// Login checks the credentials and issues a bearer token. An unknown
// username and a wrong password both surface as ErrInvalidCredentials so
// the response cannot be used for username enumeration.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	const op = "auth.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("attempting to login admin")

	admin, err := a.adminProvider.AdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			log.Warn("admin not found", sl.Err(err))

			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get admin", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := jwt.NewToken(admin, a.secret, a.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in successfully")

	return token, nil
}
