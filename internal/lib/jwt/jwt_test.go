package jwt

import (
	"testing"
	"time"

	"vedika_events/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenVerifyToken(t *testing.T) {
	admin := models.Admin{
		ID:       uuid.New(),
		Username: "admin",
	}

	t.Run("roundtrip", func(t *testing.T) {
		token, err := NewToken(admin, "secret", time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		identity, err := VerifyToken(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, identity.ID)
		assert.Equal(t, admin.Username, identity.Username)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewToken(admin, "secret", time.Hour)
		require.NoError(t, err)

		_, err = VerifyToken(token, "other-secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := NewToken(admin, "secret", -time.Minute)
		require.NoError(t, err)

		_, err = VerifyToken(token, "secret")
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := VerifyToken("not.a.token", "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
