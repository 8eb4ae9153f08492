package jwt

import (
	"errors"
	"time"

	"vedika_events/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// NewToken issues a signed bearer token for admin with a fixed expiry.
func NewToken(admin models.Admin, secret string, duration time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = admin.ID.String()
	claims["username"] = admin.Username
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(duration).Unix()

	return token.SignedString([]byte(secret))
}

// VerifyToken checks signature and expiry of tokenString and returns the
// admin identity encoded in it.
func VerifyToken(tokenString, secret string) (models.AdminIdentity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.AdminIdentity{}, ErrTokenExpired
		}
		return models.AdminIdentity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.AdminIdentity{}, ErrInvalidToken
	}

	uid, _ := claims["uid"].(string)
	username, _ := claims["username"].(string)

	id, err := uuid.Parse(uid)
	if err != nil {
		return models.AdminIdentity{}, ErrInvalidToken
	}

	return models.AdminIdentity{ID: id, Username: username}, nil
}
