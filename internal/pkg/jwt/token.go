// Package jwt issues signed dashboard session tokens.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
)

// GenerateDashboardToken issues an HMAC-signed session token scoped to one
// business. Dashboard clients present it as a Bearer token when opening the
// realtime WebSocket.
func GenerateDashboardToken(businessID string, cfg models.JWTConfig) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret is not configured")
	}

	now := time.Now()
	claims := models.WebSocketClaims{
		BusinessID: businessID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    cfg.Issuer,
			Subject:   businessID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.Expiration) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign dashboard token: %w", err)
	}
	return signed, nil
}
