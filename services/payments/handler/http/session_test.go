package http

import (
	"encoding/json"
	"net/http"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionJWTConfig = models.JWTConfig{
	Secret:     "test-dashboard-secret",
	Expiration: 60,
	Issuer:     "sikaflow",
}

func TestCreateDashboardSession_IssuesValidToken(t *testing.T) {
	// Arrange
	handler := NewSessionHandler(sessionJWTConfig)
	c, recorder := newIntentContext(http.MethodPost, "/dashboard/sessions", map[string]string{
		"business_id": "biz_1",
	})

	// Act
	err := handler.CreateDashboardSession(c)

	// Assert
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp struct {
		Data models.DashboardSession `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, 3600, resp.Data.ExpiresIn)

	// the token must carry the business the websocket manager scopes by
	claims := &models.WebSocketClaims{}
	_, perr := jwtlib.ParseWithClaims(resp.Data.Token, claims, func(*jwtlib.Token) (interface{}, error) {
		return []byte(sessionJWTConfig.Secret), nil
	})
	require.NoError(t, perr)
	assert.Equal(t, "biz_1", claims.BusinessID)
	assert.NotEmpty(t, claims.ID)
}

func TestCreateDashboardSession_RequiresBusinessID(t *testing.T) {
	handler := NewSessionHandler(sessionJWTConfig)
	c, recorder := newIntentContext(http.MethodPost, "/dashboard/sessions", map[string]string{})

	err := handler.CreateDashboardSession(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateDashboardSession_MissingSecret(t *testing.T) {
	handler := NewSessionHandler(models.JWTConfig{Expiration: 60})
	c, recorder := newIntentContext(http.MethodPost, "/dashboard/sessions", map[string]string{
		"business_id": "biz_1",
	})

	err := handler.CreateDashboardSession(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
