package http

import (
	"net/http"

	"github.com/kwabena-io/sikaflow/internal/pkg/jwt"
	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/internal/utils"
	"github.com/labstack/echo/v4"
)

// SessionHandler issues dashboard websocket credentials. Verifying that the
// caller may act for the business lives with the platform's auth service;
// this surface only mints the token the websocket manager validates.
type SessionHandler struct {
	jwtConfig models.JWTConfig
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(jwtConfig models.JWTConfig) *SessionHandler {
	return &SessionHandler{jwtConfig: jwtConfig}
}

// CreateDashboardSession handles dashboard session token requests
func (h *SessionHandler) CreateDashboardSession(c echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.BusinessID == "" {
		return utils.BadRequestResponse(c, "business_id is required")
	}

	token, err := jwt.GenerateDashboardToken(req.BusinessID, h.jwtConfig)
	if err != nil {
		logger.Error("Failed to issue dashboard token",
			logger.String("business_id", req.BusinessID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create dashboard session")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Dashboard session created", models.DashboardSession{
		Token:     token,
		ExpiresIn: h.jwtConfig.Expiration * 60,
	})
}
