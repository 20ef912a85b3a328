package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/internal/utils"
	"github.com/kwabena-io/sikaflow/services/payments"
	"github.com/labstack/echo/v4"
)

// IntentHandler handles payment intent lifecycle requests
type IntentHandler struct {
	paymentUC payments.PaymentUC
}

// NewIntentHandler creates a new intent handler
func NewIntentHandler(paymentUC payments.PaymentUC) *IntentHandler {
	return &IntentHandler{
		paymentUC: paymentUC,
	}
}

// CreateIntent handles intent creation requests
func (h *IntentHandler) CreateIntent(c echo.Context) error {
	var req models.CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for intent creation",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	intent, err := h.paymentUC.CreateIntent(c.Request().Context(), &req)
	if err != nil {
		return h.mapIntentError(c, err, "Failed to create payment intent")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment intent created", intent)
}

// GetIntent handles intent retrieval requests
func (h *IntentHandler) GetIntent(c echo.Context) error {
	intent, err := h.paymentUC.GetIntent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapIntentError(c, err, "Failed to retrieve payment intent")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment intent retrieved", intent)
}

// ListIntents handles intent list requests
func (h *IntentHandler) ListIntents(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	intents, err := h.paymentUC.ListIntents(c.Request().Context(), limit, offset)
	if err != nil {
		return h.mapIntentError(c, err, "Failed to list payment intents")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment intents retrieved", intents)
}

// UpdateIntent handles intent update requests
func (h *IntentHandler) UpdateIntent(c echo.Context) error {
	var req models.UpdateIntentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	intent, err := h.paymentUC.UpdateIntent(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.mapIntentError(c, err, "Failed to update payment intent")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment intent updated", intent)
}

// ConfirmIntent handles intent confirmation requests
func (h *IntentHandler) ConfirmIntent(c echo.Context) error {
	var req models.ConfirmIntentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	intent, err := h.paymentUC.ConfirmIntent(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.mapIntentError(c, err, "Failed to confirm payment intent")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment intent confirmed", intent)
}

// CancelIntent handles intent cancellation requests
func (h *IntentHandler) CancelIntent(c echo.Context) error {
	intent, err := h.paymentUC.CancelIntent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapIntentError(c, err, "Failed to cancel payment intent")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment intent canceled", intent)
}

func (h *IntentHandler) mapIntentError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, payments.ErrIntentNotFound):
		return utils.NotFoundResponse(c, "Payment intent not found")
	case errors.Is(err, payments.ErrInvalidAmount):
		return utils.BadRequestResponse(c, "Amount must be greater than zero")
	case errors.Is(err, payments.ErrInvalidState):
		return utils.ConflictResponse(c, "Operation not permitted in current intent state")
	case errors.Is(err, payments.ErrGatewayUnavailable), errors.Is(err, payments.ErrDownstream):
		return utils.ServiceUnavailableResponse(c, "Payment processing temporarily unavailable")
	default:
		logger.Error(fallback,
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
