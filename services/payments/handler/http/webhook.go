package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/kwabena-io/sikaflow/internal/pkg/constants"
	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/internal/pkg/signature"
	"github.com/kwabena-io/sikaflow/internal/utils"
	"github.com/kwabena-io/sikaflow/services/payments"
	"github.com/labstack/echo/v4"
)

// WebhookHandler handles inbound provider notifications
type WebhookHandler struct {
	paymentUC payments.PaymentUC
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(paymentUC payments.PaymentUC) *WebhookHandler {
	return &WebhookHandler{
		paymentUC: paymentUC,
	}
}

// HandleWebhook receives a provider webhook delivery. The body is read as
// raw bytes before any parsing so signature verification sees exactly what
// the provider signed. The channel is discriminated by which signature
// header is present.
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	rawBody, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to read request body")
	}

	channel := models.ChannelGeneric
	signatureHeader := c.Request().Header.Get(constants.HeaderWebhookSignature)
	if paystackSig := c.Request().Header.Get(constants.HeaderPaystackSignature); paystackSig != "" {
		channel = models.ChannelPaystack
		signatureHeader = paystackSig
	}

	tx, err := h.paymentUC.HandleWebhook(c.Request().Context(), channel, rawBody, signatureHeader)
	if err != nil {
		switch {
		case errors.Is(err, signature.ErrMissingSignature):
			return utils.BadRequestResponse(c, "Missing signature header")
		case errors.Is(err, signature.ErrInvalidSignature):
			return utils.UnauthorizedResponse(c, "Invalid signature")
		case errors.Is(err, payments.ErrMalformedEvent):
			return utils.BadRequestResponse(c, "Malformed event payload")
		case errors.Is(err, payments.ErrDownstream):
			// retryable: recording is idempotent, so the provider's retry is
			// harmless
			return utils.ServiceUnavailableResponse(c, "Temporarily unable to record payment")
		default:
			logger.Error("Webhook processing failed",
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Webhook processing failed")
		}
	}

	if tx == nil {
		return utils.SuccessResponse(c, http.StatusOK, "Event acknowledged", nil)
	}
	// duplicates take this same path, so redelivery gets an identical
	// response shape to the original success
	return utils.SuccessResponse(c, http.StatusOK, "Webhook processed", tx)
}

// VerifyPayment handles the synchronous verification callback: the client
// supplies a provider reference and the server verifies it directly with
// the provider before recording through the shared pipeline.
func (h *WebhookHandler) VerifyPayment(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Transaction reference is required")
	}

	tx, err := h.paymentUC.VerifyPayment(c.Request().Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrTransactionNotFound):
			return utils.NotFoundResponse(c, "Transaction not found")
		case errors.Is(err, payments.ErrVerificationFailed):
			return utils.BadRequestResponse(c, "Payment verification failed")
		case errors.Is(err, payments.ErrGatewayUnavailable), errors.Is(err, payments.ErrDownstream):
			return utils.ServiceUnavailableResponse(c, "Verification temporarily unavailable")
		default:
			logger.Error("Payment verification failed",
				logger.String("reference", reference),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Payment verification failed")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment verified", tx)
}
