package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	natspkg "github.com/kwabena-io/sikaflow/internal/pkg/nats"
	wspkg "github.com/kwabena-io/sikaflow/internal/pkg/websocket"
	"github.com/kwabena-io/sikaflow/services/payments"
	httpHandler "github.com/kwabena-io/sikaflow/services/payments/handler/http"
	natsHandler "github.com/kwabena-io/sikaflow/services/payments/handler/nats"
	wsHandler "github.com/kwabena-io/sikaflow/services/payments/handler/websocket"
)

// Handler combines all handlers for the payments service
type Handler struct {
	webhookHTTP     *httpHandler.WebhookHandler
	intentHTTP      *httpHandler.IntentHandler
	transactionHTTP *httpHandler.TransactionHandler
	sessionHTTP     *httpHandler.SessionHandler
	dashboardWS     *wsHandler.DashboardHandler
	paymentsNATS    *natsHandler.PaymentsHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	paymentUC payments.PaymentUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	jwtConfig models.JWTConfig,
) *Handler {
	dashboard := wsHandler.NewDashboardHandler(wsManager)
	return &Handler{
		webhookHTTP:     httpHandler.NewWebhookHandler(paymentUC),
		intentHTTP:      httpHandler.NewIntentHandler(paymentUC),
		transactionHTTP: httpHandler.NewTransactionHandler(paymentUC),
		sessionHTTP:     httpHandler.NewSessionHandler(jwtConfig),
		dashboardWS:     dashboard,
		paymentsNATS:    natsHandler.NewPaymentsHandler(dashboard, natsClient),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Provider-facing webhook ingestion
	e.POST("/webhooks/payments", h.webhookHTTP.HandleWebhook)

	// Client-initiated verification
	paymentGroup := e.Group("/payments")
	paymentGroup.GET("/verify/:reference", h.webhookHTTP.VerifyPayment)

	// Payment intent lifecycle
	intentGroup := e.Group("/payment-intents")
	intentGroup.POST("", h.intentHTTP.CreateIntent)
	intentGroup.GET("", h.intentHTTP.ListIntents)
	intentGroup.GET("/:id", h.intentHTTP.GetIntent)
	intentGroup.PATCH("/:id", h.intentHTTP.UpdateIntent)
	intentGroup.POST("/:id/confirm", h.intentHTTP.ConfirmIntent)
	intentGroup.POST("/:id/cancel", h.intentHTTP.CancelIntent)

	// Ledger read side
	transactionGroup := e.Group("/transactions")
	transactionGroup.GET("", h.transactionHTTP.ListTransactions)
	transactionGroup.GET("/:id", h.transactionHTTP.GetTransaction)

	// Realtime dashboard stream and its session credential
	e.POST("/dashboard/sessions", h.sessionHTTP.CreateDashboardSession)
	e.GET("/ws/dashboard", h.dashboardWS.HandleDashboard)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.paymentsNATS.InitNATSConsumers()
}
