package nats

import (
	"encoding/json"
	"fmt"

	"github.com/kwabena-io/sikaflow/internal/pkg/constants"
	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	natspkg "github.com/kwabena-io/sikaflow/internal/pkg/nats"
	wshandler "github.com/kwabena-io/sikaflow/services/payments/handler/websocket"
	"github.com/nats-io/nats.go"
)

// PaymentsHandler handles NATS subscriptions for the payments service. Each
// instance subscribes with a plain (non-queue) subscription so every instance
// can push notifications to its own websocket sessions.
type PaymentsHandler struct {
	dashboard  *wshandler.DashboardHandler
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewPaymentsHandler creates a new payments NATS handler
func NewPaymentsHandler(dashboard *wshandler.DashboardHandler, client *natspkg.Client) *PaymentsHandler {
	return &PaymentsHandler{
		dashboard:  dashboard,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the payments service
func (h *PaymentsHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectTransactionRecorded, func(msg *nats.Msg) {
		if err := h.handleTransactionRecorded(msg.Data); err != nil {
			logger.Error("Error handling transaction recorded event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to transaction recorded events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(constants.SubjectIntentCompleted, func(msg *nats.Msg) {
		if err := h.handleIntentCompleted(msg.Data); err != nil {
			logger.Error("Error handling intent completed event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to intent completed events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleTransactionRecorded fans a recorded transaction out to the owning
// business's dashboard sessions
func (h *PaymentsHandler) handleTransactionRecorded(msg []byte) error {
	var tx models.Transaction
	if err := json.Unmarshal(msg, &tx); err != nil {
		logger.Error("Failed to unmarshal transaction recorded event", logger.Err(err))
		return err
	}

	logger.Info("Received transaction recorded event",
		logger.String("transaction_id", tx.ID),
		logger.String("provider", string(tx.Provider)),
		logger.String("reference", tx.ProviderReference))

	h.dashboard.BroadcastTransaction(&tx)
	return nil
}

// handleIntentCompleted fans a terminal payment intent out to dashboards
func (h *PaymentsHandler) handleIntentCompleted(msg []byte) error {
	var intent models.PaymentIntent
	if err := json.Unmarshal(msg, &intent); err != nil {
		logger.Error("Failed to unmarshal intent completed event", logger.Err(err))
		return err
	}

	logger.Info("Received intent completed event",
		logger.String("intent_id", intent.ID),
		logger.String("status", string(intent.Status)))

	h.dashboard.BroadcastIntent(&intent)
	return nil
}
