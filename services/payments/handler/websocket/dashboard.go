package websocket

import (
	"github.com/gorilla/websocket"
	"github.com/kwabena-io/sikaflow/internal/pkg/constants"
	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	wspkg "github.com/kwabena-io/sikaflow/internal/pkg/websocket"
	"github.com/labstack/echo/v4"
)

// DashboardHandler manages dashboard websocket sessions that receive
// best-effort payment notifications
type DashboardHandler struct {
	manager *wspkg.Manager
}

// NewDashboardHandler creates a new dashboard websocket handler
func NewDashboardHandler(manager *wspkg.Manager) *DashboardHandler {
	return &DashboardHandler{manager: manager}
}

// HandleDashboard authenticates and serves one dashboard connection
func (h *DashboardHandler) HandleDashboard(c echo.Context) error {
	return h.manager.HandleConnection(c, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		client.Conn = conn
		h.manager.AddClient(client)
		defer h.manager.RemoveClient(client.SessionID)

		logger.Info("Dashboard session connected",
			logger.String("business_id", client.BusinessID))

		for {
			var msg models.WSMessage
			if err := conn.ReadJSON(&msg); err != nil {
				logger.Debug("Dashboard session closed",
					logger.String("business_id", client.BusinessID),
					logger.Err(err))
				return nil
			}

			if msg.Event == constants.EventPing {
				_ = h.manager.SendMessage(client, constants.EventPong, nil)
			}
		}
	})
}

// BroadcastTransaction pushes a recorded transaction to the dashboard
// sessions of its owning business. Unattributed transactions have no owner
// to notify; they surface through polling instead.
func (h *DashboardHandler) BroadcastTransaction(tx *models.Transaction) {
	if tx.BusinessID == nil {
		logger.Debug("Skipping broadcast for unattributed transaction",
			logger.String("transaction_id", tx.ID))
		return
	}

	for _, client := range h.manager.ClientsForBusiness(*tx.BusinessID) {
		if err := h.manager.SendMessage(client, constants.EventTransactionRecorded, tx); err != nil {
			logger.Debug("Failed to push transaction to dashboard",
				logger.String("business_id", client.BusinessID),
				logger.Err(err))
		}
	}
}

// BroadcastIntent pushes a completed intent to its business dashboards
func (h *DashboardHandler) BroadcastIntent(intent *models.PaymentIntent) {
	if intent.BusinessID == nil {
		return
	}

	for _, client := range h.manager.ClientsForBusiness(*intent.BusinessID) {
		if err := h.manager.SendMessage(client, constants.EventIntentCompleted, intent); err != nil {
			logger.Debug("Failed to push intent to dashboard",
				logger.String("business_id", client.BusinessID),
				logger.Err(err))
		}
	}
}
