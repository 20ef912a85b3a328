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

// TransactionHandler serves the ledger read side that dashboards poll to
// reconcile against the best-effort realtime stream
type TransactionHandler struct {
	paymentUC payments.PaymentUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(paymentUC payments.PaymentUC) *TransactionHandler {
	return &TransactionHandler{
		paymentUC: paymentUC,
	}
}

// GetTransaction handles transaction retrieval requests
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	tx, err := h.paymentUC.GetTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, payments.ErrTransactionNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		logger.Error("Failed to retrieve transaction",
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", tx)
}

// ListTransactions handles transaction list requests
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	filter := models.TransactionFilter{
		BusinessID: c.QueryParam("business_id"),
		Status:     c.QueryParam("status"),
		Limit:      limit,
		Offset:     offset,
	}

	transactions, err := h.paymentUC.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to list transactions",
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", transactions)
}
