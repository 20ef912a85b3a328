package usecase

import (
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/services/payments"
)

type PaymentUC struct {
	txRepo     payments.TransactionRepo
	intentRepo payments.IntentRepo
	attrRepo   payments.AttributionRepo
	attrCache  payments.AttributionCache
	paymentGW  payments.PaymentGW
	notifierGW payments.NotifierGW
	cfg        *models.Config
}

// NewPaymentUC creates a new payments usecase instance
func NewPaymentUC(
	txRepo payments.TransactionRepo,
	intentRepo payments.IntentRepo,
	attrRepo payments.AttributionRepo,
	attrCache payments.AttributionCache,
	paymentGW payments.PaymentGW,
	notifierGW payments.NotifierGW,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		txRepo:     txRepo,
		intentRepo: intentRepo,
		attrRepo:   attrRepo,
		attrCache:  attrCache,
		paymentGW:  paymentGW,
		notifierGW: notifierGW,
		cfg:        cfg,
	}
}
