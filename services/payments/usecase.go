package payments

import (
	"context"

	"github.com/kwabena-io/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kwabena-io/sikaflow/services/payments PaymentUC

// PaymentUC is the payments usecase interface
type PaymentUC interface {
	// webhook and verification ingestion
	HandleWebhook(ctx context.Context, channel models.WebhookChannel, rawBody []byte, signatureHeader string) (*models.Transaction, error)
	VerifyPayment(ctx context.Context, reference string) (*models.Transaction, error)

	// payment intent lifecycle
	CreateIntent(ctx context.Context, req *models.CreateIntentRequest) (*models.PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*models.PaymentIntent, error)
	ListIntents(ctx context.Context, limit, offset int) ([]models.PaymentIntent, error)
	UpdateIntent(ctx context.Context, id string, req *models.UpdateIntentRequest) (*models.PaymentIntent, error)
	ConfirmIntent(ctx context.Context, id string, req *models.ConfirmIntentRequest) (*models.PaymentIntent, error)
	CancelIntent(ctx context.Context, id string) (*models.PaymentIntent, error)

	// ledger read side
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
}
