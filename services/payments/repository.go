package payments

import (
	"context"
	"time"

	"github.com/kwabena-io/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kwabena-io/sikaflow/services/payments TransactionRepo,IntentRepo,AttributionRepo,AttributionCache

// TransactionRepo persists ledger entries. The (provider, provider_reference)
// pair is unique in storage; InsertTransaction reports a conflict as the
// existing row rather than an error.
type TransactionRepo interface {
	// InsertTransaction persists tx. When a row for the same
	// (provider, provider_reference) already exists the existing row is
	// returned with duplicate = true.
	InsertTransaction(ctx context.Context, tx *models.Transaction) (created *models.Transaction, duplicate bool, err error)
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	GetTransactionByReference(ctx context.Context, provider models.PaymentProvider, reference string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
}

// IntentRepo persists payment intents
type IntentRepo interface {
	CreateIntent(ctx context.Context, intent *models.PaymentIntent) error
	GetIntent(ctx context.Context, id string) (*models.PaymentIntent, error)
	ListIntents(ctx context.Context, limit, offset int) ([]models.PaymentIntent, error)
	// UpdateIntent writes the intent only if its stored status still equals
	// expectedStatus, guarding against concurrent transitions
	UpdateIntent(ctx context.Context, intent *models.PaymentIntent, expectedStatus models.IntentStatus) error
}

// AttributionRepo is the read-only view of business ownership records used
// by the attribution chain
type AttributionRepo interface {
	GetPaymentLink(ctx context.Context, id string) (*models.PaymentLink, error)
	GetStorefront(ctx context.Context, id string) (*models.Storefront, error)
}

// AttributionCache caches attribution lookups. A cache failure is never
// fatal; callers fall back to the repository.
type AttributionCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}
