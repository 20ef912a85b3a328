package payments

import (
	"context"

	"github.com/kwabena-io/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/kwabena-io/sikaflow/services/payments PaymentGW,NotifierGW

// PaymentGW is the client-side interface to the payment provider API.
// Constructor-injected so tests can substitute a fake provider.
type PaymentGW interface {
	// VerifyTransaction performs a server-to-provider verification call for
	// a provider reference and returns the canonical event on success
	VerifyTransaction(ctx context.Context, reference string) (*models.PaymentEvent, error)

	// ChargeIntent attempts to charge a confirmed payment intent. A network
	// failure returns an error; a declined charge returns a failed outcome.
	ChargeIntent(ctx context.Context, intent *models.PaymentIntent) (*models.ChargeOutcome, error)
}

// NotifierGW fans out domain events to connected dashboard sessions.
// Best effort: no delivery guarantee, no replay buffer.
type NotifierGW interface {
	PublishTransactionRecorded(tx *models.Transaction) error
	PublishIntentCompleted(intent *models.PaymentIntent) error
}
