package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kwabena-io/sikaflow/internal/pkg/constants"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	natspkg "github.com/kwabena-io/sikaflow/internal/pkg/nats"
	"github.com/kwabena-io/sikaflow/internal/pkg/retry"
)

// NotifierGW broadcasts domain events over NATS. It implements
// payments.NotifierGW. Delivery is best effort: there is no replay buffer,
// and dashboards reconcile by polling the transaction list. Publishes are
// retried briefly to ride out a NATS reconnect.
type NotifierGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewNotifierGW creates a new notifier gateway
func NewNotifierGW(natsClient *natspkg.Client) *NotifierGW {
	return &NotifierGW{
		natsClient: natsClient,
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  50 * time.Millisecond,
			MaxDelay:   500 * time.Millisecond,
			Multiplier: 2.0,
			Jitter:     true,
		}),
	}
}

// PublishTransactionRecorded announces a newly recorded transaction
func (g *NotifierGW) PublishTransactionRecorded(tx *models.Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	return g.publish(constants.SubjectTransactionRecorded, data)
}

// PublishIntentCompleted announces a payment intent reaching a terminal
// state
func (g *NotifierGW) PublishIntentCompleted(intent *models.PaymentIntent) error {
	data, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("failed to marshal payment intent: %w", err)
	}
	return g.publish(constants.SubjectIntentCompleted, data)
}

func (g *NotifierGW) publish(subject string, data []byte) error {
	return g.retrier.Execute(context.Background(), func(ctx context.Context) error {
		return g.natsClient.Publish(subject, data)
	})
}
