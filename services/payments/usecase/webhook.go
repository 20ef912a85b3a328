package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kwabena-io/sikaflow/internal/pkg/currency"
	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/internal/pkg/signature"
	"github.com/kwabena-io/sikaflow/services/payments"
)

// HandleWebhook runs the full ingestion pipeline for one webhook delivery:
// signature verification over the raw bytes, event normalization,
// attribution resolution, currency normalization and the idempotent ledger
// write. Verification happens first, unconditionally; no side effects occur
// on unauthenticated input. A nil transaction with a nil error means the
// event was authenticated but is not a charge-success and was acknowledged
// without recording.
func (uc *PaymentUC) HandleWebhook(ctx context.Context, channel models.WebhookChannel, rawBody []byte, signatureHeader string) (*models.Transaction, error) {
	var err error
	switch channel {
	case models.ChannelPaystack:
		err = signature.VerifyPaystack(rawBody, signatureHeader, uc.cfg.Paystack.SecretKey)
	default:
		err = signature.VerifyGeneric(rawBody, signatureHeader, uc.cfg.Webhook.Secret)
	}
	if err != nil {
		logger.Warn("Webhook signature rejected",
			logger.String("channel", string(channel)),
			logger.Err(err))
		return nil, err
	}

	event, err := NormalizeEvent(channel, rawBody)
	if err != nil {
		logger.Warn("Webhook payload rejected",
			logger.String("channel", string(channel)),
			logger.Err(err))
		return nil, err
	}
	if event == nil {
		// authenticated but not a charge-success; acknowledge and move on
		return nil, nil
	}

	return uc.recordEvent(ctx, event)
}

// VerifyPayment performs a synchronous server-to-provider verification for a
// provider reference and, on success, records the payment through the same
// pipeline as the webhook path so both converge on identical ledger
// semantics.
func (uc *PaymentUC) VerifyPayment(ctx context.Context, reference string) (*models.Transaction, error) {
	event, err := uc.paymentGW.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, err
	}
	return uc.recordEvent(ctx, event)
}

// recordEvent materializes one canonical payment event as a ledger entry.
// Duplicate deliveries resolve to the already-recorded transaction and are
// reported as success.
func (uc *PaymentUC) recordEvent(ctx context.Context, event *models.PaymentEvent) (*models.Transaction, error) {
	businessID := uc.resolveBusiness(ctx, event.Metadata)
	if businessID == "" {
		// record the money first; attribution can be repaired later
		logger.Warn("Recording unattributed transaction",
			logger.String("provider", string(event.Provider)),
			logger.String("reference", event.Reference))
	}

	now := time.Now().UTC()
	tx := &models.Transaction{
		ID:                uuid.NewString(),
		ProviderReference: event.Reference,
		Amount:            currency.ToMajorUnit(event.AmountMinor, event.Currency),
		Currency:          event.Currency,
		Status:            models.TransactionStatusSuccess,
		Provider:          event.Provider,
		BusinessID:        optionalString(businessID),
		StorefrontID:      optionalString(event.Metadata.StorefrontID),
		PaymentLinkID:     optionalString(event.Metadata.PaymentLinkID),
		PaymentType:       paymentTypeForEvent(event),
		PaymentMethod:     event.PaymentMethod,
		CustomerName:      event.Customer.Name,
		CustomerEmail:     event.Customer.Email,
		CustomerPhone:     event.Customer.Phone,
		Metadata:          event.RawPayload,
		CreatedAt:         now,
		ProcessedAt:       &now,
	}

	recorded, duplicate, err := uc.txRepo.InsertTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrDownstream, err)
	}

	if duplicate {
		logger.Info("Duplicate delivery resolved to existing transaction",
			logger.String("provider", string(recorded.Provider)),
			logger.String("reference", recorded.ProviderReference),
			logger.String("transaction_id", recorded.ID))
		return recorded, nil
	}

	uc.notifyTransactionRecorded(recorded)
	return recorded, nil
}

// notifyTransactionRecorded fans out the new transaction without delaying
// the provider-facing response. Broadcast failures are logged and swallowed.
func (uc *PaymentUC) notifyTransactionRecorded(tx *models.Transaction) {
	snapshot := *tx
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic in transaction broadcast",
					logger.Any("panic", r))
			}
		}()

		if err := uc.notifierGW.PublishTransactionRecorded(&snapshot); err != nil {
			logger.Warn("Transaction broadcast failed",
				logger.String("transaction_id", snapshot.ID),
				logger.Err(err))
		}
	}()
}

// paymentTypeForEvent classifies the payment from its metadata
func paymentTypeForEvent(event *models.PaymentEvent) models.PaymentType {
	switch event.Metadata.PaymentType {
	case string(models.PaymentTypeStorefront):
		return models.PaymentTypeStorefront
	case string(models.PaymentTypePaymentLink):
		return models.PaymentTypePaymentLink
	case string(models.PaymentTypeSubscription):
		return models.PaymentTypeSubscription
	}
	if event.Metadata.PaymentLinkID != "" {
		return models.PaymentTypePaymentLink
	}
	if event.Metadata.StorefrontID != "" {
		return models.PaymentTypeStorefront
	}
	return models.PaymentTypeOther
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetTransaction returns a single ledger entry
func (uc *PaymentUC) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return uc.txRepo.GetTransactionByID(ctx, id)
}

// ListTransactions returns ledger entries matching the filter. This is the
// read side dashboards poll to reconcile against the best-effort stream.
func (uc *PaymentUC) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.txRepo.ListTransactions(ctx, filter)
}
