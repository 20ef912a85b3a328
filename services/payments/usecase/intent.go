package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/services/payments"
)

// CreateIntent creates a new payment intent in the created state
func (uc *PaymentUC) CreateIntent(ctx context.Context, req *models.CreateIntentRequest) (*models.PaymentIntent, error) {
	if !req.Amount.IsPositive() {
		return nil, payments.ErrInvalidAmount
	}
	if req.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", payments.ErrInvalidAmount)
	}

	methodTypes := req.PaymentMethodTypes
	if len(methodTypes) == 0 {
		methodTypes = []string{string(models.PaymentMethodCard)}
	}

	now := time.Now().UTC()
	intent := &models.PaymentIntent{
		ID:                 "pi_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		ClientSecret:       "secret_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Amount:             req.Amount,
		Currency:           strings.ToUpper(req.Currency),
		Status:             models.IntentStatusCreated,
		PaymentMethodTypes: models.StringSlice(methodTypes),
		CustomerEmail:      optionalString(req.CustomerEmail),
		BusinessID:         optionalString(req.BusinessID),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.intentRepo.CreateIntent(ctx, intent); err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrDownstream, err)
	}

	return intent, nil
}

// GetIntent returns a payment intent by id
func (uc *PaymentUC) GetIntent(ctx context.Context, id string) (*models.PaymentIntent, error) {
	return uc.intentRepo.GetIntent(ctx, id)
}

// ListIntents returns payment intents, newest first
func (uc *PaymentUC) ListIntents(ctx context.Context, limit, offset int) ([]models.PaymentIntent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.intentRepo.ListIntents(ctx, limit, offset)
}

// UpdateIntent applies field updates to an intent that has not started
// processing yet
func (uc *PaymentUC) UpdateIntent(ctx context.Context, id string, req *models.UpdateIntentRequest) (*models.PaymentIntent, error) {
	intent, err := uc.intentRepo.GetIntent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !intent.Status.Mutable() {
		return nil, payments.ErrInvalidState
	}

	previous := intent.Status
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, payments.ErrInvalidAmount
		}
		intent.Amount = *req.Amount
	}
	if req.Currency != nil {
		intent.Currency = strings.ToUpper(*req.Currency)
	}
	if req.CustomerEmail != nil {
		intent.CustomerEmail = req.CustomerEmail
	}
	if req.PaymentMethod != nil {
		intent.PaymentMethod = req.PaymentMethod
		intent.Status = models.IntentStatusRequiresConfirmation
	}
	intent.UpdatedAt = time.Now().UTC()

	if err := uc.intentRepo.UpdateIntent(ctx, intent, previous); err != nil {
		return nil, err
	}
	return intent, nil
}

// ConfirmIntent drives an intent through processing and on to succeeded or
// failed based on the gateway charge outcome. On success the corresponding
// transaction is recorded through the same idempotent ledger writer as the
// webhook path, keyed on the intent id.
func (uc *PaymentUC) ConfirmIntent(ctx context.Context, id string, req *models.ConfirmIntentRequest) (*models.PaymentIntent, error) {
	intent, err := uc.intentRepo.GetIntent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !intent.Status.Mutable() {
		return nil, payments.ErrInvalidState
	}

	previous := intent.Status
	if req.PaymentMethod != "" {
		intent.PaymentMethod = &req.PaymentMethod
	}
	if intent.PaymentMethod == nil {
		return nil, fmt.Errorf("%w: payment method is required", payments.ErrInvalidState)
	}

	intent.Status = models.IntentStatusProcessing
	intent.UpdatedAt = time.Now().UTC()
	if err := uc.intentRepo.UpdateIntent(ctx, intent, previous); err != nil {
		return nil, err
	}

	outcome, err := uc.paymentGW.ChargeIntent(ctx, intent)
	if err != nil {
		// network failure is retryable, not a decline; hand the intent back
		// to the client for another confirm attempt
		intent.Status = models.IntentStatusRequiresConfirmation
		intent.UpdatedAt = time.Now().UTC()
		if uerr := uc.intentRepo.UpdateIntent(ctx, intent, models.IntentStatusProcessing); uerr != nil {
			logger.Error("Failed to roll intent back after gateway failure",
				logger.String("intent_id", intent.ID),
				logger.Err(uerr))
		}
		return nil, fmt.Errorf("%w: %v", payments.ErrGatewayUnavailable, err)
	}

	if outcome.Succeeded {
		return uc.completeIntent(ctx, intent)
	}
	return uc.failIntent(ctx, intent, outcome.FailureReason)
}

// completeIntent records the ledger entry before marking the intent
// succeeded. The write is idempotent on the intent id, so when it fails the
// intent is handed back for another confirm attempt instead of reporting a
// success with no money-received record behind it.
func (uc *PaymentUC) completeIntent(ctx context.Context, intent *models.PaymentIntent) (*models.PaymentIntent, error) {
	tx := uc.transactionForIntent(intent, models.TransactionStatusSuccess, "")
	recorded, duplicate, err := uc.txRepo.InsertTransaction(ctx, tx)
	if err != nil {
		intent.Status = models.IntentStatusRequiresConfirmation
		intent.UpdatedAt = time.Now().UTC()
		if uerr := uc.intentRepo.UpdateIntent(ctx, intent, models.IntentStatusProcessing); uerr != nil {
			logger.Error("Failed to roll intent back after ledger failure",
				logger.String("intent_id", intent.ID),
				logger.Err(uerr))
		}
		return nil, fmt.Errorf("%w: %v", payments.ErrDownstream, err)
	}

	result := "succeeded"
	intent.Status = models.IntentStatusSucceeded
	intent.PaymentResult = &result
	intent.UpdatedAt = time.Now().UTC()
	if err := uc.intentRepo.UpdateIntent(ctx, intent, models.IntentStatusProcessing); err != nil {
		return nil, err
	}

	if !duplicate {
		uc.notifyTransactionRecorded(recorded)
	}
	uc.notifyIntentCompleted(intent)

	return intent, nil
}

func (uc *PaymentUC) failIntent(ctx context.Context, intent *models.PaymentIntent, reason string) (*models.PaymentIntent, error) {
	result := "failed"
	intent.Status = models.IntentStatusFailed
	intent.PaymentResult = &result
	intent.UpdatedAt = time.Now().UTC()
	if err := uc.intentRepo.UpdateIntent(ctx, intent, models.IntentStatusProcessing); err != nil {
		return nil, err
	}

	// only a failed-status audit record; the intent itself carries the state
	tx := uc.transactionForIntent(intent, models.TransactionStatusFailed, reason)
	if _, _, err := uc.txRepo.InsertTransaction(ctx, tx); err != nil {
		logger.Warn("Failed to record audit entry for declined intent",
			logger.String("intent_id", intent.ID),
			logger.Err(err))
	}
	uc.notifyIntentCompleted(intent)

	return intent, nil
}

// CancelIntent cancels an intent that has not already succeeded or been
// canceled
func (uc *PaymentUC) CancelIntent(ctx context.Context, id string) (*models.PaymentIntent, error) {
	intent, err := uc.intentRepo.GetIntent(ctx, id)
	if err != nil {
		return nil, err
	}
	if intent.Status == models.IntentStatusSucceeded || intent.Status == models.IntentStatusCanceled {
		return nil, payments.ErrInvalidState
	}

	previous := intent.Status
	now := time.Now().UTC()
	intent.Status = models.IntentStatusCanceled
	intent.CanceledAt = &now
	intent.UpdatedAt = now

	if err := uc.intentRepo.UpdateIntent(ctx, intent, previous); err != nil {
		return nil, err
	}
	return intent, nil
}

// transactionForIntent builds the ledger entry for a finished intent.
// Intent amounts are already major-unit, so no currency conversion applies.
func (uc *PaymentUC) transactionForIntent(intent *models.PaymentIntent, status models.TransactionStatus, failureReason string) *models.Transaction {
	method := models.PaymentMethodOther
	if intent.PaymentMethod != nil {
		method = methodForChannel(*intent.PaymentMethod)
	}

	now := time.Now().UTC()
	tx := &models.Transaction{
		ID:                uuid.NewString(),
		ProviderReference: intent.ID,
		Amount:            intent.Amount,
		Currency:          intent.Currency,
		Status:            status,
		Provider:          models.ProviderOther,
		BusinessID:        intent.BusinessID,
		PaymentType:       models.PaymentTypeOther,
		PaymentMethod:     method,
		CreatedAt:         now,
		ProcessedAt:       &now,
	}
	if intent.CustomerEmail != nil {
		tx.CustomerEmail = *intent.CustomerEmail
	}
	if failureReason != "" {
		tx.FailureReason = &failureReason
	}
	return tx
}

// notifyIntentCompleted publishes terminal intent transitions, best effort
func (uc *PaymentUC) notifyIntentCompleted(intent *models.PaymentIntent) {
	snapshot := *intent
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic in intent broadcast",
					logger.Any("panic", r))
			}
		}()

		if err := uc.notifierGW.PublishIntentCompleted(&snapshot); err != nil {
			logger.Warn("Intent broadcast failed",
				logger.String("intent_id", snapshot.ID),
				logger.Err(err))
		}
	}()
}
