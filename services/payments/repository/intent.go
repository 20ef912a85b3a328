package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/services/payments"
)

// CreateIntent persists a new payment intent
func (r *PaymentRepo) CreateIntent(ctx context.Context, intent *models.PaymentIntent) error {
	query := `
		INSERT INTO payment_intents (
			id, client_secret, amount, currency, status, payment_method,
			payment_method_types, customer_email, business_id, payment_result,
			canceled_at, created_at, updated_at
		) VALUES (
			:id, :client_secret, :amount, :currency, :status, :payment_method,
			:payment_method_types, :customer_email, :business_id, :payment_result,
			:canceled_at, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, intent); err != nil {
		return fmt.Errorf("failed to insert payment intent: %w", err)
	}
	return nil
}

// GetIntent retrieves a payment intent by id
func (r *PaymentRepo) GetIntent(ctx context.Context, id string) (*models.PaymentIntent, error) {
	query := `SELECT * FROM payment_intents WHERE id = $1`

	var intent models.PaymentIntent
	err := r.db.GetContext(ctx, &intent, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrIntentNotFound
		}
		return nil, fmt.Errorf("failed to get payment intent: %w", err)
	}
	return &intent, nil
}

// ListIntents retrieves payment intents, newest first
func (r *PaymentRepo) ListIntents(ctx context.Context, limit, offset int) ([]models.PaymentIntent, error) {
	query := `SELECT * FROM payment_intents ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	intents := []models.PaymentIntent{}
	if err := r.db.SelectContext(ctx, &intents, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list payment intents: %w", err)
	}
	return intents, nil
}

// UpdateIntent writes the intent guarded by its expected current status.
// Zero rows affected means another request transitioned the intent first;
// the caller sees that as an invalid state.
func (r *PaymentRepo) UpdateIntent(ctx context.Context, intent *models.PaymentIntent, expectedStatus models.IntentStatus) error {
	query := `
		UPDATE payment_intents
		SET amount = $1, currency = $2, status = $3, payment_method = $4,
			payment_method_types = $5, customer_email = $6, payment_result = $7,
			canceled_at = $8, updated_at = $9
		WHERE id = $10 AND status = $11
	`
	res, err := r.db.ExecContext(ctx, query,
		intent.Amount,
		intent.Currency,
		intent.Status,
		intent.PaymentMethod,
		intent.PaymentMethodTypes,
		intent.CustomerEmail,
		intent.PaymentResult,
		intent.CanceledAt,
		intent.UpdatedAt,
		intent.ID,
		expectedStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment intent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return payments.ErrInvalidState
	}
	return nil
}
