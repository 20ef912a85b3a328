package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/services/payments"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint
// violation
const pgUniqueViolation = "23505"

// InsertTransaction persists a ledger entry. Uniqueness of
// (provider, provider_reference) is enforced by a partial unique index in
// the database, not in application code, because duplicate deliveries of the
// same event can be handled concurrently by separate processes with no
// shared lock. A unique violation means the write already completed; the
// existing row is returned with duplicate = true.
func (r *PaymentRepo) InsertTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, bool, error) {
	query := `
		INSERT INTO transactions (
			id, provider_reference, amount, currency, status, provider,
			business_id, storefront_id, payment_link_id, payment_type,
			payment_method, customer_name, customer_email, customer_phone,
			metadata, failure_reason, created_at, processed_at
		) VALUES (
			:id, :provider_reference, :amount, :currency, :status, :provider,
			:business_id, :storefront_id, :payment_link_id, :payment_type,
			:payment_method, :customer_name, :customer_email, :customer_phone,
			:metadata, :failure_reason, :created_at, :processed_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			existing, gerr := r.GetTransactionByReference(ctx, tx.Provider, tx.ProviderReference)
			if gerr != nil {
				return nil, false, fmt.Errorf("failed to load existing transaction after conflict: %w", gerr)
			}
			return existing, true, nil
		}
		return nil, false, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return tx, false, nil
}

// GetTransactionByID retrieves a ledger entry by its id
func (r *PaymentRepo) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE id = $1`

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// GetTransactionByReference retrieves a ledger entry by its idempotency key.
// Only successful entries participate in the uniqueness guarantee; failed
// audit rows for the same reference are skipped.
func (r *PaymentRepo) GetTransactionByReference(ctx context.Context, provider models.PaymentProvider, reference string) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE provider = $1 AND provider_reference = $2 AND status = 'success'`

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, provider, reference)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// ListTransactions retrieves ledger entries matching the filter, newest
// first
func (r *PaymentRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE 1=1`
	args := []interface{}{}

	if filter.BusinessID != "" {
		args = append(args, filter.BusinessID)
		query += fmt.Sprintf(" AND business_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
