package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kwabena-io/sikaflow/internal/pkg/models"
)

// GetPaymentLink retrieves a payment link for attribution resolution
func (r *PaymentRepo) GetPaymentLink(ctx context.Context, id string) (*models.PaymentLink, error) {
	query := `SELECT * FROM payment_links WHERE id = $1`

	var link models.PaymentLink
	err := r.db.GetContext(ctx, &link, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment link not found")
		}
		return nil, fmt.Errorf("failed to get payment link: %w", err)
	}
	return &link, nil
}

// GetStorefront retrieves a storefront for attribution resolution
func (r *PaymentRepo) GetStorefront(ctx context.Context, id string) (*models.Storefront, error) {
	query := `SELECT * FROM storefronts WHERE id = $1`

	var storefront models.Storefront
	err := r.db.GetContext(ctx, &storefront, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("storefront not found")
		}
		return nil, fmt.Errorf("failed to get storefront: %w", err)
	}
	return &storefront, nil
}
