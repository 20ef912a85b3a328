package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
)

// PaymentRepo is the PostgreSQL-backed repository for the payments service.
// It implements payments.TransactionRepo, payments.IntentRepo and
// payments.AttributionRepo.
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepo creates a new payments repository
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}
