package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/services/payments"
)

func sampleIntent() *models.PaymentIntent {
	now := time.Now().UTC()
	return &models.PaymentIntent{
		ID:                 "pi_1",
		ClientSecret:       "secret_1",
		Amount:             decimal.RequireFromString("150.00"),
		Currency:           "GHS",
		Status:             models.IntentStatusCreated,
		PaymentMethodTypes: models.StringSlice{"card"},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestCreateIntent_Insert(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("INSERT INTO payment_intents").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateIntent(context.Background(), sampleIntent())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIntent_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT \\* FROM payment_intents WHERE id = \\$1").
		WithArgs("pi_missing").
		WillReturnError(sql.ErrNoRows)

	intent, err := repo.GetIntent(context.Background(), "pi_missing")

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrIntentNotFound)
}

func TestGetIntent_Success(t *testing.T) {
	repo, mock := newTestRepo(t)

	rows := sqlmock.NewRows([]string{"id", "client_secret", "amount", "currency", "status", "payment_method_types", "created_at", "updated_at"}).
		AddRow("pi_1", "secret_1", "150.00", "GHS", "requires_confirmation", `["card"]`, time.Now().UTC(), time.Now().UTC())
	mock.ExpectQuery("SELECT \\* FROM payment_intents WHERE id = \\$1").
		WithArgs("pi_1").
		WillReturnRows(rows)

	intent, err := repo.GetIntent(context.Background(), "pi_1")

	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, models.IntentStatusRequiresConfirmation, intent.Status)
	assert.Equal(t, models.StringSlice{"card"}, intent.PaymentMethodTypes)
}

func TestUpdateIntent_Success(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE payment_intents").
		WillReturnResult(sqlmock.NewResult(0, 1))

	intent := sampleIntent()
	intent.Status = models.IntentStatusProcessing

	err := repo.UpdateIntent(context.Background(), intent, models.IntentStatusRequiresConfirmation)

	assert.NoError(t, err)
}

func TestUpdateIntent_StaleStatusIsInvalidState(t *testing.T) {
	repo, mock := newTestRepo(t)

	// zero rows affected means another request transitioned the intent first
	mock.ExpectExec("UPDATE payment_intents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	intent := sampleIntent()
	intent.Status = models.IntentStatusProcessing

	err := repo.UpdateIntent(context.Background(), intent, models.IntentStatusRequiresConfirmation)

	assert.ErrorIs(t, err, payments.ErrInvalidState)
}

func TestListIntents_Success(t *testing.T) {
	repo, mock := newTestRepo(t)

	rows := sqlmock.NewRows([]string{"id", "client_secret", "amount", "currency", "status", "created_at", "updated_at"}).
		AddRow("pi_2", "secret_2", "10.00", "NGN", "created", time.Now().UTC(), time.Now().UTC()).
		AddRow("pi_1", "secret_1", "150.00", "GHS", "succeeded", time.Now().UTC(), time.Now().UTC())
	mock.ExpectQuery("SELECT \\* FROM payment_intents ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
		WithArgs(50, 0).
		WillReturnRows(rows)

	intents, err := repo.ListIntents(context.Background(), 50, 0)

	require.NoError(t, err)
	require.Len(t, intents, 2)
	assert.Equal(t, "pi_2", intents[0].ID)
}
