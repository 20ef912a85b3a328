package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/services/payments"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.intentRepo.EXPECT().
		CreateIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, intent *models.PaymentIntent) error {
			assert.Contains(t, intent.ID, "pi_")
			assert.Contains(t, intent.ClientSecret, "secret_")
			assert.Equal(t, models.IntentStatusCreated, intent.Status)
			assert.Equal(t, "GHS", intent.Currency)
			assert.Equal(t, models.StringSlice{"card"}, intent.PaymentMethodTypes)
			return nil
		})

	// Act
	intent, err := uc.CreateIntent(context.Background(), &models.CreateIntentRequest{
		Amount:   decimal.RequireFromString("150.00"),
		Currency: "ghs",
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, intent)
	assert.Equal(t, models.IntentStatusCreated, intent.Status)
}

func TestCreateIntent_RejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	for _, amount := range []string{"0", "-10"} {
		intent, err := uc.CreateIntent(context.Background(), &models.CreateIntentRequest{
			Amount:   decimal.RequireFromString(amount),
			Currency: "GHS",
		})
		assert.Nil(t, intent, amount)
		assert.ErrorIs(t, err, payments.ErrInvalidAmount, amount)
	}
}

func TestCreateIntent_RequiresCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	intent, err := uc.CreateIntent(context.Background(), &models.CreateIntentRequest{
		Amount: decimal.RequireFromString("10"),
	})
	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrInvalidAmount)
}

func TestListIntents_ClampsNegativeOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.intentRepo.EXPECT().
		ListIntents(gomock.Any(), 10, 0).
		Return([]models.PaymentIntent{}, nil)

	_, err := uc.ListIntents(context.Background(), 10, -3)
	assert.NoError(t, err)
}

func TestUpdateIntent_SettingPaymentMethodAdvancesState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	stored := &models.PaymentIntent{
		ID:       "pi_1",
		Status:   models.IntentStatusCreated,
		Amount:   decimal.RequireFromString("10"),
		Currency: "GHS",
	}
	method := "card"

	m.intentRepo.EXPECT().GetIntent(gomock.Any(), "pi_1").Return(stored, nil)
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusCreated).
		DoAndReturn(func(_ context.Context, intent *models.PaymentIntent, _ models.IntentStatus) error {
			assert.Equal(t, models.IntentStatusRequiresConfirmation, intent.Status)
			return nil
		})

	intent, err := uc.UpdateIntent(context.Background(), "pi_1", &models.UpdateIntentRequest{PaymentMethod: &method})

	require.NoError(t, err)
	assert.Equal(t, models.IntentStatusRequiresConfirmation, intent.Status)
}

func TestUpdateIntent_RejectedWhileProcessing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.intentRepo.EXPECT().
		GetIntent(gomock.Any(), "pi_1").
		Return(&models.PaymentIntent{ID: "pi_1", Status: models.IntentStatusProcessing}, nil)

	method := "card"
	intent, err := uc.UpdateIntent(context.Background(), "pi_1", &models.UpdateIntentRequest{PaymentMethod: &method})

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrInvalidState)
}

func TestConfirmIntent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	method := "card"
	biz := "biz_1"
	stored := &models.PaymentIntent{
		ID:            "pi_1",
		Status:        models.IntentStatusRequiresConfirmation,
		Amount:        decimal.RequireFromString("150.00"),
		Currency:      "GHS",
		PaymentMethod: &method,
		BusinessID:    &biz,
	}

	m.intentRepo.EXPECT().GetIntent(gomock.Any(), "pi_1").Return(stored, nil)
	// transition into processing guarded on the previous status
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusRequiresConfirmation).
		Return(nil)
	m.paymentGW.EXPECT().
		ChargeIntent(gomock.Any(), gomock.Any()).
		Return(&models.ChargeOutcome{Succeeded: true}, nil)
	// terminal transition guarded on processing
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusProcessing).
		DoAndReturn(func(_ context.Context, intent *models.PaymentIntent, _ models.IntentStatus) error {
			assert.Equal(t, models.IntentStatusSucceeded, intent.Status)
			return nil
		})
	// ledger write keyed on the intent id
	m.txRepo.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) (*models.Transaction, bool, error) {
			assert.Equal(t, "pi_1", tx.ProviderReference)
			assert.Equal(t, models.ProviderOther, tx.Provider)
			assert.Equal(t, models.TransactionStatusSuccess, tx.Status)
			assert.True(t, tx.Amount.Equal(decimal.RequireFromString("150.00")))
			return tx, false, nil
		})

	txPublished := make(chan struct{})
	intentPublished := make(chan struct{})
	m.notifierGW.EXPECT().
		PublishTransactionRecorded(gomock.Any()).
		DoAndReturn(func(*models.Transaction) error {
			close(txPublished)
			return nil
		})
	m.notifierGW.EXPECT().
		PublishIntentCompleted(gomock.Any()).
		DoAndReturn(func(*models.PaymentIntent) error {
			close(intentPublished)
			return nil
		})

	intent, err := uc.ConfirmIntent(context.Background(), "pi_1", &models.ConfirmIntentRequest{})

	require.NoError(t, err)
	assert.Equal(t, models.IntentStatusSucceeded, intent.Status)

	for _, ch := range []chan struct{}{txPublished, intentPublished} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("expected broadcast")
		}
	}
}

func TestConfirmIntent_LedgerFailureHandsIntentBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	method := "card"
	stored := &models.PaymentIntent{
		ID:            "pi_1",
		Status:        models.IntentStatusRequiresConfirmation,
		Amount:        decimal.RequireFromString("150.00"),
		Currency:      "GHS",
		PaymentMethod: &method,
	}

	m.intentRepo.EXPECT().GetIntent(gomock.Any(), "pi_1").Return(stored, nil)
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusRequiresConfirmation).
		Return(nil)
	m.paymentGW.EXPECT().
		ChargeIntent(gomock.Any(), gomock.Any()).
		Return(&models.ChargeOutcome{Succeeded: true}, nil)
	m.txRepo.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		Return(nil, false, errors.New("connection refused"))
	// the intent must never reach succeeded without its ledger row; it rolls
	// back to requires_confirmation so a retried confirm can repeat the
	// idempotent write
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusProcessing).
		DoAndReturn(func(_ context.Context, intent *models.PaymentIntent, _ models.IntentStatus) error {
			assert.Equal(t, models.IntentStatusRequiresConfirmation, intent.Status)
			return nil
		})

	intent, err := uc.ConfirmIntent(context.Background(), "pi_1", &models.ConfirmIntentRequest{})

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrDownstream)
	// no success was reported, so the rolled-back intent stays confirmable
	assert.Equal(t, models.IntentStatusRequiresConfirmation, stored.Status)
}

func TestConfirmIntent_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	method := "card"
	stored := &models.PaymentIntent{
		ID:            "pi_1",
		Status:        models.IntentStatusRequiresConfirmation,
		Amount:        decimal.RequireFromString("10"),
		Currency:      "GHS",
		PaymentMethod: &method,
	}

	m.intentRepo.EXPECT().GetIntent(gomock.Any(), "pi_1").Return(stored, nil)
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusRequiresConfirmation).
		Return(nil)
	m.paymentGW.EXPECT().
		ChargeIntent(gomock.Any(), gomock.Any()).
		Return(&models.ChargeOutcome{Succeeded: false, FailureReason: "insufficient_funds"}, nil)
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusProcessing).
		DoAndReturn(func(_ context.Context, intent *models.PaymentIntent, _ models.IntentStatus) error {
			assert.Equal(t, models.IntentStatusFailed, intent.Status)
			return nil
		})
	m.txRepo.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) (*models.Transaction, bool, error) {
			assert.Equal(t, models.TransactionStatusFailed, tx.Status)
			require.NotNil(t, tx.FailureReason)
			assert.Equal(t, "insufficient_funds", *tx.FailureReason)
			return tx, false, nil
		})
	m.notifierGW.EXPECT().PublishIntentCompleted(gomock.Any()).Return(nil).AnyTimes()

	intent, err := uc.ConfirmIntent(context.Background(), "pi_1", &models.ConfirmIntentRequest{})

	require.NoError(t, err)
	assert.Equal(t, models.IntentStatusFailed, intent.Status)
}

func TestConfirmIntent_GatewayFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	method := "card"
	stored := &models.PaymentIntent{
		ID:            "pi_1",
		Status:        models.IntentStatusRequiresConfirmation,
		Amount:        decimal.RequireFromString("10"),
		Currency:      "GHS",
		PaymentMethod: &method,
	}

	m.intentRepo.EXPECT().GetIntent(gomock.Any(), "pi_1").Return(stored, nil)
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusRequiresConfirmation).
		Return(nil)
	m.paymentGW.EXPECT().
		ChargeIntent(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))
	// rolled back so the client can retry the confirm
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusProcessing).
		DoAndReturn(func(_ context.Context, intent *models.PaymentIntent, _ models.IntentStatus) error {
			assert.Equal(t, models.IntentStatusRequiresConfirmation, intent.Status)
			return nil
		})

	intent, err := uc.ConfirmIntent(context.Background(), "pi_1", &models.ConfirmIntentRequest{})

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrGatewayUnavailable)
}

func TestConfirmIntent_RequiresPaymentMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.intentRepo.EXPECT().
		GetIntent(gomock.Any(), "pi_1").
		Return(&models.PaymentIntent{ID: "pi_1", Status: models.IntentStatusCreated}, nil)

	intent, err := uc.ConfirmIntent(context.Background(), "pi_1", &models.ConfirmIntentRequest{})

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrInvalidState)
}

func TestConfirmIntent_RejectedWhenCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.intentRepo.EXPECT().
		GetIntent(gomock.Any(), "pi_1").
		Return(&models.PaymentIntent{ID: "pi_1", Status: models.IntentStatusCanceled}, nil)

	intent, err := uc.ConfirmIntent(context.Background(), "pi_1", &models.ConfirmIntentRequest{PaymentMethod: "card"})

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrInvalidState)
}

func TestCancelIntent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.intentRepo.EXPECT().
		GetIntent(gomock.Any(), "pi_1").
		Return(&models.PaymentIntent{ID: "pi_1", Status: models.IntentStatusRequiresConfirmation}, nil)
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusRequiresConfirmation).
		DoAndReturn(func(_ context.Context, intent *models.PaymentIntent, _ models.IntentStatus) error {
			assert.Equal(t, models.IntentStatusCanceled, intent.Status)
			require.NotNil(t, intent.CanceledAt)
			return nil
		})

	intent, err := uc.CancelIntent(context.Background(), "pi_1")

	require.NoError(t, err)
	assert.Equal(t, models.IntentStatusCanceled, intent.Status)
}

func TestCancelIntent_RejectedWhenSucceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.intentRepo.EXPECT().
		GetIntent(gomock.Any(), "pi_1").
		Return(&models.PaymentIntent{ID: "pi_1", Status: models.IntentStatusSucceeded}, nil)

	intent, err := uc.CancelIntent(context.Background(), "pi_1")

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrInvalidState)
}

func TestCancelIntent_RejectedWhenAlreadyCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.intentRepo.EXPECT().
		GetIntent(gomock.Any(), "pi_1").
		Return(&models.PaymentIntent{ID: "pi_1", Status: models.IntentStatusCanceled}, nil)

	intent, err := uc.CancelIntent(context.Background(), "pi_1")

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrInvalidState)
}

func TestConfirmIntent_ConcurrentTransitionLoses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	method := "card"
	stored := &models.PaymentIntent{
		ID:            "pi_1",
		Status:        models.IntentStatusRequiresConfirmation,
		Amount:        decimal.RequireFromString("10"),
		Currency:      "GHS",
		PaymentMethod: &method,
	}

	m.intentRepo.EXPECT().GetIntent(gomock.Any(), "pi_1").Return(stored, nil)
	// the guarded update fails because another confirm won the race
	m.intentRepo.EXPECT().
		UpdateIntent(gomock.Any(), gomock.Any(), models.IntentStatusRequiresConfirmation).
		Return(payments.ErrInvalidState)

	intent, err := uc.ConfirmIntent(context.Background(), "pi_1", &models.ConfirmIntentRequest{})

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, payments.ErrInvalidState)
}
