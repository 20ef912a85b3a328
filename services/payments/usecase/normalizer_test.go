package usecase

import (
	"testing"

	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/services/payments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEvent_PaystackChargeSuccess(t *testing.T) {
	body := []byte(`{
		"event": "charge.success",
		"data": {
			"reference": "ref_1",
			"amount": 15000,
			"currency": "ghs",
			"channel": "mobile_money",
			"customer": {"email": "ama@example.com", "first_name": "Ama", "last_name": "Mensah", "phone": "+233201234567"},
			"metadata": {"business_id": "biz_1", "payment_type": "storefront_purchase"}
		}
	}`)

	event, err := NormalizeEvent(models.ChannelPaystack, body)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.ProviderPaystack, event.Provider)
	assert.Equal(t, "ref_1", event.Reference)
	assert.Equal(t, int64(15000), event.AmountMinor)
	assert.Equal(t, "GHS", event.Currency)
	assert.Equal(t, models.PaymentMethodMobileMoney, event.PaymentMethod)
	assert.Equal(t, "Ama Mensah", event.Customer.Name)
	assert.Equal(t, "biz_1", event.Metadata.BusinessID)
	assert.Equal(t, string(models.PaymentTypeStorefront), event.Metadata.PaymentType)
	assert.Equal(t, body, []byte(event.RawPayload))
}

func TestNormalizeEvent_PaystackEmptyStringMetadata(t *testing.T) {
	// Paystack sends metadata as "" when nothing was attached at charge time
	body := []byte(`{
		"event": "charge.success",
		"data": {
			"reference": "ref_2",
			"amount": 100,
			"currency": "NGN",
			"channel": "card",
			"customer": {"email": "x@example.com"},
			"metadata": ""
		}
	}`)

	event, err := NormalizeEvent(models.ChannelPaystack, body)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Empty(t, event.Metadata.BusinessID)
	assert.Empty(t, event.Metadata.PaymentLinkID)
}

func TestNormalizeEvent_PaystackIgnoresOtherEventTypes(t *testing.T) {
	for _, eventType := range []string{"charge.failed", "transfer.success", "subscription.create"} {
		body := []byte(`{"event": "` + eventType + `", "data": {"reference": "ref_1"}}`)

		event, err := NormalizeEvent(models.ChannelPaystack, body)

		assert.NoError(t, err, eventType)
		assert.Nil(t, event, eventType)
	}
}

func TestNormalizeEvent_PaystackMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"missing event type", `{"data": {"reference": "ref_1"}}`},
		{"success without reference", `{"event": "charge.success", "data": {"amount": 100, "currency": "GHS"}}`},
		{"success without currency", `{"event": "charge.success", "data": {"reference": "ref_1", "amount": 100}}`},
		{"success without amount", `{"event": "charge.success", "data": {"reference": "ref_zero", "currency": "GHS"}}`},
		{"success with negative amount", `{"event": "charge.success", "data": {"reference": "ref_neg", "amount": -500, "currency": "GHS"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := NormalizeEvent(models.ChannelPaystack, []byte(tt.body))
			assert.Nil(t, event)
			assert.ErrorIs(t, err, payments.ErrMalformedEvent)
		})
	}
}

func TestNormalizeEvent_GenericSuccess(t *testing.T) {
	body := []byte(`{
		"type": "payment.succeeded",
		"provider": "stripe",
		"data": {
			"reference": "py_1",
			"amount_minor": 2500,
			"currency": "usd",
			"payment_method": "bank_transfer",
			"customer": {"email": "joe@example.com", "name": "Joe Doe"}
		}
	}`)

	event, err := NormalizeEvent(models.ChannelGeneric, body)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.ProviderStripe, event.Provider)
	assert.Equal(t, int64(2500), event.AmountMinor)
	assert.Equal(t, "USD", event.Currency)
	assert.Equal(t, models.PaymentMethodBankTransfer, event.PaymentMethod)
}

func TestNormalizeEvent_GenericRejectsNonPositiveAmount(t *testing.T) {
	for _, body := range []string{
		`{"type": "payment.succeeded", "provider": "stripe", "data": {"reference": "py_zero", "currency": "USD"}}`,
		`{"type": "payment.succeeded", "provider": "stripe", "data": {"reference": "py_neg", "amount_minor": -100, "currency": "USD"}}`,
	} {
		event, err := NormalizeEvent(models.ChannelGeneric, []byte(body))
		assert.Nil(t, event)
		assert.ErrorIs(t, err, payments.ErrMalformedEvent)
	}
}

func TestNormalizeEvent_GenericUnknownProviderFallsBack(t *testing.T) {
	body := []byte(`{
		"type": "payment.succeeded",
		"provider": "flutterwave",
		"data": {"reference": "fw_1", "amount_minor": 100, "currency": "NGN"}
	}`)

	event, err := NormalizeEvent(models.ChannelGeneric, body)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.ProviderOther, event.Provider)
}

func TestMethodForChannel(t *testing.T) {
	assert.Equal(t, models.PaymentMethodCard, methodForChannel("card"))
	assert.Equal(t, models.PaymentMethodCard, methodForChannel("CARD"))
	assert.Equal(t, models.PaymentMethodBankTransfer, methodForChannel("bank"))
	assert.Equal(t, models.PaymentMethodBankTransfer, methodForChannel("bank_transfer"))
	assert.Equal(t, models.PaymentMethodMobileMoney, methodForChannel("mobile_money"))
	assert.Equal(t, models.PaymentMethodOther, methodForChannel("ussd"))
	assert.Equal(t, models.PaymentMethodOther, methodForChannel(""))
}
