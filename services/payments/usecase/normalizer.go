package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/services/payments"
)

// paystackPayload is the wire shape of a Paystack webhook delivery
type paystackPayload struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Channel   string `json:"channel"`
		Customer  struct {
			Email     string `json:"email"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Phone     string `json:"phone"`
		} `json:"customer"`
		// Paystack sends metadata as an empty string when none was attached
		Metadata json.RawMessage `json:"metadata"`
	} `json:"data"`
}

// genericPayload is the wire shape of the generic webhook channel used by
// other event sources
type genericPayload struct {
	Type     string `json:"type"`
	Provider string `json:"provider"`
	Data     struct {
		Reference     string `json:"reference"`
		AmountMinor   int64  `json:"amount_minor"`
		Currency      string `json:"currency"`
		PaymentMethod string `json:"payment_method"`
		Customer      struct {
			Email string `json:"email"`
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"customer"`
		Metadata json.RawMessage `json:"metadata"`
	} `json:"data"`
}

// methodForChannel resolves a provider channel code to a payment method
func methodForChannel(channel string) models.PaymentMethod {
	return models.MethodForChannel(channel)
}

// NormalizeEvent maps an authenticated raw payload into the canonical
// PaymentEvent. Only charge-success events produce an event; other event
// types return (nil, nil) and are acknowledged without further work, because
// providers treat non-2xx responses as a signal to retry and retrying an
// unhandled event type is wasted work. An unparseable payload or a success
// event missing required fields returns ErrMalformedEvent.
func NormalizeEvent(channel models.WebhookChannel, rawBody []byte) (*models.PaymentEvent, error) {
	switch channel {
	case models.ChannelPaystack:
		return normalizePaystackEvent(rawBody)
	default:
		return normalizeGenericEvent(rawBody)
	}
}

func normalizePaystackEvent(rawBody []byte) (*models.PaymentEvent, error) {
	var payload paystackPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrMalformedEvent, err)
	}

	if payload.Event == "" {
		return nil, fmt.Errorf("%w: missing event type", payments.ErrMalformedEvent)
	}
	if payload.Event != "charge.success" {
		return nil, nil
	}

	if payload.Data.Reference == "" || payload.Data.Currency == "" {
		return nil, fmt.Errorf("%w: charge.success missing reference or currency", payments.ErrMalformedEvent)
	}
	if payload.Data.Amount <= 0 {
		return nil, fmt.Errorf("%w: charge.success amount must be positive", payments.ErrMalformedEvent)
	}

	name := strings.TrimSpace(payload.Data.Customer.FirstName + " " + payload.Data.Customer.LastName)

	return &models.PaymentEvent{
		Provider:      models.ProviderPaystack,
		Reference:     payload.Data.Reference,
		AmountMinor:   payload.Data.Amount,
		Currency:      strings.ToUpper(payload.Data.Currency),
		Channel:       payload.Data.Channel,
		PaymentMethod: methodForChannel(payload.Data.Channel),
		Customer: models.EventCustomer{
			Email: payload.Data.Customer.Email,
			Name:  name,
			Phone: payload.Data.Customer.Phone,
		},
		Metadata:   decodeMetadata(payload.Data.Metadata),
		RawPayload: rawBody,
	}, nil
}

func normalizeGenericEvent(rawBody []byte) (*models.PaymentEvent, error) {
	var payload genericPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrMalformedEvent, err)
	}

	if payload.Type == "" {
		return nil, fmt.Errorf("%w: missing event type", payments.ErrMalformedEvent)
	}
	if payload.Type != "payment.succeeded" {
		return nil, nil
	}

	if payload.Data.Reference == "" || payload.Data.Currency == "" {
		return nil, fmt.Errorf("%w: payment.succeeded missing reference or currency", payments.ErrMalformedEvent)
	}
	if payload.Data.AmountMinor <= 0 {
		return nil, fmt.Errorf("%w: payment.succeeded amount must be positive", payments.ErrMalformedEvent)
	}

	provider := models.ProviderOther
	if payload.Provider == string(models.ProviderStripe) {
		provider = models.ProviderStripe
	}

	return &models.PaymentEvent{
		Provider:      provider,
		Reference:     payload.Data.Reference,
		AmountMinor:   payload.Data.AmountMinor,
		Currency:      strings.ToUpper(payload.Data.Currency),
		Channel:       payload.Data.PaymentMethod,
		PaymentMethod: methodForChannel(payload.Data.PaymentMethod),
		Customer: models.EventCustomer{
			Email: payload.Data.Customer.Email,
			Name:  payload.Data.Customer.Name,
			Phone: payload.Data.Customer.Phone,
		},
		Metadata:   decodeMetadata(payload.Data.Metadata),
		RawPayload: rawBody,
	}, nil
}

// decodeMetadata tolerates the metadata field being absent, an empty string
// or an object. Attribution is best effort; a malformed metadata block
// degrades to an unattributed event instead of rejecting the payload.
func decodeMetadata(raw json.RawMessage) models.EventMetadata {
	var meta models.EventMetadata
	if len(raw) == 0 {
		return meta
	}
	_ = json.Unmarshal(raw, &meta)
	return meta
}
