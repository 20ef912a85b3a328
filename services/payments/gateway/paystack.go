package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kwabena-io/sikaflow/internal/pkg/circuitbreaker"
	"github.com/kwabena-io/sikaflow/internal/pkg/currency"
	httppkg "github.com/kwabena-io/sikaflow/internal/pkg/http"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/kwabena-io/sikaflow/services/payments"
)

// PaystackGW talks to the Paystack API. It implements payments.PaymentGW.
// All provider calls run behind a circuit breaker so a dead provider fails
// fast instead of tying up webhook and confirm requests on timeouts.
type PaystackGW struct {
	client    *httppkg.Client
	breaker   *circuitbreaker.CircuitBreaker
	secretKey string
}

// NewPaystackGW creates a new Paystack gateway client
func NewPaystackGW(cfg models.PaystackConfig) *PaystackGW {
	return &PaystackGW{
		client:    httppkg.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSec)*time.Second),
		breaker:   circuitbreaker.New(circuitbreaker.DefaultConfig("paystack")),
		secretKey: cfg.SecretKey,
	}
}

// verifyResponse is the Paystack transaction verification response shape
type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
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
		// Paystack sends metadata as "" when none was attached
		Metadata json.RawMessage `json:"metadata"`
	} `json:"data"`
}

// VerifyTransaction checks a provider reference against the Paystack API and
// returns the canonical event when the charge succeeded
func (g *PaystackGW) VerifyTransaction(ctx context.Context, reference string) (*models.PaymentEvent, error) {
	var resp verifyResponse
	var status int
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var cerr error
		status, cerr = g.client.GetJSON(ctx,
			"/transaction/verify/"+url.PathEscape(reference),
			g.authHeaders(),
			&resp,
		)
		if cerr != nil {
			return cerr
		}
		if status >= http.StatusInternalServerError {
			return fmt.Errorf("provider returned %d", status)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrGatewayUnavailable, err)
	}

	if status == http.StatusNotFound {
		return nil, payments.ErrTransactionNotFound
	}
	if status != http.StatusOK || !resp.Status {
		return nil, fmt.Errorf("%w: %s", payments.ErrVerificationFailed, resp.Message)
	}
	if resp.Data.Status != "success" {
		return nil, fmt.Errorf("%w: charge status %q", payments.ErrVerificationFailed, resp.Data.Status)
	}
	if resp.Data.Amount <= 0 {
		return nil, fmt.Errorf("%w: non-positive amount %d", payments.ErrVerificationFailed, resp.Data.Amount)
	}

	name := strings.TrimSpace(resp.Data.Customer.FirstName + " " + resp.Data.Customer.LastName)

	return &models.PaymentEvent{
		Provider:      models.ProviderPaystack,
		Reference:     resp.Data.Reference,
		AmountMinor:   resp.Data.Amount,
		Currency:      strings.ToUpper(resp.Data.Currency),
		Channel:       resp.Data.Channel,
		PaymentMethod: models.MethodForChannel(resp.Data.Channel),
		Customer: models.EventCustomer{
			Email: resp.Data.Customer.Email,
			Name:  name,
			Phone: resp.Data.Customer.Phone,
		},
		Metadata: decodeEventMetadata(resp.Data.Metadata),
	}, nil
}

// decodeEventMetadata tolerates metadata being absent, "" or an object
func decodeEventMetadata(raw json.RawMessage) models.EventMetadata {
	var meta models.EventMetadata
	if len(raw) == 0 {
		return meta
	}
	_ = json.Unmarshal(raw, &meta)
	return meta
}

// chargeResponse is the Paystack charge response shape
type chargeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status         string `json:"status"`
		GatewayMessage string `json:"gateway_response"`
	} `json:"data"`
}

// ChargeIntent performs the synchronous charge attempt for a confirmed
// payment intent. Network failure is an error, distinct from a decline,
// so the caller can treat it as retryable.
func (g *PaystackGW) ChargeIntent(ctx context.Context, intent *models.PaymentIntent) (*models.ChargeOutcome, error) {
	email := ""
	if intent.CustomerEmail != nil {
		email = *intent.CustomerEmail
	}

	body := map[string]interface{}{
		"email":     email,
		"amount":    currency.ToMinorUnit(intent.Amount, intent.Currency),
		"currency":  intent.Currency,
		"reference": intent.ID,
	}

	var resp chargeResponse
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		status, cerr := g.client.PostJSON(ctx, "/charge", g.authHeaders(), body, &resp)
		if cerr != nil {
			return cerr
		}
		if status >= http.StatusInternalServerError {
			return fmt.Errorf("provider returned %d", status)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrGatewayUnavailable, err)
	}

	if resp.Status && resp.Data.Status == "success" {
		return &models.ChargeOutcome{Succeeded: true}, nil
	}

	reason := resp.Data.GatewayMessage
	if reason == "" {
		reason = resp.Message
	}
	return &models.ChargeOutcome{Succeeded: false, FailureReason: reason}, nil
}

func (g *PaystackGW) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + g.secretKey,
	}
}
