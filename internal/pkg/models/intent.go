package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntentStatus enumerates payment intent lifecycle states
type IntentStatus string

const (
	IntentStatusCreated               IntentStatus = "created"
	IntentStatusRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentStatusRequiresConfirmation  IntentStatus = "requires_confirmation"
	IntentStatusProcessing            IntentStatus = "processing"
	IntentStatusSucceeded             IntentStatus = "succeeded"
	IntentStatusFailed                IntentStatus = "failed"
	IntentStatusCanceled              IntentStatus = "canceled"
)

// Terminal reports whether the status permits no further transitions
func (s IntentStatus) Terminal() bool {
	return s == IntentStatusSucceeded || s == IntentStatusCanceled
}

// Mutable reports whether update/confirm operations are still permitted
func (s IntentStatus) Mutable() bool {
	switch s {
	case IntentStatusCreated, IntentStatusRequiresPaymentMethod, IntentStatusRequiresConfirmation:
		return true
	}
	return false
}

// PaymentIntent is the synchronous, client-driven payment representation.
// It is created once, mutated only through its state machine and retained
// for audit after reaching a terminal state.
type PaymentIntent struct {
	ID                 string          `json:"id" db:"id"`
	ClientSecret       string          `json:"client_secret" db:"client_secret"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
	Currency           string          `json:"currency" db:"currency"`
	Status             IntentStatus    `json:"status" db:"status"`
	PaymentMethod      *string         `json:"payment_method,omitempty" db:"payment_method"`
	PaymentMethodTypes StringSlice     `json:"payment_method_types" db:"payment_method_types"`
	CustomerEmail      *string         `json:"customer_email,omitempty" db:"customer_email"`
	BusinessID         *string         `json:"business_id,omitempty" db:"business_id"`
	PaymentResult      *string         `json:"payment_result,omitempty" db:"payment_result"`
	CanceledAt         *time.Time      `json:"canceled_at,omitempty" db:"canceled_at"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateIntentRequest is the payload for creating a payment intent
type CreateIntentRequest struct {
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	CustomerEmail      string          `json:"customer_email,omitempty"`
	BusinessID         string          `json:"business_id,omitempty"`
	PaymentMethodTypes []string        `json:"payment_method_types,omitempty"`
}

// UpdateIntentRequest is the payload for updating a mutable intent
type UpdateIntentRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	CustomerEmail *string          `json:"customer_email,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
}

// ConfirmIntentRequest is the payload for confirming an intent
type ConfirmIntentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ChargeOutcome is the result of a gateway charge attempt for an intent
type ChargeOutcome struct {
	Succeeded     bool
	FailureReason string
}
