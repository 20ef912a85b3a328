package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus enumerates ledger entry states.
// Success, failed and refunded are terminal and never revert to pending.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusSuccess  TransactionStatus = "success"
	TransactionStatusFailed   TransactionStatus = "failed"
	TransactionStatusRefunded TransactionStatus = "refunded"
)

// PaymentProvider identifies the upstream payment provider
type PaymentProvider string

const (
	ProviderPaystack PaymentProvider = "paystack"
	ProviderStripe   PaymentProvider = "stripe"
	ProviderOther    PaymentProvider = "other"
)

// PaymentType classifies what the payment was for
type PaymentType string

const (
	PaymentTypeStorefront   PaymentType = "storefront_purchase"
	PaymentTypePaymentLink  PaymentType = "payment_link"
	PaymentTypeSubscription PaymentType = "subscription"
	PaymentTypeOther        PaymentType = "other"
)

// PaymentMethod identifies how the customer paid
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
	PaymentMethodOther        PaymentMethod = "other"
)

// channelMethods maps provider-reported channel codes onto payment methods.
// Unknown codes fall back to other rather than failing.
var channelMethods = map[string]PaymentMethod{
	"card":          PaymentMethodCard,
	"bank":          PaymentMethodBankTransfer,
	"bank_transfer": PaymentMethodBankTransfer,
	"mobile_money":  PaymentMethodMobileMoney,
}

// MethodForChannel resolves a provider channel code to a payment method
func MethodForChannel(channel string) PaymentMethod {
	if method, ok := channelMethods[strings.ToLower(channel)]; ok {
		return method
	}
	return PaymentMethodOther
}

// Transaction is the persistent ledger entry for one real-world payment.
// Amount is always in major units; the (provider, provider_reference) pair
// is unique in storage and is what makes duplicate deliveries safe.
type Transaction struct {
	ID                string            `json:"id" db:"id"`
	ProviderReference string            `json:"provider_reference" db:"provider_reference"`
	Amount            decimal.Decimal   `json:"amount" db:"amount"`
	Currency          string            `json:"currency" db:"currency"`
	Status            TransactionStatus `json:"status" db:"status"`
	Provider          PaymentProvider   `json:"provider" db:"provider"`
	BusinessID        *string           `json:"business_id,omitempty" db:"business_id"`
	StorefrontID      *string           `json:"storefront_id,omitempty" db:"storefront_id"`
	PaymentLinkID     *string           `json:"payment_link_id,omitempty" db:"payment_link_id"`
	PaymentType       PaymentType       `json:"payment_type" db:"payment_type"`
	PaymentMethod     PaymentMethod     `json:"payment_method" db:"payment_method"`
	CustomerName      string            `json:"customer_name" db:"customer_name"`
	CustomerEmail     string            `json:"customer_email" db:"customer_email"`
	CustomerPhone     string            `json:"customer_phone" db:"customer_phone"`
	Metadata          json.RawMessage   `json:"metadata,omitempty" db:"metadata"`
	FailureReason     *string           `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	ProcessedAt       *time.Time        `json:"processed_at,omitempty" db:"processed_at"`
}

// TransactionFilter narrows transaction list queries
type TransactionFilter struct {
	BusinessID string
	Status     string
	Limit      int
	Offset     int
}
