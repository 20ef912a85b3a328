package models

import "encoding/json"

// WebhookChannel identifies which signature scheme authenticated a payload
type WebhookChannel string

const (
	ChannelPaystack WebhookChannel = "paystack"
	ChannelGeneric  WebhookChannel = "generic"
)

// EventCustomer carries customer details reported by the provider
type EventCustomer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// EventMetadata carries the partial attribution context a provider echoes back
type EventMetadata struct {
	BusinessID    string `json:"business_id,omitempty"`
	StorefrontID  string `json:"storefront_id,omitempty"`
	PaymentLinkID string `json:"payment_link_id,omitempty"`
	PaymentType   string `json:"payment_type,omitempty"`
}

// PaymentEvent is the canonical in-memory form of a provider notification.
// It is produced by the event normalizer, consumed once by the recording
// pipeline and never persisted directly. AmountMinor is in the provider's
// minor units; conversion to major units happens at the ledger boundary.
type PaymentEvent struct {
	Provider      PaymentProvider
	Reference     string
	AmountMinor   int64
	Currency      string
	Channel       string
	PaymentMethod PaymentMethod
	Customer      EventCustomer
	Metadata      EventMetadata
	RawPayload    json.RawMessage
}
