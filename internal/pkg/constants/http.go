package constants

// Webhook signature headers. The webhook endpoint discriminates the channel
// by which of these is present.
const (
	HeaderPaystackSignature = "x-paystack-signature"
	HeaderWebhookSignature  = "x-webhook-signature"
)
