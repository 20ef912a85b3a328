package payments

import "errors"

// Sentinel errors for the payments domain. Handlers map these onto HTTP
// statuses; everything else is treated as an internal failure.
var (
	// ErrMalformedEvent indicates an authenticated payload whose shape or
	// required fields could not be understood
	ErrMalformedEvent = errors.New("malformed payment event")

	// ErrInvalidAmount indicates a non-positive intent amount
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidState indicates an intent operation not permitted in the
	// intent's current state
	ErrInvalidState = errors.New("operation not permitted in current intent state")

	// ErrIntentNotFound indicates the payment intent does not exist
	ErrIntentNotFound = errors.New("payment intent not found")

	// ErrTransactionNotFound indicates the transaction does not exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrVerificationFailed indicates the provider reported the referenced
	// payment as not successful
	ErrVerificationFailed = errors.New("provider verification failed")

	// ErrDownstream indicates storage is unavailable. Safe to surface as a
	// retryable 5xx because recording is idempotent.
	ErrDownstream = errors.New("storage unavailable")

	// ErrGatewayUnavailable indicates the provider API could not be reached.
	// Distinct from a declined charge; retryable.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
