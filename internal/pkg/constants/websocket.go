package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Dashboard events
	EventTransactionRecorded = "transaction_recorded"
	EventIntentCompleted     = "intent_completed"
)
