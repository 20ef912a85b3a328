package constants

// NATS Subjects
const (
	// Published by the ledger writer pipeline after a transaction is recorded
	SubjectTransactionRecorded = "transactions.recorded"

	// Published when a payment intent reaches a terminal state
	SubjectIntentCompleted = "intents.completed"
)
