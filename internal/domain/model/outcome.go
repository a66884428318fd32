package model

// Outcome describes how a single check run ended. It is only used for
// logging; no state is retained between runs.
type Outcome string

const (
	// OutcomeDisabled means the stop toggle was set and nothing ran.
	OutcomeDisabled Outcome = "disabled"
	// OutcomeFetchFailed means the listing could not be fetched; a
	// best-effort failure SMS was attempted.
	OutcomeFetchFailed Outcome = "fetch_failed"
	// OutcomeNoNewTickets means every fetched ticket was already known.
	OutcomeNoNewTickets Outcome = "no_new_tickets"
	// OutcomeDelivered means the primary channel accepted the message.
	OutcomeDelivered Outcome = "delivered"
	// OutcomeDeliveredFallback means the primary channel failed but the
	// webhook fallback went through.
	OutcomeDeliveredFallback Outcome = "delivered_fallback"
	// OutcomeFailedAll means both channels failed; terminal for this run.
	OutcomeFailedAll Outcome = "failed_all"
)
