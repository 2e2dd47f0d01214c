package commands

// Recorder receives domain counters; *metrics.Metrics implements it.
type Recorder interface {
	LedgerAppended(ledger, status string)
	IntentEnqueued(action string)
	IntentTransitioned(action, status string)
	DisputeEvent(event string)
	Swept(n int)
}

// Dispute event labels for Recorder.DisputeEvent.
const (
	disputeEventOpened   = "opened"
	disputeEventClaim    = "claim"
	disputeEventResolved = "resolved"
	disputeEventRefund   = "partial_refund"
)
