package intent

import "github.com/sanctumos/clawedroad/internal/domain/ledger"

// Action is the settlement operation the worker is asked to perform.
type Action string

const (
	ActionRelease       Action = "RELEASE"
	ActionCancel        Action = "CANCEL"
	ActionPartialRefund Action = "PARTIAL_REFUND"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	switch a {
	case ActionRelease, ActionCancel, ActionPartialRefund:
		return true
	default:
		return false
	}
}

// SettledStatus is the ledger status appended when the worker reports
// success. A partial refund ends escrow the same way a release does.
func (a Action) SettledStatus() ledger.PaymentStatus {
	switch a {
	case ActionCancel:
		return ledger.StatusCancelled
	default:
		return ledger.StatusReleased
	}
}

func NewAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", ErrInvalidAction
	}
	return a, nil
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo allows pending -> in_progress and any open status to a
// terminal one. Terminal statuses never move again.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress || next.IsTerminal()
	case StatusInProgress:
		return next.IsTerminal()
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// NewTerminalStatus accepts only the statuses a worker may report.
func NewTerminalStatus(s string) (Status, error) {
	st, err := NewStatus(s)
	if err != nil {
		return "", err
	}
	if !st.IsTerminal() {
		return "", ErrNotTerminal
	}
	return st, nil
}
