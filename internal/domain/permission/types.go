package permission

import "errors"

var (
	ErrInvalidAction = errors.New("invalid action")
)

// Relationship is how the caller relates to one transaction.
type Relationship string

const (
	RelationshipBuyer  Relationship = "buyer"
	RelationshipVendor Relationship = "vendor"
	RelationshipStaff  Relationship = "staff"
	RelationshipNone   Relationship = "none"
)

func (r Relationship) String() string {
	return string(r)
}

// Action is a caller-facing verb gated by the matrix.
type Action string

const (
	ActionRelease         Action = "release"
	ActionCancel          Action = "cancel"
	ActionPartialRefund   Action = "partial_refund"
	ActionMarkShipped     Action = "mark_shipped"
	ActionConfirmReceived Action = "confirm_received"
	ActionOpenDispute     Action = "open_dispute"
)

// allActions fixes the order in which a Set is reported.
var allActions = []Action{
	ActionRelease,
	ActionCancel,
	ActionPartialRefund,
	ActionMarkShipped,
	ActionConfirmReceived,
	ActionOpenDispute,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	for _, known := range allActions {
		if a == known {
			return true
		}
	}
	return false
}

func NewAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", ErrInvalidAction
	}
	return a, nil
}

// Set is an ordered, duplicate-free list of allowed actions.
type Set []Action

func (s Set) Contains(a Action) bool {
	for _, x := range s {
		if x == a {
			return true
		}
	}
	return false
}

func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for _, a := range s {
		out = append(out, a.String())
	}
	return out
}
