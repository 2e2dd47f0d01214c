package permission

import (
	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
)

// Input is everything the matrix needs. A caller may hold several
// relationships at once (for example a staff member who is also the buyer).
type Input struct {
	PaymentStatus  ledger.PaymentStatus
	ShippingStatus ledger.ShippingStatus
	DisputeState   dispute.State
	Relationships  []Relationship
}

type rule struct {
	payment  ledger.PaymentStatus
	disputes []dispute.State
	action   Action
	who      []Relationship
	shipping ledger.ShippingStatus
}

var (
	noneOrResolved = []dispute.State{dispute.StateNone, dispute.StateResolved}
	onlyNone       = []dispute.State{dispute.StateNone}
	onlyOpen       = []dispute.State{dispute.StateOpen}
	onlyResolved   = []dispute.State{dispute.StateResolved}

	buyerOrStaff  = []Relationship{RelationshipBuyer, RelationshipStaff}
	vendorOrStaff = []Relationship{RelationshipVendor, RelationshipStaff}
	buyerOrVendor = []Relationship{RelationshipBuyer, RelationshipVendor}
	buyer         = []Relationship{RelationshipBuyer}
	staff         = []Relationship{RelationshipStaff}
)

// Anything not listed is denied.
var rules = []rule{
	{payment: ledger.StatusPending, disputes: noneOrResolved, action: ActionCancel, who: buyerOrStaff},

	{payment: ledger.StatusCompleted, disputes: noneOrResolved, action: ActionMarkShipped, who: vendorOrStaff, shipping: ledger.ShippingDispatchPending},
	{payment: ledger.StatusCompleted, disputes: noneOrResolved, action: ActionRelease, who: vendorOrStaff},
	{payment: ledger.StatusCompleted, disputes: noneOrResolved, action: ActionConfirmReceived, who: buyer},
	{payment: ledger.StatusCompleted, disputes: onlyNone, action: ActionOpenDispute, who: buyerOrVendor},

	{payment: ledger.StatusFrozen, disputes: onlyNone, action: ActionOpenDispute, who: buyerOrVendor},
	{payment: ledger.StatusFrozen, disputes: onlyOpen, action: ActionPartialRefund, who: staff},
	// A resolved dispute hands release and cancel back to their usual parties.
	{payment: ledger.StatusFrozen, disputes: onlyResolved, action: ActionRelease, who: vendorOrStaff},
	{payment: ledger.StatusFrozen, disputes: onlyResolved, action: ActionCancel, who: buyerOrStaff},
	{payment: ledger.StatusFrozen, disputes: onlyResolved, action: ActionPartialRefund, who: staff},
}

// Evaluate returns the actions the caller may request right now. It is a
// pure function of its input.
func Evaluate(in Input) Set {
	allowed := make(map[Action]bool)
	for _, r := range rules {
		if r.payment != in.PaymentStatus || !containsState(r.disputes, in.DisputeState) {
			continue
		}
		if r.shipping != "" && r.shipping != shippingOrDefault(in.ShippingStatus) {
			continue
		}
		if !intersects(r.who, in.Relationships) {
			continue
		}
		allowed[r.action] = true
	}

	set := make(Set, 0, len(allowed))
	for _, a := range allActions {
		if allowed[a] {
			set = append(set, a)
		}
	}
	return set
}

func Allows(in Input, action Action) bool {
	return Evaluate(in).Contains(action)
}

func shippingOrDefault(s ledger.ShippingStatus) ledger.ShippingStatus {
	if s == "" {
		return ledger.DefaultShippingStatus
	}
	return s
}

func containsState(states []dispute.State, s dispute.State) bool {
	for _, x := range states {
		if x == s {
			return true
		}
	}
	return false
}

func intersects(a, b []Relationship) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
