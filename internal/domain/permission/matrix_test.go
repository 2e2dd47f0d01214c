//go:build unit

package permission_test

import (
	"testing"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/domain/permission"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func in(payment ledger.PaymentStatus, ship ledger.ShippingStatus, state dispute.State, rels ...permission.Relationship) permission.Input {
	return permission.Input{
		PaymentStatus:  payment,
		ShippingStatus: ship,
		DisputeState:   state,
		Relationships:  rels,
	}
}

func TestEvaluate(t *testing.T) {
	var (
		buyer  = permission.RelationshipBuyer
		vendor = permission.RelationshipVendor
		staff  = permission.RelationshipStaff
		none   = permission.RelationshipNone
	)

	cases := []struct {
		name  string
		input permission.Input
		want  permission.Set
	}{
		{
			name:  "pending buyer may cancel",
			input: in(ledger.StatusPending, ledger.ShippingDispatchPending, dispute.StateNone, buyer),
			want:  permission.Set{permission.ActionCancel},
		},
		{
			name:  "pending vendor has nothing",
			input: in(ledger.StatusPending, ledger.ShippingDispatchPending, dispute.StateNone, vendor),
			want:  permission.Set{},
		},
		{
			name:  "pending staff may cancel",
			input: in(ledger.StatusPending, ledger.ShippingDispatchPending, dispute.StateNone, staff),
			want:  permission.Set{permission.ActionCancel},
		},
		{
			name:  "completed vendor before dispatch",
			input: in(ledger.StatusCompleted, ledger.ShippingDispatchPending, dispute.StateNone, vendor),
			want:  permission.Set{permission.ActionRelease, permission.ActionMarkShipped, permission.ActionOpenDispute},
		},
		{
			name:  "completed vendor after dispatch",
			input: in(ledger.StatusCompleted, ledger.ShippingDispatched, dispute.StateNone, vendor),
			want:  permission.Set{permission.ActionRelease, permission.ActionOpenDispute},
		},
		{
			name:  "completed buyer",
			input: in(ledger.StatusCompleted, ledger.ShippingDispatched, dispute.StateNone, buyer),
			want:  permission.Set{permission.ActionConfirmReceived, permission.ActionOpenDispute},
		},
		{
			name:  "completed staff cannot open dispute",
			input: in(ledger.StatusCompleted, ledger.ShippingDispatchPending, dispute.StateNone, staff),
			want:  permission.Set{permission.ActionRelease, permission.ActionMarkShipped},
		},
		{
			name:  "empty shipping counts as dispatch pending",
			input: in(ledger.StatusCompleted, "", dispute.StateNone, vendor),
			want:  permission.Set{permission.ActionRelease, permission.ActionMarkShipped, permission.ActionOpenDispute},
		},
		{
			name:  "completed with resolved dispute cannot open another",
			input: in(ledger.StatusCompleted, ledger.ShippingDispatched, dispute.StateResolved, buyer),
			want:  permission.Set{permission.ActionConfirmReceived},
		},
		{
			name:  "frozen without dispute buyer may open one",
			input: in(ledger.StatusFrozen, ledger.ShippingDispatched, dispute.StateNone, buyer),
			want:  permission.Set{permission.ActionOpenDispute},
		},
		{
			name:  "frozen with open dispute vendor has nothing",
			input: in(ledger.StatusFrozen, ledger.ShippingDispatched, dispute.StateOpen, vendor),
			want:  permission.Set{},
		},
		{
			name:  "frozen with open dispute staff may partially refund",
			input: in(ledger.StatusFrozen, ledger.ShippingDispatched, dispute.StateOpen, staff),
			want:  permission.Set{permission.ActionPartialRefund},
		},
		{
			name:  "frozen with resolved dispute staff decides",
			input: in(ledger.StatusFrozen, ledger.ShippingDispatched, dispute.StateResolved, staff),
			want:  permission.Set{permission.ActionRelease, permission.ActionCancel, permission.ActionPartialRefund},
		},
		{
			name:  "frozen with resolved dispute buyer may cancel again",
			input: in(ledger.StatusFrozen, ledger.ShippingDispatched, dispute.StateResolved, buyer),
			want:  permission.Set{permission.ActionCancel},
		},
		{
			name:  "frozen with resolved dispute vendor may release again",
			input: in(ledger.StatusFrozen, ledger.ShippingDispatched, dispute.StateResolved, vendor),
			want:  permission.Set{permission.ActionRelease},
		},
		{
			name:  "frozen with resolved dispute stranger has nothing",
			input: in(ledger.StatusFrozen, ledger.ShippingDispatched, dispute.StateResolved, none),
			want:  permission.Set{},
		},
		{
			name:  "frozen with open dispute buyer may not cancel",
			input: in(ledger.StatusFrozen, ledger.ShippingDispatched, dispute.StateOpen, buyer),
			want:  permission.Set{},
		},
		{
			name:  "released offers nothing in core",
			input: in(ledger.StatusReleased, ledger.ShippingDelivered, dispute.StateNone, buyer, vendor, staff),
			want:  permission.Set{},
		},
		{
			name:  "cancelled offers nothing",
			input: in(ledger.StatusCancelled, ledger.ShippingDispatchPending, dispute.StateNone, staff),
			want:  permission.Set{},
		},
		{
			name:  "stranger has nothing",
			input: in(ledger.StatusCompleted, ledger.ShippingDispatchPending, dispute.StateNone, none),
			want:  permission.Set{},
		},
		{
			name:  "staff who is also buyer gets the union",
			input: in(ledger.StatusCompleted, ledger.ShippingDispatchPending, dispute.StateNone, buyer, staff),
			want: permission.Set{
				permission.ActionRelease,
				permission.ActionMarkShipped,
				permission.ActionConfirmReceived,
				permission.ActionOpenDispute,
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := permission.Evaluate(c.input)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestAllows(t *testing.T) {
	input := in(ledger.StatusFrozen, ledger.ShippingDispatched, dispute.StateOpen, permission.RelationshipBuyer)
	assert.False(t, permission.Allows(input, permission.ActionOpenDispute))
	assert.False(t, permission.Allows(input, permission.ActionRelease))
}

func TestRelate(t *testing.T) {
	buyerID := uuid.New()
	storeID := uuid.New()

	cases := []struct {
		name    string
		subject permission.Subject
		want    []permission.Relationship
	}{
		{
			name:    "buyer",
			subject: permission.Subject{UserID: buyerID, BuyerID: buyerID, StoreID: storeID},
			want:    []permission.Relationship{permission.RelationshipBuyer},
		},
		{
			name:    "vendor via store membership",
			subject: permission.Subject{UserID: uuid.New(), BuyerID: buyerID, StoreID: storeID, MemberStoreIDs: []uuid.UUID{uuid.New(), storeID}},
			want:    []permission.Relationship{permission.RelationshipVendor},
		},
		{
			name:    "staff",
			subject: permission.Subject{UserID: uuid.New(), BuyerID: buyerID, StoreID: storeID, IsStaff: true},
			want:    []permission.Relationship{permission.RelationshipStaff},
		},
		{
			name:    "staff buyer",
			subject: permission.Subject{UserID: buyerID, BuyerID: buyerID, StoreID: storeID, IsStaff: true},
			want:    []permission.Relationship{permission.RelationshipBuyer, permission.RelationshipStaff},
		},
		{
			name:    "stranger",
			subject: permission.Subject{UserID: uuid.New(), BuyerID: buyerID, StoreID: storeID},
			want:    []permission.Relationship{permission.RelationshipNone},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := permission.Relate(c.subject)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.want[0] != permission.RelationshipNone, permission.HasAny(got))
		})
	}
}
