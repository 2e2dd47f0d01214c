package shared

import (
	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/permission"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"

	"github.com/google/uuid"
)

// Access is the permission matrix evaluated for one caller against one
// freshly read transaction.
type Access struct {
	Relationships []permission.Relationship
	Allowed       permission.Set
}

func EvaluateAccess(actor Actor, snap *TransactionSnapshot, memberStoreIDs []uuid.UUID) Access {
	rels := permission.Relate(permission.Subject{
		UserID:         actor.UserID,
		IsStaff:        actor.Role.IsStaff(),
		MemberStoreIDs: memberStoreIDs,
		BuyerID:        snap.BuyerID,
		StoreID:        snap.StoreID,
	})

	return Access{
		Relationships: rels,
		Allowed: permission.Evaluate(permission.Input{
			PaymentStatus:  snap.Projection.Status,
			ShippingStatus: snap.Projection.ShippingStatus,
			DisputeState:   dispute.StateOf(snap.Dispute),
			Relationships:  rels,
		}),
	}
}

func (a Access) CanView() bool {
	return permission.HasAny(a.Relationships)
}

// Require returns ErrTransactionAccess for strangers and
// ErrActionNotAllowed when the matrix denies the action.
func (a Access) Require(action permission.Action) error {
	if !a.CanView() {
		return errs.ErrTransactionAccess
	}
	if !a.Allowed.Contains(action) {
		return errs.Mark(errs.New("action "+action.String()+" not allowed"), errs.ErrActionNotAllowed)
	}
	return nil
}

func (a Access) Has(rel permission.Relationship) bool {
	for _, r := range a.Relationships {
		if r == rel {
			return true
		}
	}
	return false
}
