package shared

import (
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// TransactionSnapshot is the write-side view of one transaction, reduced
// from the ledgers inside the current database transaction.
type TransactionSnapshot struct {
	ID               uuid.UUID
	BuyerID          uuid.UUID
	StoreID          uuid.UUID
	BuyerConfirmedAt *time.Time
	Dispute          *dispute.Dispute
	Projection       ledger.Projection
}

type StaleTransaction struct {
	ID     uuid.UUID
	Amount decimal.Decimal
}

type AuditEntry struct {
	ActorID    *uuid.UUID
	ActionType string
	TargetType string
	TargetID   string
	Metadata   map[string]any
	CreatedAt  time.Time
}

// Audit action types.
const (
	AuditDisputeResolve       = "dispute_resolve"
	AuditDisputePartialRefund = "dispute_partial_refund"
	AuditIntentCompleted      = "intent_completed"
	AuditIntentFailed         = "intent_failed"
	AuditPendingExpired       = "pending_expired"
)
