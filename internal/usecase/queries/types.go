package queries

import (
	"context"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionHeader is the non-ledger part of a transaction row.
type TransactionHeader struct {
	ID               uuid.UUID
	Type             string
	Description      string
	StoreID          uuid.UUID
	BuyerID          uuid.UUID
	DisputeID        *uuid.UUID
	BuyerConfirmedAt *time.Time
	CreatedAt        time.Time
}

type TransactionView struct {
	ID                uuid.UUID       `json:"id"`
	Type              string          `json:"type"`
	Description       string          `json:"description"`
	StoreID           uuid.UUID       `json:"store_id"`
	StoreName         *string         `json:"store_name,omitempty"`
	BuyerID           uuid.UUID       `json:"buyer_id"`
	BuyerUsername     *string         `json:"buyer_username,omitempty"`
	DisputeID         *uuid.UUID      `json:"dispute_id,omitempty"`
	DisputeStatus     *string         `json:"dispute_status,omitempty"`
	BuyerConfirmedAt  *time.Time      `json:"buyer_confirmed_at,omitempty"`
	Status            string          `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	Comment           string          `json:"comment"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	ShippingStatus    string          `json:"shipping_status"`
	ShippingUpdatedAt *time.Time      `json:"shipping_updated_at,omitempty"`
	AllowedActions    []string        `json:"allowed_actions,omitempty"`
}

type PaymentDetailsView struct {
	TransactionView
	EscrowAddress  *string         `json:"escrow_address,omitempty"`
	RequiredAmount decimal.Decimal `json:"required_amount"`
	ChainID        int64           `json:"chain_id"`
	Currency       string          `json:"currency"`
}

type StatusEventView struct {
	ID               int64           `json:"id"`
	Time             time.Time       `json:"time"`
	Status           string          `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	Comment          string          `json:"comment"`
	UserID           *uuid.UUID      `json:"user_id,omitempty"`
	PaymentReceiptID *uuid.UUID      `json:"payment_receipt_id,omitempty"`
}

type ShippingEventView struct {
	ID      int64      `json:"id"`
	Time    time.Time  `json:"time"`
	Status  string     `json:"status"`
	Comment string     `json:"comment"`
	UserID  *uuid.UUID `json:"user_id,omitempty"`
}

type TransactionHistory struct {
	TransactionID uuid.UUID            `json:"transaction_id"`
	Statuses      []*StatusEventView   `json:"statuses"`
	Shipping      []*ShippingEventView `json:"shipping"`
}

type IntentView struct {
	ID            int64      `json:"id"`
	TransactionID uuid.UUID  `json:"transaction_id"`
	Action        string     `json:"action"`
	RefundPercent *float64   `json:"refund_percent,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	RequestedBy   *uuid.UUID `json:"requested_by,omitempty"`
	Status        string     `json:"status"`
	ClaimedBy     *string    `json:"claimed_by,omitempty"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ClaimView struct {
	ID        int64      `json:"id"`
	Claim     string     `json:"claim"`
	Status    string     `json:"status"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Username  *string    `json:"username,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type DisputeView struct {
	ID            uuid.UUID    `json:"id"`
	TransactionID uuid.UUID    `json:"transaction_id"`
	Status        string       `json:"status"`
	ResolverID    *uuid.UUID   `json:"resolver_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Claims        []*ClaimView `json:"claims"`
}

type OpenDisputeItem struct {
	ID            uuid.UUID `json:"id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	BuyerID       uuid.UUID `json:"buyer_id"`
	StoreID       uuid.UUID `json:"store_id"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TransactionReadStore interface {
	FindHeader(ctx context.Context, id uuid.UUID) (*TransactionHeader, error)
	ListStatusEvents(ctx context.Context, id uuid.UUID) ([]*ledger.StatusEvent, error)
	ListShippingEvents(ctx context.Context, id uuid.UUID) ([]*ledger.ShippingEvent, error)
	MemberStoreIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FindPaymentDetails(ctx context.Context, id uuid.UUID) (*PaymentDetailsView, error)
	ListCurrentForBuyer(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*TransactionView, error)
	ListCurrentForStores(ctx context.Context, storeIDs []uuid.UUID, limit int32) ([]*TransactionView, error)
	ListCurrentForUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*TransactionView, error)
	ListCurrentAll(ctx context.Context, limit int32) ([]*TransactionView, error)
	ListStalePending(ctx context.Context, createdBefore time.Time, limit int32) ([]*StalePendingItem, error)
}

type StalePendingItem struct {
	ID     uuid.UUID
	Amount decimal.Decimal
}

type DisputeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*dispute.Dispute, error)
	ListClaims(ctx context.Context, disputeID uuid.UUID) ([]*ClaimView, error)
	ListOpen(ctx context.Context, limit int32) ([]*OpenDisputeItem, error)
}

type IntentReadStore interface {
	FindByID(ctx context.Context, id int64) (*intent.Intent, error)
	ListPending(ctx context.Context, action *intent.Action, limit int32) ([]*intent.Intent, error)
}
