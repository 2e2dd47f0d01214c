//go:build unit || e2e

package builder

import (
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionBuilder struct {
	ID               uuid.UUID
	BuyerID          uuid.UUID
	StoreID          uuid.UUID
	Description      string
	Status           ledger.PaymentStatus
	Amount           decimal.Decimal
	Shipping         ledger.ShippingStatus
	DisputeID        *uuid.UUID
	DisputeStatus    *dispute.Status
	BuyerConfirmedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	created := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	return &TransactionBuilder{
		ID:          uuid.New(),
		BuyerID:     uuid.New(),
		StoreID:     uuid.New(),
		Description: "Test order",
		Status:      ledger.StatusCompleted,
		Amount:      decimal.RequireFromString("1.5"),
		Shipping:    ledger.ShippingDispatchPending,
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Hour),
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TransactionBuilder) BuildHeader() *queries.TransactionHeader {
	return &queries.TransactionHeader{
		ID:               b.ID,
		Type:             "evm",
		Description:      b.Description,
		StoreID:          b.StoreID,
		BuyerID:          b.BuyerID,
		DisputeID:        b.DisputeID,
		BuyerConfirmedAt: b.BuyerConfirmedAt,
		CreatedAt:        b.CreatedAt,
	}
}

// BuildStatusEvents returns a PENDING event at CreatedAt followed by the
// current status at UpdatedAt.
func (b *TransactionBuilder) BuildStatusEvents() []*ledger.StatusEvent {
	events := []*ledger.StatusEvent{
		ledger.ReconstructStatusEvent(1, ledger.StatusEventParams{
			TransactionID: b.ID,
			Status:        ledger.StatusPending,
			Amount:        decimal.Zero,
			Time:          b.CreatedAt,
		}),
	}
	if b.Status != ledger.StatusPending {
		events = append(events, ledger.ReconstructStatusEvent(2, ledger.StatusEventParams{
			TransactionID: b.ID,
			Status:        b.Status,
			Amount:        b.Amount,
			Time:          b.UpdatedAt,
		}))
	}
	return events
}

func (b *TransactionBuilder) BuildShippingEvents() []*ledger.ShippingEvent {
	if b.Shipping == ledger.ShippingDispatchPending {
		return nil
	}
	return []*ledger.ShippingEvent{
		ledger.ReconstructShippingEvent(1, ledger.ShippingEventParams{
			TransactionID: b.ID,
			Status:        b.Shipping,
			Time:          b.UpdatedAt,
		}),
	}
}

func (b *TransactionBuilder) BuildProjection() ledger.Projection {
	p, _ := ledger.Project(b.BuildStatusEvents(), b.BuildShippingEvents())
	return p
}

func (b *TransactionBuilder) BuildDispute() *dispute.Dispute {
	if b.DisputeID == nil || b.DisputeStatus == nil {
		return nil
	}
	return dispute.ReconstructDispute(*b.DisputeID, b.ID, *b.DisputeStatus, nil, b.UpdatedAt, b.UpdatedAt)
}

func (b *TransactionBuilder) BuildSnapshot() *shared.TransactionSnapshot {
	return &shared.TransactionSnapshot{
		ID:               b.ID,
		BuyerID:          b.BuyerID,
		StoreID:          b.StoreID,
		BuyerConfirmedAt: b.BuyerConfirmedAt,
		Dispute:          b.BuildDispute(),
		Projection:       b.BuildProjection(),
	}
}

func (b *TransactionBuilder) BuildView() *queries.TransactionView {
	var disputeStatus *string
	if b.DisputeStatus != nil {
		s := b.DisputeStatus.String()
		disputeStatus = &s
	}
	storeName := "Test Store"
	username := "buyer"
	return &queries.TransactionView{
		ID:               b.ID,
		Type:             "evm",
		Description:      b.Description,
		StoreID:          b.StoreID,
		StoreName:        &storeName,
		BuyerID:          b.BuyerID,
		BuyerUsername:    &username,
		DisputeID:        b.DisputeID,
		DisputeStatus:    disputeStatus,
		BuyerConfirmedAt: b.BuyerConfirmedAt,
		Status:           b.Status.String(),
		Amount:           b.Amount,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
		ShippingStatus:   b.Shipping.String(),
	}
}

func (b *TransactionBuilder) BuildViewRow() sqlc.VCurrentTransactionStatus {
	var disputeStatus *string
	if b.DisputeStatus != nil {
		s := b.DisputeStatus.String()
		disputeStatus = &s
	}
	row := sqlc.VCurrentTransactionStatus{
		UUID:                  b.ID,
		Type:                  "evm",
		Description:           b.Description,
		StoreUUID:             b.StoreID,
		Storename:             pgconv.StringToPgtype("Test Store"),
		BuyerUUID:             b.BuyerID,
		BuyerUsername:         pgconv.StringToPgtype("buyer"),
		DisputeUUID:           pgconv.UUIDPtrToPgtype(b.DisputeID),
		DisputeStatus:         pgconv.StringPtrToPgtype(disputeStatus),
		CurrentStatus:         b.Status.String(),
		CurrentAmount:         pgconv.DecimalToNumeric(b.Amount),
		CreatedAt:             pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:             pgconv.TimeToPgtype(b.UpdatedAt),
		CurrentShippingStatus: b.Shipping.String(),
	}
	if b.BuyerConfirmedAt != nil {
		row.BuyerConfirmedAt = pgconv.TimeToPgtype(*b.BuyerConfirmedAt)
	}
	return row
}

// Fluent builder methods
func (b *TransactionBuilder) WithStatus(status ledger.PaymentStatus) *TransactionBuilder {
	b.Status = status
	return b
}

// WithAmount panics on a malformed literal.
func (b *TransactionBuilder) WithAmount(amount string) *TransactionBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

func (b *TransactionBuilder) WithShipping(status ledger.ShippingStatus) *TransactionBuilder {
	b.Shipping = status
	return b
}

func (b *TransactionBuilder) WithBuyer(id uuid.UUID) *TransactionBuilder {
	b.BuyerID = id
	return b
}

func (b *TransactionBuilder) WithStore(id uuid.UUID) *TransactionBuilder {
	b.StoreID = id
	return b
}

func (b *TransactionBuilder) WithOpenDispute() *TransactionBuilder {
	return b.withDispute(dispute.StatusOpen)
}

func (b *TransactionBuilder) WithResolvedDispute() *TransactionBuilder {
	return b.withDispute(dispute.StatusResolved)
}

func (b *TransactionBuilder) withDispute(status dispute.Status) *TransactionBuilder {
	id := uuid.New()
	b.DisputeID = &id
	b.DisputeStatus = &status
	return b
}

func (b *TransactionBuilder) AsPending() *TransactionBuilder {
	b.Status = ledger.StatusPending
	b.Amount = decimal.Zero
	b.UpdatedAt = b.CreatedAt
	return b
}

func (b *TransactionBuilder) AsFrozen() *TransactionBuilder {
	b.Status = ledger.StatusFrozen
	return b.WithOpenDispute()
}
