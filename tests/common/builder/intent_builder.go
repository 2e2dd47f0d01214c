//go:build unit || e2e

package builder

import (
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IntentBuilder struct {
	ID            int64
	TransactionID uuid.UUID
	Action        intent.Action
	RefundPercent *float64
	RequestedAt   time.Time
	RequestedBy   *uuid.UUID
	Status        intent.Status
	ClaimedBy     *string
	ClaimedAt     *time.Time
}

func NewIntentBuilder() *IntentBuilder {
	requester := uuid.New()
	return &IntentBuilder{
		ID:            1,
		TransactionID: uuid.New(),
		Action:        intent.ActionRelease,
		RequestedAt:   time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
		RequestedBy:   &requester,
		Status:        intent.StatusPending,
	}
}

func (b *IntentBuilder) With(mutate func(*IntentBuilder)) *IntentBuilder {
	mutate(b)
	return b
}

func (b *IntentBuilder) BuildDomain() *intent.Intent {
	return intent.Reconstruct(intent.ReconstructParams{
		ID:            b.ID,
		TransactionID: b.TransactionID,
		Action:        b.Action,
		Params:        intent.Params{RefundPercent: b.RefundPercent},
		RequestedAt:   b.RequestedAt,
		RequestedBy:   b.RequestedBy,
		Status:        b.Status,
		ClaimedBy:     b.ClaimedBy,
		ClaimedAt:     b.ClaimedAt,
		UpdatedAt:     b.RequestedAt,
	})
}

// BuildRow renders the intent the way the database returns it.
func (b *IntentBuilder) BuildRow() sqlc.TransactionIntent {
	params, err := intent.Params{RefundPercent: b.RefundPercent}.Marshal()
	if err != nil {
		panic(err)
	}
	row := sqlc.TransactionIntent{
		ID:                  b.ID,
		TransactionUUID:     b.TransactionID,
		Action:              b.Action.String(),
		Params:              params,
		RequestedAt:         pgconv.TimeToPgtype(b.RequestedAt),
		RequestedByUserUUID: pgconv.UUIDPtrToPgtype(b.RequestedBy),
		Status:              b.Status.String(),
		ClaimedBy:           pgconv.StringPtrToPgtype(b.ClaimedBy),
		UpdatedAt:           pgconv.TimeToPgtype(b.RequestedAt),
		CreatedAt:           pgconv.TimeToPgtype(b.RequestedAt),
	}
	if b.ClaimedAt != nil {
		row.ClaimedAt = pgtype.Timestamptz{Time: *b.ClaimedAt, Valid: true}
	}
	return row
}

// Fluent builder methods
func (b *IntentBuilder) WithID(id int64) *IntentBuilder {
	b.ID = id
	return b
}

func (b *IntentBuilder) WithTransaction(id uuid.UUID) *IntentBuilder {
	b.TransactionID = id
	return b
}

func (b *IntentBuilder) AsCancel() *IntentBuilder {
	b.Action = intent.ActionCancel
	return b
}

func (b *IntentBuilder) AsPartialRefund(percent float64) *IntentBuilder {
	b.Action = intent.ActionPartialRefund
	b.RefundPercent = &percent
	return b
}

func (b *IntentBuilder) ClaimedByWorker(worker string) *IntentBuilder {
	at := b.RequestedAt.Add(time.Minute)
	b.Status = intent.StatusInProgress
	b.ClaimedBy = &worker
	b.ClaimedAt = &at
	return b
}

func (b *IntentBuilder) WithStatus(status intent.Status) *IntentBuilder {
	b.Status = status
	return b
}
