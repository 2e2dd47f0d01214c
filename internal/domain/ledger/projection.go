package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Projection is the current state of one transaction derived from its
// two sub-ledgers. It is never stored.
type Projection struct {
	TransactionID     uuid.UUID
	Status            PaymentStatus
	Amount            decimal.Decimal
	Comment           string
	PaymentReceiptID  *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ShippingStatus    ShippingStatus
	ShippingUpdatedAt *time.Time
}

// Project reduces the events of a single transaction. The latest event wins
// by time, then by insertion sequence, regardless of slice order. ok is false
// when there are no status events at all.
func Project(statuses []*StatusEvent, shipping []*ShippingEvent) (p Projection, ok bool) {
	if len(statuses) == 0 {
		return Projection{}, false
	}

	latest := statuses[0]
	earliest := statuses[0].Time()
	for _, e := range statuses[1:] {
		if later(e.Time(), e.ID(), latest.Time(), latest.ID()) {
			latest = e
		}
		if e.Time().Before(earliest) {
			earliest = e.Time()
		}
	}

	p = Projection{
		TransactionID:    latest.TransactionID(),
		Status:           latest.Status(),
		Amount:           latest.Amount(),
		Comment:          latest.Comment(),
		PaymentReceiptID: latest.PaymentReceiptID(),
		CreatedAt:        earliest,
		UpdatedAt:        latest.Time(),
		ShippingStatus:   DefaultShippingStatus,
	}

	if s := LatestShipping(shipping); s != nil {
		at := s.Time()
		p.ShippingStatus = s.Status()
		p.ShippingUpdatedAt = &at
	}

	return p, true
}

// LatestShipping returns nil when the shipping ledger is empty.
func LatestShipping(events []*ShippingEvent) *ShippingEvent {
	var latest *ShippingEvent
	for _, e := range events {
		if latest == nil || later(e.Time(), e.ID(), latest.Time(), latest.ID()) {
			latest = e
		}
	}
	return latest
}

func later(at time.Time, id int64, thanAt time.Time, thanID int64) bool {
	if at.Equal(thanAt) {
		return id > thanID
	}
	return at.After(thanAt)
}
