package intent

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAction        = errors.New("invalid intent action")
	ErrInvalidStatus        = errors.New("invalid intent status")
	ErrNotTerminal          = errors.New("intent status must be completed or failed")
	ErrInvalidRefundPercent = errors.New("refund_percent must be greater than 0 and at most 100")
	ErrInvalidParams        = errors.New("invalid intent params")
	ErrMissingTransaction   = errors.New("transaction id is required")
	ErrMissingWorker        = errors.New("worker id is required")
)

// Intent is a request for the settlement worker. Only its status and claim
// columns change after it is enqueued.
type Intent struct {
	id            int64
	transactionID uuid.UUID
	action        Action
	params        Params
	requestedAt   time.Time
	requestedBy   *uuid.UUID
	status        Status
	claimedBy     *string
	claimedAt     *time.Time
	updatedAt     time.Time
}

func NewRelease(transactionID uuid.UUID, requestedBy *uuid.UUID, now time.Time) (*Intent, error) {
	return newIntent(transactionID, ActionRelease, Params{}, requestedBy, now)
}

func NewCancel(transactionID uuid.UUID, requestedBy *uuid.UUID, now time.Time) (*Intent, error) {
	return newIntent(transactionID, ActionCancel, Params{}, requestedBy, now)
}

func NewPartialRefund(transactionID uuid.UUID, percent RefundPercent, requestedBy *uuid.UUID, now time.Time) (*Intent, error) {
	if percent.Value() == 0 {
		return nil, ErrInvalidRefundPercent
	}
	v := percent.Value()
	return newIntent(transactionID, ActionPartialRefund, Params{RefundPercent: &v}, requestedBy, now)
}

func newIntent(transactionID uuid.UUID, action Action, params Params, requestedBy *uuid.UUID, now time.Time) (*Intent, error) {
	if transactionID == uuid.Nil {
		return nil, ErrMissingTransaction
	}
	return &Intent{
		transactionID: transactionID,
		action:        action,
		params:        params,
		requestedAt:   now,
		requestedBy:   requestedBy,
		status:        StatusPending,
		updatedAt:     now,
	}, nil
}

type ReconstructParams struct {
	ID            int64
	TransactionID uuid.UUID
	Action        Action
	Params        Params
	RequestedAt   time.Time
	RequestedBy   *uuid.UUID
	Status        Status
	ClaimedBy     *string
	ClaimedAt     *time.Time
	UpdatedAt     time.Time
}

func Reconstruct(p ReconstructParams) *Intent {
	return &Intent{
		id:            p.ID,
		transactionID: p.TransactionID,
		action:        p.Action,
		params:        p.Params,
		requestedAt:   p.RequestedAt,
		requestedBy:   p.RequestedBy,
		status:        p.Status,
		claimedBy:     p.ClaimedBy,
		claimedAt:     p.ClaimedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (i *Intent) ID() int64                { return i.id }
func (i *Intent) TransactionID() uuid.UUID { return i.transactionID }
func (i *Intent) Action() Action           { return i.action }
func (i *Intent) Params() Params           { return i.params }
func (i *Intent) RequestedAt() time.Time   { return i.requestedAt }
func (i *Intent) RequestedBy() *uuid.UUID  { return i.requestedBy }
func (i *Intent) Status() Status           { return i.status }
func (i *Intent) ClaimedBy() *string       { return i.claimedBy }
func (i *Intent) ClaimedAt() *time.Time    { return i.claimedAt }
func (i *Intent) UpdatedAt() time.Time     { return i.updatedAt }
