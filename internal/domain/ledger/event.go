package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxCommentLength = 1000

var (
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrInvalidShippingStatus = errors.New("invalid shipping status")
	ErrMissingTransaction    = errors.New("transaction id is required")
	ErrNegativeAmount        = errors.New("amount cannot be negative")
	ErrCommentTooLong        = errors.New("comment exceeds maximum length")
	ErrMissingTime           = errors.New("event time is required")
)

// StatusEvent is one immutable row of the payment status ledger.
// id is zero until the event has been stored.
type StatusEvent struct {
	id               int64
	transactionID    uuid.UUID
	at               time.Time
	amount           decimal.Decimal
	status           PaymentStatus
	comment          string
	userID           *uuid.UUID
	paymentReceiptID *uuid.UUID
}

type StatusEventParams struct {
	TransactionID    uuid.UUID
	Status           PaymentStatus
	Amount           decimal.Decimal
	Comment          string
	UserID           *uuid.UUID
	PaymentReceiptID *uuid.UUID
	Time             time.Time
}

// NewStatusEvent validates shape only. Whether the transition makes sense
// is decided by the permission matrix before anything is appended.
func NewStatusEvent(p StatusEventParams) (*StatusEvent, error) {
	if p.TransactionID == uuid.Nil {
		return nil, ErrMissingTransaction
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}
	if p.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if p.Time.IsZero() {
		return nil, ErrMissingTime
	}
	comment, err := normalizeComment(p.Comment)
	if err != nil {
		return nil, err
	}

	return &StatusEvent{
		transactionID:    p.TransactionID,
		at:               p.Time,
		amount:           p.Amount,
		status:           p.Status,
		comment:          comment,
		userID:           p.UserID,
		paymentReceiptID: p.PaymentReceiptID,
	}, nil
}

func ReconstructStatusEvent(id int64, p StatusEventParams) *StatusEvent {
	return &StatusEvent{
		id:               id,
		transactionID:    p.TransactionID,
		at:               p.Time,
		amount:           p.Amount,
		status:           p.Status,
		comment:          p.Comment,
		userID:           p.UserID,
		paymentReceiptID: p.PaymentReceiptID,
	}
}

func (e *StatusEvent) ID() int64                    { return e.id }
func (e *StatusEvent) TransactionID() uuid.UUID     { return e.transactionID }
func (e *StatusEvent) Time() time.Time              { return e.at }
func (e *StatusEvent) Amount() decimal.Decimal      { return e.amount }
func (e *StatusEvent) Status() PaymentStatus        { return e.status }
func (e *StatusEvent) Comment() string              { return e.comment }
func (e *StatusEvent) UserID() *uuid.UUID           { return e.userID }
func (e *StatusEvent) PaymentReceiptID() *uuid.UUID { return e.paymentReceiptID }

// ShippingEvent is one immutable row of the shipping status ledger.
type ShippingEvent struct {
	id            int64
	transactionID uuid.UUID
	at            time.Time
	status        ShippingStatus
	comment       string
	userID        *uuid.UUID
}

type ShippingEventParams struct {
	TransactionID uuid.UUID
	Status        ShippingStatus
	Comment       string
	UserID        *uuid.UUID
	Time          time.Time
}

func NewShippingEvent(p ShippingEventParams) (*ShippingEvent, error) {
	if p.TransactionID == uuid.Nil {
		return nil, ErrMissingTransaction
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidShippingStatus
	}
	if p.Time.IsZero() {
		return nil, ErrMissingTime
	}
	comment, err := normalizeComment(p.Comment)
	if err != nil {
		return nil, err
	}

	return &ShippingEvent{
		transactionID: p.TransactionID,
		at:            p.Time,
		status:        p.Status,
		comment:       comment,
		userID:        p.UserID,
	}, nil
}

func ReconstructShippingEvent(id int64, p ShippingEventParams) *ShippingEvent {
	return &ShippingEvent{
		id:            id,
		transactionID: p.TransactionID,
		at:            p.Time,
		status:        p.Status,
		comment:       p.Comment,
		userID:        p.UserID,
	}
}

func (e *ShippingEvent) ID() int64                { return e.id }
func (e *ShippingEvent) TransactionID() uuid.UUID { return e.transactionID }
func (e *ShippingEvent) Time() time.Time          { return e.at }
func (e *ShippingEvent) Status() ShippingStatus   { return e.status }
func (e *ShippingEvent) Comment() string          { return e.comment }
func (e *ShippingEvent) UserID() *uuid.UUID       { return e.userID }

func normalizeComment(s string) (string, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return "", ErrCommentTooLong
	}
	return t, nil
}
