package dispute

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Limits are in characters, not bytes.
const (
	MaxClaimLength  = 10000
	MaxReasonLength = 200
)

var (
	ErrInvalidStatus      = errors.New("invalid dispute status")
	ErrAlreadyResolved    = errors.New("dispute is already resolved")
	ErrEmptyClaim         = errors.New("claim message is required")
	ErrClaimTooLong       = errors.New("claim exceeds maximum length")
	ErrReasonTooLong      = errors.New("claim reason exceeds maximum length")
	ErrMissingTransaction = errors.New("transaction id is required")
)

type Dispute struct {
	id            uuid.UUID
	transactionID uuid.UUID
	status        Status
	resolverID    *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDispute(transactionID uuid.UUID, now time.Time) (*Dispute, error) {
	if transactionID == uuid.Nil {
		return nil, ErrMissingTransaction
	}
	return &Dispute{
		id:            uuid.New(),
		transactionID: transactionID,
		status:        StatusOpen,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructDispute(
	id, transactionID uuid.UUID,
	status Status,
	resolverID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Dispute {
	return &Dispute{
		id:            id,
		transactionID: transactionID,
		status:        status,
		resolverID:    resolverID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (d *Dispute) ID() uuid.UUID            { return d.id }
func (d *Dispute) TransactionID() uuid.UUID { return d.transactionID }
func (d *Dispute) Status() Status           { return d.status }
func (d *Dispute) ResolverID() *uuid.UUID   { return d.resolverID }
func (d *Dispute) CreatedAt() time.Time     { return d.createdAt }
func (d *Dispute) UpdatedAt() time.Time     { return d.updatedAt }

func (d *Dispute) IsResolved() bool {
	return d.status == StatusResolved
}

// Resolve is one way: a resolved dispute never reopens.
func (d *Dispute) Resolve(resolver uuid.UUID, now time.Time) error {
	if d.IsResolved() {
		return ErrAlreadyResolved
	}
	d.status = StatusResolved
	d.resolverID = &resolver
	d.updatedAt = now
	return nil
}

func (d *Dispute) EnsureAcceptsClaims() error {
	if d.IsResolved() {
		return ErrAlreadyResolved
	}
	return nil
}

type ClaimBody struct {
	text string
}

// NewClaimBody requires a message; an optional reason is prepended with a
// blank line between them.
func NewClaimBody(reason, message string) (ClaimBody, error) {
	reason = strings.TrimSpace(reason)
	message = strings.TrimSpace(message)

	if message == "" {
		return ClaimBody{}, ErrEmptyClaim
	}
	if utf8.RuneCountInString(message) > MaxClaimLength {
		return ClaimBody{}, ErrClaimTooLong
	}
	if utf8.RuneCountInString(reason) > MaxReasonLength {
		return ClaimBody{}, ErrReasonTooLong
	}

	if reason == "" {
		return ClaimBody{text: message}, nil
	}
	return ClaimBody{text: reason + "\n\n" + message}, nil
}

func (c ClaimBody) String() string { return c.text }

type Claim struct {
	id        int64
	disputeID uuid.UUID
	body      ClaimBody
	status    string
	userID    *uuid.UUID
	createdAt time.Time
}

func NewClaim(disputeID uuid.UUID, body ClaimBody, userID *uuid.UUID, now time.Time) *Claim {
	return &Claim{
		disputeID: disputeID,
		body:      body,
		status:    ClaimStatusOpen,
		userID:    userID,
		createdAt: now,
	}
}

func ReconstructClaim(id int64, disputeID uuid.UUID, body string, status string, userID *uuid.UUID, createdAt time.Time) *Claim {
	return &Claim{
		id:        id,
		disputeID: disputeID,
		body:      ClaimBody{text: body},
		status:    status,
		userID:    userID,
		createdAt: createdAt,
	}
}

func (c *Claim) ID() int64            { return c.id }
func (c *Claim) DisputeID() uuid.UUID { return c.disputeID }
func (c *Claim) Body() ClaimBody      { return c.body }
func (c *Claim) Status() string       { return c.status }
func (c *Claim) UserID() *uuid.UUID   { return c.userID }
func (c *Claim) CreatedAt() time.Time { return c.createdAt }
