package commands

import (
	"context"
	"log/slog"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/domain/permission"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/clock"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/google/uuid"
)

const commentDisputeOpened = "Dispute opened"

type ClaimInput struct {
	Reason  string
	Message string
}

type DisputeCommands interface {
	OpenDispute(ctx context.Context, transactionID uuid.UUID, actor shared.Actor, in ClaimInput) (*dispute.Dispute, error)
	AddClaim(ctx context.Context, disputeID uuid.UUID, actor shared.Actor, in ClaimInput) (int64, error)
	Resolve(ctx context.Context, disputeID uuid.UUID, actor shared.Actor) (*dispute.Dispute, error)
	PartialRefund(ctx context.Context, disputeID uuid.UUID, actor shared.Actor, percent float64) (*intent.Intent, error)
}

type disputeUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder Recorder
}

func NewDisputeUseCase(uow shared.UnitOfWork, clk clock.Clock, recorder Recorder) DisputeCommands {
	return &disputeUseCaseImpl{uow: uow, clock: clk, recorder: recorder}
}

// OpenDispute creates the dispute, links it to the transaction, freezes the
// payment and stores the first claim in one database transaction.
func (uc *disputeUseCaseImpl) OpenDispute(ctx context.Context, transactionID uuid.UUID, actor shared.Actor, in ClaimInput) (*dispute.Dispute, error) {
	body, err := dispute.NewClaimBody(in.Reason, in.Message)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var opened *dispute.Dispute
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, _, err := authorize(ctx, tx, transactionID, actor, permission.ActionOpenDispute)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		d, err := dispute.NewDispute(transactionID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDisputeCreateFailed)
		}
		if err := tx.Disputes().Create(ctx, tx.DB(), d); err != nil {
			return errs.Mark(err, errs.ErrDisputeCreateFailed)
		}

		linked, err := tx.Disputes().LinkToTransaction(ctx, tx.DB(), d.ID(), transactionID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDisputeCreateFailed)
		}
		if !linked {
			return errs.ErrDisputeAlreadyExists
		}

		userID := actor.UserID
		frozen, err := ledger.NewStatusEvent(ledger.StatusEventParams{
			TransactionID: transactionID,
			Status:        ledger.StatusFrozen,
			Amount:        snap.Projection.Amount,
			Comment:       commentDisputeOpened,
			UserID:        &userID,
			Time:          now,
		})
		if err != nil {
			return errs.Mark(err, errs.ErrDisputeCreateFailed)
		}
		if _, err := tx.Ledger().AppendStatus(ctx, tx.DB(), frozen); err != nil {
			return errs.Mark(err, errs.ErrDisputeCreateFailed)
		}

		if _, err := tx.Disputes().AddClaim(ctx, tx.DB(), dispute.NewClaim(d.ID(), body, &userID, now)); err != nil {
			return errs.Mark(err, errs.ErrDisputeCreateFailed)
		}

		opened = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.DisputeEvent(disputeEventOpened)
	uc.recorder.LedgerAppended(ledger.LedgerStatus, ledger.StatusFrozen.String())
	slog.Info("dispute opened",
		"dispute_id", opened.ID().String(),
		"transaction_id", transactionID.String())
	return opened, nil
}

// AddClaim accepts claims from the buyer, the store's members and staff
// while the dispute is open.
func (uc *disputeUseCaseImpl) AddClaim(ctx context.Context, disputeID uuid.UUID, actor shared.Actor, in ClaimInput) (int64, error) {
	body, err := dispute.NewClaimBody(in.Reason, in.Message)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := findDispute(ctx, tx, disputeID)
		if err != nil {
			return err
		}
		if err := d.EnsureAcceptsClaims(); err != nil {
			return errs.Mark(err, errs.ErrDisputeResolved)
		}
		if _, _, err := load(ctx, tx, d.TransactionID(), actor); err != nil {
			return err
		}

		userID := actor.UserID
		id, err = tx.Disputes().AddClaim(ctx, tx.DB(), dispute.NewClaim(d.ID(), body, &userID, uc.clock.Now()))
		return err
	})
	if err != nil {
		return 0, err
	}

	uc.recorder.DisputeEvent(disputeEventClaim)
	return id, nil
}

// Resolve closes the dispute for good. The payment status is left to a
// follow-up staff action.
func (uc *disputeUseCaseImpl) Resolve(ctx context.Context, disputeID uuid.UUID, actor shared.Actor) (*dispute.Dispute, error) {
	if !actor.Role.IsStaff() {
		return nil, errs.ErrStaffOnly
	}

	var resolved *dispute.Dispute
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := findDispute(ctx, tx, disputeID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := d.Resolve(actor.UserID, now); err != nil {
			return errs.Mark(err, errs.ErrDisputeResolved)
		}
		ok, err := tx.Disputes().Resolve(ctx, tx.DB(), d)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrDisputeResolved
		}

		actorID := actor.UserID
		if err := tx.Audit().Write(ctx, tx.DB(), shared.AuditEntry{
			ActorID:    &actorID,
			ActionType: shared.AuditDisputeResolve,
			TargetType: "dispute",
			TargetID:   d.ID().String(),
			Metadata:   map[string]any{"transaction_id": d.TransactionID().String()},
			CreatedAt:  now,
		}); err != nil {
			return err
		}

		resolved = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.DisputeEvent(disputeEventResolved)
	slog.Info("dispute resolved",
		"dispute_id", disputeID.String(),
		"resolver_id", actor.UserID.String())
	return resolved, nil
}

// PartialRefund enqueues a partial refund for the dispute's transaction on
// behalf of staff.
func (uc *disputeUseCaseImpl) PartialRefund(ctx context.Context, disputeID uuid.UUID, actor shared.Actor, percent float64) (*intent.Intent, error) {
	if !actor.Role.IsStaff() {
		return nil, errs.ErrStaffOnly
	}
	pct, err := intent.NewRefundPercent(percent)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var enqueued *intent.Intent
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := findDispute(ctx, tx, disputeID)
		if err != nil {
			return err
		}
		if _, _, err := authorize(ctx, tx, d.TransactionID(), actor, permission.ActionPartialRefund); err != nil {
			return err
		}

		now := uc.clock.Now()
		actorID := actor.UserID
		in, err := intent.NewPartialRefund(d.TransactionID(), pct, &actorID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		enqueued, err = tx.Intents().Enqueue(ctx, tx.DB(), in)
		if err != nil {
			return err
		}

		return tx.Audit().Write(ctx, tx.DB(), shared.AuditEntry{
			ActorID:    &actorID,
			ActionType: shared.AuditDisputePartialRefund,
			TargetType: "dispute",
			TargetID:   d.ID().String(),
			Metadata: map[string]any{
				"transaction_id": d.TransactionID().String(),
				"intent_id":      enqueued.ID(),
				"refund_percent": pct.Value(),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.IntentEnqueued(enqueued.Action().String())
	uc.recorder.DisputeEvent(disputeEventRefund)
	return enqueued, nil
}

func findDispute(ctx context.Context, tx shared.Tx, id uuid.UUID) (*dispute.Dispute, error) {
	d, err := tx.Reads().DisputeByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDisputeNotFound
		}
		return nil, err
	}
	return d, nil
}
