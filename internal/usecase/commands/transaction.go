package commands

import (
	"context"
	"log/slog"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/domain/permission"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/clock"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/google/uuid"
)

const commentMarkedShipped = "Marked shipped"

type RequestActionInput struct {
	Action        permission.Action
	RefundPercent *float64
}

// ActionResult carries the enqueued intent for settlement actions and is
// empty for actions that only touch the ledger.
type ActionResult struct {
	Action permission.Action
	Intent *intent.Intent
}

type AppendShippingInput struct {
	Status  string
	Comment string
}

type TransactionCommands interface {
	RequestAction(ctx context.Context, transactionID uuid.UUID, actor shared.Actor, in RequestActionInput) (*ActionResult, error)
	RequestRelease(ctx context.Context, transactionID uuid.UUID, actor shared.Actor) (*intent.Intent, error)
	RequestCancel(ctx context.Context, transactionID uuid.UUID, actor shared.Actor) (*intent.Intent, error)
	RequestPartialRefund(ctx context.Context, transactionID uuid.UUID, actor shared.Actor, percent float64) (*intent.Intent, error)
	MarkShipped(ctx context.Context, transactionID uuid.UUID, actor shared.Actor) error
	ConfirmReceived(ctx context.Context, transactionID uuid.UUID, actor shared.Actor) error
	AppendShipping(ctx context.Context, transactionID uuid.UUID, actor shared.Actor, in AppendShippingInput) (int64, error)
}

type transactionUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder Recorder
}

func NewTransactionUseCase(uow shared.UnitOfWork, clk clock.Clock, recorder Recorder) TransactionCommands {
	return &transactionUseCaseImpl{uow: uow, clock: clk, recorder: recorder}
}

func (uc *transactionUseCaseImpl) RequestAction(ctx context.Context, transactionID uuid.UUID, actor shared.Actor, in RequestActionInput) (*ActionResult, error) {
	result := &ActionResult{Action: in.Action}

	var err error
	switch in.Action {
	case permission.ActionRelease:
		result.Intent, err = uc.RequestRelease(ctx, transactionID, actor)
	case permission.ActionCancel:
		result.Intent, err = uc.RequestCancel(ctx, transactionID, actor)
	case permission.ActionPartialRefund:
		if in.RefundPercent == nil {
			return nil, errs.Mark(intent.ErrInvalidRefundPercent, errs.ErrDomainValidation)
		}
		result.Intent, err = uc.RequestPartialRefund(ctx, transactionID, actor, *in.RefundPercent)
	case permission.ActionMarkShipped:
		err = uc.MarkShipped(ctx, transactionID, actor)
	case permission.ActionConfirmReceived:
		err = uc.ConfirmReceived(ctx, transactionID, actor)
	default:
		return nil, errs.Mark(permission.ErrInvalidAction, errs.ErrDomainValidation)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *transactionUseCaseImpl) RequestRelease(ctx context.Context, transactionID uuid.UUID, actor shared.Actor) (*intent.Intent, error) {
	return uc.enqueue(ctx, transactionID, actor, permission.ActionRelease, func(requestedBy *uuid.UUID) (*intent.Intent, error) {
		return intent.NewRelease(transactionID, requestedBy, uc.clock.Now())
	})
}

func (uc *transactionUseCaseImpl) RequestCancel(ctx context.Context, transactionID uuid.UUID, actor shared.Actor) (*intent.Intent, error) {
	return uc.enqueue(ctx, transactionID, actor, permission.ActionCancel, func(requestedBy *uuid.UUID) (*intent.Intent, error) {
		return intent.NewCancel(transactionID, requestedBy, uc.clock.Now())
	})
}

// RequestPartialRefund rejects an out-of-range percent before touching storage.
func (uc *transactionUseCaseImpl) RequestPartialRefund(ctx context.Context, transactionID uuid.UUID, actor shared.Actor, percent float64) (*intent.Intent, error) {
	pct, err := intent.NewRefundPercent(percent)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return uc.enqueue(ctx, transactionID, actor, permission.ActionPartialRefund, func(requestedBy *uuid.UUID) (*intent.Intent, error) {
		return intent.NewPartialRefund(transactionID, pct, requestedBy, uc.clock.Now())
	})
}

func (uc *transactionUseCaseImpl) enqueue(
	ctx context.Context,
	transactionID uuid.UUID,
	actor shared.Actor,
	action permission.Action,
	build func(requestedBy *uuid.UUID) (*intent.Intent, error),
) (*intent.Intent, error) {
	var enqueued *intent.Intent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, _, err := authorize(ctx, tx, transactionID, actor, action); err != nil {
			return err
		}

		requestedBy := actor.UserID
		in, err := build(&requestedBy)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		enqueued, err = tx.Intents().Enqueue(ctx, tx.DB(), in)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.IntentEnqueued(enqueued.Action().String())
	slog.Info("intent enqueued",
		"intent_id", enqueued.ID(),
		"transaction_id", transactionID.String(),
		"action", enqueued.Action().String())
	return enqueued, nil
}

func (uc *transactionUseCaseImpl) MarkShipped(ctx context.Context, transactionID uuid.UUID, actor shared.Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, _, err := authorize(ctx, tx, transactionID, actor, permission.ActionMarkShipped); err != nil {
			return err
		}

		userID := actor.UserID
		ev, err := ledger.NewShippingEvent(ledger.ShippingEventParams{
			TransactionID: transactionID,
			Status:        ledger.ShippingDispatched,
			Comment:       commentMarkedShipped,
			UserID:        &userID,
			Time:          uc.clock.Now(),
		})
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		_, err = tx.Ledger().AppendShipping(ctx, tx.DB(), ev)
		return err
	})
	if err != nil {
		return err
	}

	uc.recorder.LedgerAppended(ledger.LedgerShipping, ledger.ShippingDispatched.String())
	return nil
}

// ConfirmReceived records the buyer's confirmation timestamp once.
func (uc *transactionUseCaseImpl) ConfirmReceived(ctx context.Context, transactionID uuid.UUID, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, _, err := authorize(ctx, tx, transactionID, actor, permission.ActionConfirmReceived); err != nil {
			return err
		}

		updated, err := tx.Transactions().ConfirmReceived(ctx, tx.DB(), transactionID, uc.clock.Now())
		if err != nil {
			return err
		}
		if !updated {
			slog.Debug("buyer confirmation already recorded", "transaction_id", transactionID.String())
		}
		return nil
	})
}

// AppendShipping lets the vendor or staff record any shipping label.
func (uc *transactionUseCaseImpl) AppendShipping(ctx context.Context, transactionID uuid.UUID, actor shared.Actor, in AppendShippingInput) (int64, error) {
	status, err := ledger.NewShippingStatus(in.Status)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, access, err := load(ctx, tx, transactionID, actor)
		if err != nil {
			return err
		}
		if !access.Has(permission.RelationshipVendor) && !access.Has(permission.RelationshipStaff) {
			return errs.WithHint(
				errs.Mark(errs.Newf("user %s may not update shipping", actor.UserID), errs.ErrActionNotAllowed),
				"only the vendor or staff may update shipping")
		}

		userID := actor.UserID
		ev, err := ledger.NewShippingEvent(ledger.ShippingEventParams{
			TransactionID: transactionID,
			Status:        status,
			Comment:       in.Comment,
			UserID:        &userID,
			Time:          uc.clock.Now(),
		})
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		id, err = tx.Ledger().AppendShipping(ctx, tx.DB(), ev)
		return err
	})
	if err != nil {
		return 0, err
	}

	uc.recorder.LedgerAppended(ledger.LedgerShipping, status.String())
	return id, nil
}

// load reads the transaction inside tx and evaluates the caller against it.
func load(ctx context.Context, tx shared.Tx, transactionID uuid.UUID, actor shared.Actor) (*shared.TransactionSnapshot, shared.Access, error) {
	snap, err := tx.Reads().TransactionByID(ctx, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.Access{}, errs.ErrTransactionNotFound
		}
		return nil, shared.Access{}, err
	}

	members, err := tx.Reads().MemberStoreIDs(ctx, actor.UserID)
	if err != nil {
		return nil, shared.Access{}, err
	}

	access := shared.EvaluateAccess(actor, snap, members)
	if !access.CanView() {
		return nil, shared.Access{}, errs.ErrTransactionAccess
	}
	return snap, access, nil
}

func authorize(ctx context.Context, tx shared.Tx, transactionID uuid.UUID, actor shared.Actor, action permission.Action) (*shared.TransactionSnapshot, shared.Access, error) {
	snap, access, err := load(ctx, tx, transactionID, actor)
	if err != nil {
		return nil, shared.Access{}, err
	}
	if err := access.Require(action); err != nil {
		return nil, shared.Access{}, err
	}
	return snap, access, nil
}
