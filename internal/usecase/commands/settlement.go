package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/clock"
	"github.com/sanctumos/clawedroad/internal/pkg/config"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/pkg/patch"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	commentPendingTimeout   = "Pending timeout"
	commentSettlementFailed = "Settlement failed"
	stalePendingBatch       = 100
)

// CompleteInput is the worker's report of a successful settlement. A nil
// Amount keeps the transaction's current amount.
type CompleteInput struct {
	Amount           *decimal.Decimal
	Comment          string
	PaymentReceiptID *uuid.UUID
}

type FailInput struct {
	Reason       string
	AppendFailed bool
}

type SettlementCommands interface {
	ClaimIntent(ctx context.Context, id int64, workerID string) (*intent.Intent, error)
	CompleteIntent(ctx context.Context, id int64, in CompleteInput) (*intent.Intent, error)
	FailIntent(ctx context.Context, id int64, in FailInput) (*intent.Intent, error)
	MarkIntentStatus(ctx context.Context, id int64, status string) (*intent.Intent, error)
	ExpireStalePending(ctx context.Context) (int, error)
}

type settlementUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder Recorder
	cfg      config.SettlementConfig
}

func NewSettlementUseCase(uow shared.UnitOfWork, clk clock.Clock, recorder Recorder, cfg config.SettlementConfig) SettlementCommands {
	return &settlementUseCaseImpl{uow: uow, clock: clk, recorder: recorder, cfg: cfg}
}

// ClaimIntent moves a pending intent to in_progress. Of two workers racing
// for the same intent exactly one wins; the other gets ErrIntentNotClaimable.
func (uc *settlementUseCaseImpl) ClaimIntent(ctx context.Context, id int64, workerID string) (*intent.Intent, error) {
	workerID = strings.TrimSpace(workerID)
	if workerID == "" {
		return nil, errs.Mark(intent.ErrMissingWorker, errs.ErrDomainValidation)
	}

	var claimed *intent.Intent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		in, err := tx.Intents().Claim(ctx, tx.DB(), id, workerID, uc.clock.Now())
		if err != nil {
			return explainMiss(ctx, tx, id, err)
		}
		claimed = in
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.IntentTransitioned(claimed.Action().String(), claimed.Status().String())
	slog.Info("intent claimed", "intent_id", id, "worker_id", workerID)
	return claimed, nil
}

// CompleteIntent appends the settled ledger event and marks the intent
// completed atomically.
func (uc *settlementUseCaseImpl) CompleteIntent(ctx context.Context, id int64, in CompleteInput) (*intent.Intent, error) {
	if in.Amount != nil && in.Amount.IsNegative() {
		return nil, errs.Mark(ledger.ErrNegativeAmount, errs.ErrDomainValidation)
	}

	var (
		done    *intent.Intent
		settled ledger.PaymentStatus
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, snap, err := uc.openIntent(ctx, tx, id)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		settled = current.Action().SettledStatus()
		ev, err := ledger.NewStatusEvent(ledger.StatusEventParams{
			TransactionID:    current.TransactionID(),
			Status:           settled,
			Amount:           patch.Coalesce(in.Amount, snap.Projection.Amount),
			Comment:          patch.OrDefault(in.Comment, "Settled by "+current.Action().String()+" intent"),
			PaymentReceiptID: in.PaymentReceiptID,
			Time:             now,
		})
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if _, err := tx.Ledger().AppendStatus(ctx, tx.DB(), ev); err != nil {
			return err
		}

		done, err = uc.finish(ctx, tx, current, intent.StatusCompleted, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.LedgerAppended(ledger.LedgerStatus, settled.String())
	uc.recorder.IntentTransitioned(done.Action().String(), done.Status().String())
	slog.Info("intent completed",
		"intent_id", id,
		"transaction_id", done.TransactionID().String(),
		"status", settled.String())
	return done, nil
}

// FailIntent marks the intent failed and, when asked, appends FAILED to the
// ledger in the same transaction.
func (uc *settlementUseCaseImpl) FailIntent(ctx context.Context, id int64, in FailInput) (*intent.Intent, error) {
	var failed *intent.Intent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, snap, err := uc.openIntent(ctx, tx, id)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if in.AppendFailed {
			ev, err := ledger.NewStatusEvent(ledger.StatusEventParams{
				TransactionID: current.TransactionID(),
				Status:        ledger.StatusFailed,
				Amount:        snap.Projection.Amount,
				Comment:       patch.OrDefault(in.Reason, commentSettlementFailed),
				Time:          now,
			})
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if _, err := tx.Ledger().AppendStatus(ctx, tx.DB(), ev); err != nil {
				return err
			}
		}

		failed, err = uc.finish(ctx, tx, current, intent.StatusFailed, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	if in.AppendFailed {
		uc.recorder.LedgerAppended(ledger.LedgerStatus, ledger.StatusFailed.String())
	}
	uc.recorder.IntentTransitioned(failed.Action().String(), failed.Status().String())
	slog.Warn("intent failed", "intent_id", id, "reason", in.Reason)
	return failed, nil
}

// MarkIntentStatus only sets a terminal status and leaves the ledger alone.
func (uc *settlementUseCaseImpl) MarkIntentStatus(ctx context.Context, id int64, status string) (*intent.Intent, error) {
	next, err := intent.NewTerminalStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var marked *intent.Intent
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		in, err := tx.Intents().Finish(ctx, tx.DB(), id, next, uc.clock.Now())
		if err != nil {
			return explainMiss(ctx, tx, id, err)
		}
		marked = in
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.IntentTransitioned(marked.Action().String(), marked.Status().String())
	return marked, nil
}

// ExpireStalePending appends FAILED to every transaction that has stayed
// PENDING longer than the configured timeout. Each transaction is handled in
// its own database transaction and re-checked there.
func (uc *settlementUseCaseImpl) ExpireStalePending(ctx context.Context) (int, error) {
	cutoff := uc.clock.Now().Add(-uc.cfg.PendingTimeout)
	stale, err := uc.uow.CommandReads().StalePending(ctx, cutoff, stalePendingBatch)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, st := range stale {
		ok, err := uc.expireOne(ctx, st.ID)
		if err != nil {
			slog.Error("failed to expire pending transaction",
				"transaction_id", st.ID.String(),
				"error", err.Error())
			continue
		}
		if ok {
			expired++
		}
	}

	uc.recorder.Swept(expired)
	if expired > 0 {
		slog.Info("expired stale pending transactions", "count", expired, "cutoff", cutoff)
	}
	return expired, nil
}

func (uc *settlementUseCaseImpl) expireOne(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	expired := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().TransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if snap.Projection.Status != ledger.StatusPending {
			return nil
		}

		now := uc.clock.Now()
		ev, err := ledger.NewStatusEvent(ledger.StatusEventParams{
			TransactionID: transactionID,
			Status:        ledger.StatusFailed,
			Amount:        decimal.Zero,
			Comment:       commentPendingTimeout,
			Time:          now,
		})
		if err != nil {
			return err
		}
		if _, err := tx.Ledger().AppendStatus(ctx, tx.DB(), ev); err != nil {
			return err
		}
		if err := tx.Audit().Write(ctx, tx.DB(), shared.AuditEntry{
			ActionType: shared.AuditPendingExpired,
			TargetType: "transaction",
			TargetID:   transactionID.String(),
			Metadata:   map[string]any{"pending_since": snap.Projection.CreatedAt},
			CreatedAt:  now,
		}); err != nil {
			return err
		}
		expired = true
		return nil
	})
	return expired, err
}

// openIntent loads a non-terminal intent and its transaction.
func (uc *settlementUseCaseImpl) openIntent(ctx context.Context, tx shared.Tx, id int64) (*intent.Intent, *shared.TransactionSnapshot, error) {
	in, err := tx.Reads().IntentByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrIntentNotFound
		}
		return nil, nil, err
	}
	if in.Status().IsTerminal() {
		return nil, nil, errs.ErrIntentNotClaimable
	}

	snap, err := tx.Reads().TransactionByID(ctx, in.TransactionID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrTransactionNotFound
		}
		return nil, nil, err
	}
	return in, snap, nil
}

func (uc *settlementUseCaseImpl) finish(ctx context.Context, tx shared.Tx, in *intent.Intent, status intent.Status, now time.Time) (*intent.Intent, error) {
	done, err := tx.Intents().Finish(ctx, tx.DB(), in.ID(), status, now)
	if err != nil {
		return nil, explainMiss(ctx, tx, in.ID(), err)
	}

	claimedBy := ""
	if in.ClaimedBy() != nil {
		claimedBy = *in.ClaimedBy()
	}
	actionType := shared.AuditIntentCompleted
	if status == intent.StatusFailed {
		actionType = shared.AuditIntentFailed
	}
	if err := tx.Audit().Write(ctx, tx.DB(), shared.AuditEntry{
		ActionType: actionType,
		TargetType: "intent",
		TargetID:   strconv.FormatInt(in.ID(), 10),
		Metadata: map[string]any{
			"transaction_id": in.TransactionID().String(),
			"action":         in.Action().String(),
			"claimed_by":     claimedBy,
		},
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}
	return done, nil
}

// explainMiss turns a conditional-update miss into ErrIntentNotFound or
// ErrIntentNotClaimable.
func explainMiss(ctx context.Context, tx shared.Tx, id int64, err error) error {
	if !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	if _, lookupErr := tx.Reads().IntentByID(ctx, id); lookupErr != nil {
		if infra.IsKind(lookupErr, infra.KindNotFound) {
			return errs.ErrIntentNotFound
		}
		return lookupErr
	}
	return errs.ErrIntentNotClaimable
}
