package queries

import (
	"context"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// transactionLoader reads one transaction fresh and evaluates the caller's
// access against it.
//
// The four reads run concurrently on separate pool connections, so they
// are not one snapshot: a write committed between them can show, say, a
// FROZEN ledger next to a header that has no dispute yet. The result is
// advisory only. Every command re-reads and re-authorizes inside its own
// write transaction before appending anything.
type transactionLoader struct {
	transactions TransactionReadStore
	disputes     DisputeReadStore
}

type loadedTransaction struct {
	header   *TransactionHeader
	statuses []*ledger.StatusEvent
	shipping []*ledger.ShippingEvent
	snapshot *shared.TransactionSnapshot
	access   shared.Access
}

func (l transactionLoader) load(ctx context.Context, id uuid.UUID, actor shared.Actor) (*loadedTransaction, error) {
	var (
		header   *TransactionHeader
		statuses []*ledger.StatusEvent
		shipping []*ledger.ShippingEvent
		members  []uuid.UUID
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		header, err = l.transactions.FindHeader(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = l.transactions.ListStatusEvents(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		shipping, err = l.transactions.ListShippingEvents(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		members, err = l.transactions.MemberStoreIDs(gctx, actor.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, err
	}

	projection, ok := ledger.Project(statuses, shipping)
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}

	var d *dispute.Dispute
	if header.DisputeID != nil {
		found, err := l.disputes.FindByID(ctx, *header.DisputeID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		d = found
	}

	snap := &shared.TransactionSnapshot{
		ID:               header.ID,
		BuyerID:          header.BuyerID,
		StoreID:          header.StoreID,
		BuyerConfirmedAt: header.BuyerConfirmedAt,
		Dispute:          d,
		Projection:       projection,
	}
	access := shared.EvaluateAccess(actor, snap, members)
	if !access.CanView() {
		return nil, errs.ErrTransactionAccess
	}

	return &loadedTransaction{
		header:   header,
		statuses: statuses,
		shipping: shipping,
		snapshot: snap,
		access:   access,
	}, nil
}

func (t *loadedTransaction) view() *TransactionView {
	p := t.snapshot.Projection
	v := &TransactionView{
		ID:                t.header.ID,
		Type:              t.header.Type,
		Description:       t.header.Description,
		StoreID:           t.header.StoreID,
		BuyerID:           t.header.BuyerID,
		DisputeID:         t.header.DisputeID,
		BuyerConfirmedAt:  t.header.BuyerConfirmedAt,
		Status:            p.Status.String(),
		Amount:            p.Amount,
		Comment:           p.Comment,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		ShippingStatus:    p.ShippingStatus.String(),
		ShippingUpdatedAt: p.ShippingUpdatedAt,
		AllowedActions:    t.access.Allowed.Strings(),
	}
	if d := t.snapshot.Dispute; d != nil {
		status := d.Status().String()
		v.DisputeStatus = &status
	}
	return v
}
