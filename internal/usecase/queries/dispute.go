package queries

import (
	"context"

	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/config"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/google/uuid"
)

type DisputeQueries interface {
	Get(ctx context.Context, id uuid.UUID, actor shared.Actor) (*DisputeView, error)
	ListOpen(ctx context.Context, actor shared.Actor) ([]*OpenDisputeItem, error)
}

type disputeQueriesImpl struct {
	disputes DisputeReadStore
	loader   transactionLoader
	limit    int32
}

func NewDisputeQueries(disputes DisputeReadStore, transactions TransactionReadStore, cfg config.LedgerConfig) DisputeQueries {
	return &disputeQueriesImpl{
		disputes: disputes,
		loader:   transactionLoader{transactions: transactions, disputes: disputes},
		limit:    listingLimit(cfg),
	}
}

// Get is visible to the buyer, the store's members and staff.
func (q *disputeQueriesImpl) Get(ctx context.Context, id uuid.UUID, actor shared.Actor) (*DisputeView, error) {
	d, err := q.disputes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDisputeNotFound
		}
		return nil, err
	}

	if _, err := q.loader.load(ctx, d.TransactionID(), actor); err != nil {
		return nil, err
	}

	claims, err := q.disputes.ListClaims(ctx, id)
	if err != nil {
		return nil, err
	}

	return &DisputeView{
		ID:            d.ID(),
		TransactionID: d.TransactionID(),
		Status:        d.Status().String(),
		ResolverID:    d.ResolverID(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
		Claims:        claims,
	}, nil
}

func (q *disputeQueriesImpl) ListOpen(ctx context.Context, actor shared.Actor) ([]*OpenDisputeItem, error) {
	if !actor.Role.IsStaff() {
		return nil, errs.ErrStaffOnly
	}
	return q.disputes.ListOpen(ctx, q.limit)
}
