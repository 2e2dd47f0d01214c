package queries

import (
	"context"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/config"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
)

type SettlementQueries interface {
	PendingIntents(ctx context.Context, action *intent.Action) ([]*IntentView, error)
	GetIntent(ctx context.Context, id int64) (*IntentView, error)
}

type settlementQueriesImpl struct {
	intents IntentReadStore
	limit   int32
}

func NewSettlementQueries(intents IntentReadStore, cfg config.LedgerConfig) SettlementQueries {
	return &settlementQueriesImpl{
		intents: intents,
		limit:   listingLimit(cfg),
	}
}

// PendingIntents is FIFO by request time, then id.
func (q *settlementQueriesImpl) PendingIntents(ctx context.Context, action *intent.Action) ([]*IntentView, error) {
	intents, err := q.intents.ListPending(ctx, action, q.limit)
	if err != nil {
		return nil, err
	}

	views := make([]*IntentView, 0, len(intents))
	for _, in := range intents {
		views = append(views, NewIntentView(in))
	}
	return views, nil
}

func (q *settlementQueriesImpl) GetIntent(ctx context.Context, id int64) (*IntentView, error) {
	in, err := q.intents.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrIntentNotFound
		}
		return nil, err
	}
	return NewIntentView(in), nil
}

func NewIntentView(in *intent.Intent) *IntentView {
	return &IntentView{
		ID:            in.ID(),
		TransactionID: in.TransactionID(),
		Action:        in.Action().String(),
		RefundPercent: in.Params().RefundPercent,
		RequestedAt:   in.RequestedAt(),
		RequestedBy:   in.RequestedBy(),
		Status:        in.Status().String(),
		ClaimedBy:     in.ClaimedBy(),
		ClaimedAt:     in.ClaimedAt(),
		UpdatedAt:     in.UpdatedAt(),
	}
}
