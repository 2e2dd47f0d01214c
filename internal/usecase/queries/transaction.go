package queries

import (
	"context"

	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/config"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransactionQueries interface {
	GetCurrent(ctx context.Context, id uuid.UUID, actor shared.Actor) (*TransactionView, error)
	History(ctx context.Context, id uuid.UUID, actor shared.Actor) (*TransactionHistory, error)
	PaymentDetails(ctx context.Context, id uuid.UUID, actor shared.Actor) (*PaymentDetailsView, error)
	ListForActor(ctx context.Context, actor shared.Actor) ([]*TransactionView, error)
	ListForBuyer(ctx context.Context, buyerID uuid.UUID) ([]*TransactionView, error)
	ListForVendor(ctx context.Context, actor shared.Actor) ([]*TransactionView, error)
}

type transactionQueriesImpl struct {
	store  TransactionReadStore
	loader transactionLoader
	limit  int32
}

func NewTransactionQueries(store TransactionReadStore, disputes DisputeReadStore, cfg config.LedgerConfig) TransactionQueries {
	return &transactionQueriesImpl{
		store:  store,
		loader: transactionLoader{transactions: store, disputes: disputes},
		limit:  listingLimit(cfg),
	}
}

// GetCurrent projects the transaction from its ledgers at read time and
// attaches the actions the caller may request right now.
func (q *transactionQueriesImpl) GetCurrent(ctx context.Context, id uuid.UUID, actor shared.Actor) (*TransactionView, error) {
	t, err := q.loader.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return t.view(), nil
}

func (q *transactionQueriesImpl) History(ctx context.Context, id uuid.UUID, actor shared.Actor) (*TransactionHistory, error) {
	t, err := q.loader.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	h := &TransactionHistory{
		TransactionID: id,
		Statuses:      make([]*StatusEventView, 0, len(t.statuses)),
		Shipping:      make([]*ShippingEventView, 0, len(t.shipping)),
	}
	for _, e := range t.statuses {
		h.Statuses = append(h.Statuses, &StatusEventView{
			ID:               e.ID(),
			Time:             e.Time(),
			Status:           e.Status().String(),
			Amount:           e.Amount(),
			Comment:          e.Comment(),
			UserID:           e.UserID(),
			PaymentReceiptID: e.PaymentReceiptID(),
		})
	}
	for _, e := range t.shipping {
		h.Shipping = append(h.Shipping, &ShippingEventView{
			ID:      e.ID(),
			Time:    e.Time(),
			Status:  e.Status().String(),
			Comment: e.Comment(),
			UserID:  e.UserID(),
		})
	}
	return h, nil
}

func (q *transactionQueriesImpl) PaymentDetails(ctx context.Context, id uuid.UUID, actor shared.Actor) (*PaymentDetailsView, error) {
	t, err := q.loader.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	details, err := q.store.FindPaymentDetails(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, err
	}
	details.AllowedActions = t.access.Allowed.Strings()
	return details, nil
}

// ListForActor lists everything for staff, otherwise the caller's purchases
// and the sales of the stores they belong to.
func (q *transactionQueriesImpl) ListForActor(ctx context.Context, actor shared.Actor) ([]*TransactionView, error) {
	if actor.Role.IsStaff() {
		return q.store.ListCurrentAll(ctx, q.limit)
	}
	return q.store.ListCurrentForUser(ctx, actor.UserID, q.limit)
}

// ListForBuyer lists the caller's purchases only.
func (q *transactionQueriesImpl) ListForBuyer(ctx context.Context, buyerID uuid.UUID) ([]*TransactionView, error) {
	return q.store.ListCurrentForBuyer(ctx, buyerID, q.limit)
}

// ListForVendor lists the sales of every store the caller belongs to.
func (q *transactionQueriesImpl) ListForVendor(ctx context.Context, actor shared.Actor) ([]*TransactionView, error) {
	storeIDs, err := q.store.MemberStoreIDs(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return q.store.ListCurrentForStores(ctx, storeIDs, q.limit)
}

func listingLimit(cfg config.LedgerConfig) int32 {
	if cfg.ListingLimit <= 0 {
		return 100
	}
	return cfg.ListingLimit
}
