package readstore

import (
	"context"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/repository/converter"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransactionViewQueries interface {
	GetTransactionHeader(ctx context.Context, db sqlc.DBTX, uuid uuid.UUID) (sqlc.GetTransactionHeaderRow, error)
	ListTransactionStatuses(ctx context.Context, db sqlc.DBTX, transactionUuid uuid.UUID) ([]sqlc.TransactionStatus, error)
	ListShippingStatuses(ctx context.Context, db sqlc.DBTX, transactionUuid uuid.UUID) ([]sqlc.ShippingStatus, error)
	ListMemberStoreIDs(ctx context.Context, db sqlc.DBTX, userUuid uuid.UUID) ([]uuid.UUID, error)
	GetPaymentDetails(ctx context.Context, db sqlc.DBTX, uuid uuid.UUID) (sqlc.VCurrentEvmTransactionStatus, error)
	ListCurrentForBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCurrentForBuyerParams) ([]sqlc.VCurrentTransactionStatus, error)
	ListCurrentForStores(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCurrentForStoresParams) ([]sqlc.VCurrentTransactionStatus, error)
	ListCurrentForUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCurrentForUserParams) ([]sqlc.VCurrentTransactionStatus, error)
	ListCurrentAll(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.VCurrentTransactionStatus, error)
	ListStalePending(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStalePendingParams) ([]sqlc.ListStalePendingRow, error)
}

type TransactionReadStore struct {
	queries TransactionViewQueries
	db      sqlc.DBTX
}

func NewTransactionReadStore(queries TransactionViewQueries, db sqlc.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionReadStore) FindHeader(ctx context.Context, id uuid.UUID) (*queries.TransactionHeader, error) {
	row, err := r.queries.GetTransactionHeader(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get transaction header", err)
	}
	return &queries.TransactionHeader{
		ID:               row.UUID,
		Type:             row.Type,
		Description:      row.Description,
		StoreID:          row.StoreUUID,
		BuyerID:          row.BuyerUUID,
		DisputeID:        pgconv.UUIDPtrFromPgtype(row.DisputeUUID),
		BuyerConfirmedAt: pgconv.TimePtrFromPgtype(row.BuyerConfirmedAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *TransactionReadStore) ListStatusEvents(ctx context.Context, id uuid.UUID) ([]*ledger.StatusEvent, error) {
	rows, err := r.queries.ListTransactionStatuses(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transaction statuses", err)
	}
	events, err := converter.StatusEventsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode transaction statuses", err)
	}
	return events, nil
}

func (r *TransactionReadStore) ListShippingEvents(ctx context.Context, id uuid.UUID) ([]*ledger.ShippingEvent, error) {
	rows, err := r.queries.ListShippingStatuses(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shipping statuses", err)
	}
	return converter.ShippingEventsFromRows(rows), nil
}

func (r *TransactionReadStore) MemberStoreIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListMemberStoreIDs(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member stores", err)
	}
	return ids, nil
}

func (r *TransactionReadStore) FindPaymentDetails(ctx context.Context, id uuid.UUID) (*queries.PaymentDetailsView, error) {
	row, err := r.queries.GetPaymentDetails(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment details not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment details", err)
	}

	view, err := toTransactionView(sqlc.VCurrentTransactionStatus{
		UUID:                  row.UUID,
		Type:                  row.Type,
		Description:           row.Description,
		StoreUUID:             row.StoreUUID,
		Storename:             row.Storename,
		BuyerUUID:             row.BuyerUUID,
		BuyerUsername:         row.BuyerUsername,
		DisputeUUID:           row.DisputeUUID,
		DisputeStatus:         row.DisputeStatus,
		BuyerConfirmedAt:      row.BuyerConfirmedAt,
		CurrentStatus:         row.CurrentStatus,
		CurrentAmount:         row.CurrentAmount,
		CurrentComment:        row.CurrentComment,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
		CurrentShippingStatus: row.CurrentShippingStatus,
		ShippingUpdatedAt:     row.ShippingUpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	required, err := pgconv.DecimalFromNumeric(row.RequiredAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode required amount", err)
	}

	return &queries.PaymentDetailsView{
		TransactionView: *view,
		EscrowAddress:   pgconv.StringPtrFromPgtype(row.EscrowAddress),
		RequiredAmount:  required,
		ChainID:         row.ChainID,
		Currency:        row.Currency,
	}, nil
}

func (r *TransactionReadStore) ListCurrentForBuyer(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListCurrentForBuyer(ctx, r.db, sqlc.ListCurrentForBuyerParams{BuyerUUID: buyerID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions for buyer", err)
	}
	return toTransactionViews(rows)
}

func (r *TransactionReadStore) ListCurrentForStores(ctx context.Context, storeIDs []uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	if len(storeIDs) == 0 {
		return []*queries.TransactionView{}, nil
	}
	rows, err := r.queries.ListCurrentForStores(ctx, r.db, sqlc.ListCurrentForStoresParams{StoreIds: storeIDs, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions for stores", err)
	}
	return toTransactionViews(rows)
}

func (r *TransactionReadStore) ListCurrentForUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListCurrentForUser(ctx, r.db, sqlc.ListCurrentForUserParams{BuyerUUID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions for user", err)
	}
	return toTransactionViews(rows)
}

func (r *TransactionReadStore) ListCurrentAll(ctx context.Context, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListCurrentAll(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	return toTransactionViews(rows)
}

func (r *TransactionReadStore) ListStalePending(ctx context.Context, createdBefore time.Time, limit int32) ([]*queries.StalePendingItem, error) {
	rows, err := r.queries.ListStalePending(ctx, r.db, sqlc.ListStalePendingParams{
		CreatedAt: pgconv.TimeToPgtype(createdBefore),
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending transactions", err)
	}

	items := make([]*queries.StalePendingItem, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.CurrentAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode amount", err)
		}
		items = append(items, &queries.StalePendingItem{ID: row.UUID, Amount: amount})
	}
	return items, nil
}

func toTransactionViews(rows []sqlc.VCurrentTransactionStatus) ([]*queries.TransactionView, error) {
	views := make([]*queries.TransactionView, 0, len(rows))
	for _, row := range rows {
		v, err := toTransactionView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toTransactionView(row sqlc.VCurrentTransactionStatus) (*queries.TransactionView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.CurrentAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode amount", err)
	}
	return &queries.TransactionView{
		ID:                row.UUID,
		Type:              row.Type,
		Description:       row.Description,
		StoreID:           row.StoreUUID,
		StoreName:         pgconv.StringPtrFromPgtype(row.Storename),
		BuyerID:           row.BuyerUUID,
		BuyerUsername:     pgconv.StringPtrFromPgtype(row.BuyerUsername),
		DisputeID:         pgconv.UUIDPtrFromPgtype(row.DisputeUUID),
		DisputeStatus:     pgconv.StringPtrFromPgtype(row.DisputeStatus),
		BuyerConfirmedAt:  pgconv.TimePtrFromPgtype(row.BuyerConfirmedAt),
		Status:            row.CurrentStatus,
		Amount:            amount,
		Comment:           row.CurrentComment,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
		ShippingStatus:    row.CurrentShippingStatus,
		ShippingUpdatedAt: pgconv.TimePtrFromPgtype(row.ShippingUpdatedAt),
	}, nil
}
