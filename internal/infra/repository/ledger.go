package repository

import (
	"context"

	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/repository/converter"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
)

type LedgerWriteQueries interface {
	InsertTransactionStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTransactionStatusParams) (int64, error)
	InsertShippingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertShippingStatusParams) (int64, error)
}

// LedgerRepository only ever inserts. There is no update or delete path for
// ledger rows.
type LedgerRepository struct {
	queries LedgerWriteQueries
}

func NewLedgerRepository(queries LedgerWriteQueries) *LedgerRepository {
	return &LedgerRepository{queries: queries}
}

func (r *LedgerRepository) AppendStatus(ctx context.Context, tx sqlc.DBTX, event *ledger.StatusEvent) (int64, error) {
	params, err := converter.StatusEventToInsertParams(event)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to convert status event", err)
	}
	id, err := r.queries.InsertTransactionStatus(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to append transaction status", err)
	}
	return id, nil
}

func (r *LedgerRepository) AppendShipping(ctx context.Context, tx sqlc.DBTX, event *ledger.ShippingEvent) (int64, error) {
	id, err := r.queries.InsertShippingStatus(ctx, tx, converter.ShippingEventToInsertParams(event))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to append shipping status", err)
	}
	return id, nil
}
