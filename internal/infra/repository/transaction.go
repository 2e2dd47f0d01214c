package repository

import (
	"context"
	"time"

	"github.com/sanctumos/clawedroad/internal/infra"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TransactionWriteQueries interface {
	ConfirmReceived(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmReceivedParams) (int64, error)
}

type TransactionRepository struct {
	queries TransactionWriteQueries
}

func NewTransactionRepository(queries TransactionWriteQueries) *TransactionRepository {
	return &TransactionRepository{queries: queries}
}

// ConfirmReceived stamps buyer_confirmed_at once; a repeat returns false.
func (r *TransactionRepository) ConfirmReceived(ctx context.Context, tx sqlc.DBTX, transactionID uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.ConfirmReceived(ctx, tx, sqlc.ConfirmReceivedParams{
		UUID:             transactionID,
		BuyerConfirmedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record buyer confirmation", err)
	}
	return n == 1, nil
}
