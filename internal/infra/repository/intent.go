package repository

import (
	"context"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/repository/converter"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
)

type IntentWriteQueries interface {
	InsertIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertIntentParams) (sqlc.TransactionIntent, error)
	ClaimIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimIntentParams) (sqlc.TransactionIntent, error)
	FinishIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.FinishIntentParams) (sqlc.TransactionIntent, error)
}

type IntentRepository struct {
	queries IntentWriteQueries
}

func NewIntentRepository(queries IntentWriteQueries) *IntentRepository {
	return &IntentRepository{queries: queries}
}

func (r *IntentRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, in *intent.Intent) (*intent.Intent, error) {
	params, err := converter.IntentToInsertParams(in)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode intent params", err)
	}
	row, err := r.queries.InsertIntent(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to enqueue intent", err)
	}
	return toIntent(row)
}

// Claim returns KindNotFound when the intent is missing or no longer pending.
func (r *IntentRepository) Claim(ctx context.Context, tx sqlc.DBTX, id int64, workerID string, now time.Time) (*intent.Intent, error) {
	row, err := r.queries.ClaimIntent(ctx, tx, sqlc.ClaimIntentParams{
		ID:        id,
		ClaimedBy: pgconv.StringToPgtype(workerID),
		ClaimedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending intent to claim", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim intent", err)
	}
	return toIntent(row)
}

// Finish returns KindNotFound when the intent is missing or already terminal.
func (r *IntentRepository) Finish(ctx context.Context, tx sqlc.DBTX, id int64, status intent.Status, now time.Time) (*intent.Intent, error) {
	row, err := r.queries.FinishIntent(ctx, tx, sqlc.FinishIntentParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no open intent to finish", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update intent status", err)
	}
	return toIntent(row)
}

func toIntent(row sqlc.TransactionIntent) (*intent.Intent, error) {
	in, err := converter.IntentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode intent", err)
	}
	return in, nil
}
