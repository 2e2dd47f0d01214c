package readstore

import (
	"context"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/repository/converter"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type IntentViewQueries interface {
	GetIntent(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.TransactionIntent, error)
	ListPendingIntents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingIntentsParams) ([]sqlc.TransactionIntent, error)
}

type IntentReadStore struct {
	queries IntentViewQueries
	db      sqlc.DBTX
}

func NewIntentReadStore(queries IntentViewQueries, db sqlc.DBTX) *IntentReadStore {
	return &IntentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *IntentReadStore) FindByID(ctx context.Context, id int64) (*intent.Intent, error) {
	row, err := r.queries.GetIntent(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get intent", err)
	}
	in, err := converter.IntentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode intent", err)
	}
	return in, nil
}

// ListPending returns pending intents oldest first. A nil action lists all.
func (r *IntentReadStore) ListPending(ctx context.Context, action *intent.Action, limit int32) ([]*intent.Intent, error) {
	params := sqlc.ListPendingIntentsParams{Limit: limit}
	if action != nil {
		params.Action = pgtype.Text{String: action.String(), Valid: true}
	}

	rows, err := r.queries.ListPendingIntents(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending intents", err)
	}

	intents := make([]*intent.Intent, 0, len(rows))
	for _, row := range rows {
		in, err := converter.IntentFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode intent", err)
		}
		intents = append(intents, in)
	}
	return intents, nil
}
