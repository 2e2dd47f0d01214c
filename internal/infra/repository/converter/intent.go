package converter

import (
	"github.com/sanctumos/clawedroad/internal/domain/intent"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
)

func IntentToInsertParams(in *intent.Intent) (sqlc.InsertIntentParams, error) {
	params, err := in.Params().Marshal()
	if err != nil {
		return sqlc.InsertIntentParams{}, err
	}
	return sqlc.InsertIntentParams{
		TransactionUUID:     in.TransactionID(),
		Action:              in.Action().String(),
		Params:              params,
		RequestedAt:         pgconv.TimeToPgtype(in.RequestedAt()),
		RequestedByUserUUID: pgconv.UUIDPtrToPgtype(in.RequestedBy()),
	}, nil
}

func IntentFromRow(row sqlc.TransactionIntent) (*intent.Intent, error) {
	params, err := intent.UnmarshalParams(row.Params)
	if err != nil {
		return nil, err
	}
	return intent.Reconstruct(intent.ReconstructParams{
		ID:            row.ID,
		TransactionID: row.TransactionUUID,
		Action:        intent.Action(row.Action),
		Params:        params,
		RequestedAt:   pgconv.TimeFromPgtype(row.RequestedAt),
		RequestedBy:   pgconv.UUIDPtrFromPgtype(row.RequestedByUserUUID),
		Status:        intent.Status(row.Status),
		ClaimedBy:     pgconv.StringPtrFromPgtype(row.ClaimedBy),
		ClaimedAt:     pgconv.TimePtrFromPgtype(row.ClaimedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
