package readstore

import (
	"context"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/repository/converter"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"

	"github.com/google/uuid"
)

type DisputeViewQueries interface {
	GetDispute(ctx context.Context, db sqlc.DBTX, uuid uuid.UUID) (sqlc.Dispute, error)
	ListDisputeClaims(ctx context.Context, db sqlc.DBTX, disputeUuid uuid.UUID) ([]sqlc.ListDisputeClaimsRow, error)
	ListOpenDisputes(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListOpenDisputesRow, error)
}

type DisputeReadStore struct {
	queries DisputeViewQueries
	db      sqlc.DBTX
}

func NewDisputeReadStore(queries DisputeViewQueries, db sqlc.DBTX) *DisputeReadStore {
	return &DisputeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DisputeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*dispute.Dispute, error) {
	row, err := r.queries.GetDispute(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dispute not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get dispute", err)
	}
	return converter.DisputeFromRow(row), nil
}

func (r *DisputeReadStore) ListClaims(ctx context.Context, disputeID uuid.UUID) ([]*queries.ClaimView, error) {
	rows, err := r.queries.ListDisputeClaims(ctx, r.db, disputeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dispute claims", err)
	}

	claims := make([]*queries.ClaimView, 0, len(rows))
	for _, row := range rows {
		claims = append(claims, &queries.ClaimView{
			ID:        row.ID,
			Claim:     row.Claim,
			Status:    row.Status,
			UserID:    pgconv.UUIDPtrFromPgtype(row.UserUUID),
			Username:  pgconv.StringPtrFromPgtype(row.Username),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return claims, nil
}

func (r *DisputeReadStore) ListOpen(ctx context.Context, limit int32) ([]*queries.OpenDisputeItem, error) {
	rows, err := r.queries.ListOpenDisputes(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open disputes", err)
	}

	items := make([]*queries.OpenDisputeItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.OpenDisputeItem{
			ID:            row.UUID,
			TransactionID: row.TransactionUUID,
			BuyerID:       row.BuyerUUID,
			StoreID:       row.StoreUUID,
			Description:   row.Description,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return items, nil
}
