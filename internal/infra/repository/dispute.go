package repository

import (
	"context"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/repository/converter"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DisputeWriteQueries interface {
	InsertDispute(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDisputeParams) error
	LinkDispute(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkDisputeParams) (int64, error)
	ResolveDispute(ctx context.Context, db sqlc.DBTX, arg sqlc.ResolveDisputeParams) (int64, error)
	InsertDisputeClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDisputeClaimParams) (int64, error)
}

type DisputeRepository struct {
	queries DisputeWriteQueries
}

func NewDisputeRepository(queries DisputeWriteQueries) *DisputeRepository {
	return &DisputeRepository{queries: queries}
}

func (r *DisputeRepository) Create(ctx context.Context, tx sqlc.DBTX, d *dispute.Dispute) error {
	if err := r.queries.InsertDispute(ctx, tx, converter.DisputeToInsertParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create dispute", err)
	}
	return nil
}

// LinkToTransaction reports false when the transaction already carries a
// dispute (or does not exist).
func (r *DisputeRepository) LinkToTransaction(ctx context.Context, tx sqlc.DBTX, disputeID, transactionID uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.LinkDispute(ctx, tx, sqlc.LinkDisputeParams{
		DisputeUUID: pgconv.UUIDToPgtype(disputeID),
		UUID:        transactionID,
		UpdatedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to link dispute to transaction", err)
	}
	return n == 1, nil
}

// Resolve reports false when the dispute was already resolved.
func (r *DisputeRepository) Resolve(ctx context.Context, tx sqlc.DBTX, d *dispute.Dispute) (bool, error) {
	n, err := r.queries.ResolveDispute(ctx, tx, sqlc.ResolveDisputeParams{
		UUID:             d.ID(),
		ResolverUserUUID: pgconv.UUIDPtrToPgtype(d.ResolverID()),
		UpdatedAt:        pgconv.TimeToPgtype(d.UpdatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to resolve dispute", err)
	}
	return n == 1, nil
}

func (r *DisputeRepository) AddClaim(ctx context.Context, tx sqlc.DBTX, c *dispute.Claim) (int64, error) {
	id, err := r.queries.InsertDisputeClaim(ctx, tx, converter.ClaimToInsertParams(c))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to add dispute claim", err)
	}
	return id, nil
}
