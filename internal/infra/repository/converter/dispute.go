package converter

import (
	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
)

func DisputeToInsertParams(d *dispute.Dispute) sqlc.InsertDisputeParams {
	return sqlc.InsertDisputeParams{
		UUID:            d.ID(),
		Status:          d.Status().String(),
		TransactionUUID: d.TransactionID(),
		CreatedAt:       pgconv.TimeToPgtype(d.CreatedAt()),
	}
}

func DisputeFromRow(row sqlc.Dispute) *dispute.Dispute {
	return dispute.ReconstructDispute(
		row.UUID,
		row.TransactionUUID,
		dispute.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.ResolverUserUUID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ClaimToInsertParams(c *dispute.Claim) sqlc.InsertDisputeClaimParams {
	return sqlc.InsertDisputeClaimParams{
		DisputeUUID: c.DisputeID(),
		Claim:       c.Body().String(),
		Status:      c.Status(),
		UserUUID:    pgconv.UUIDPtrToPgtype(c.UserID()),
		CreatedAt:   pgconv.TimeToPgtype(c.CreatedAt()),
	}
}
