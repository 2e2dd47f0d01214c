package repository

import (
	"context"
	"encoding/json"

	"github.com/sanctumos/clawedroad/internal/infra"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"
)

type AuditWriteQueries interface {
	InsertAuditLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAuditLogParams) error
}

type AuditRepository struct {
	queries AuditWriteQueries
}

func NewAuditRepository(queries AuditWriteQueries) *AuditRepository {
	return &AuditRepository{queries: queries}
}

func (r *AuditRepository) Write(ctx context.Context, tx sqlc.DBTX, entry shared.AuditEntry) error {
	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return infra.WrapRepoErr("failed to encode audit metadata", err)
	}

	err = r.queries.InsertAuditLog(ctx, tx, sqlc.InsertAuditLogParams{
		ActorUserUUID: pgconv.UUIDPtrToPgtype(entry.ActorID),
		ActionType:    entry.ActionType,
		TargetType:    entry.TargetType,
		TargetID:      entry.TargetID,
		Metadata:      raw,
		CreatedAt:     pgconv.TimeToPgtype(entry.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to write audit log", err)
	}
	return nil
}
