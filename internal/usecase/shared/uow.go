package shared

import (
	"context"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Ledger() LedgerRepository
	Intents() IntentRepository
	Disputes() DisputeRepository
	Transactions() TransactionRepository
	Audit() AuditRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	TransactionByID(ctx context.Context, id uuid.UUID) (*TransactionSnapshot, error)
	MemberStoreIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	DisputeByID(ctx context.Context, id uuid.UUID) (*dispute.Dispute, error)
	IntentByID(ctx context.Context, id int64) (*intent.Intent, error)
	StalePending(ctx context.Context, createdBefore time.Time, limit int32) ([]StaleTransaction, error)
}

type LedgerRepository interface {
	AppendStatus(ctx context.Context, tx sqlc.DBTX, event *ledger.StatusEvent) (int64, error)
	AppendShipping(ctx context.Context, tx sqlc.DBTX, event *ledger.ShippingEvent) (int64, error)
}

type IntentRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, in *intent.Intent) (*intent.Intent, error)
	Claim(ctx context.Context, tx sqlc.DBTX, id int64, workerID string, now time.Time) (*intent.Intent, error)
	Finish(ctx context.Context, tx sqlc.DBTX, id int64, status intent.Status, now time.Time) (*intent.Intent, error)
}

type DisputeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, d *dispute.Dispute) error
	LinkToTransaction(ctx context.Context, tx sqlc.DBTX, disputeID, transactionID uuid.UUID, now time.Time) (bool, error)
	Resolve(ctx context.Context, tx sqlc.DBTX, d *dispute.Dispute) (bool, error)
	AddClaim(ctx context.Context, tx sqlc.DBTX, c *dispute.Claim) (int64, error)
}

type TransactionRepository interface {
	ConfirmReceived(ctx context.Context, tx sqlc.DBTX, transactionID uuid.UUID, now time.Time) (bool, error)
}

type AuditRepository interface {
	Write(ctx context.Context, tx sqlc.DBTX, entry AuditEntry) error
}
