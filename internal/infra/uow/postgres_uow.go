package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/readstore"
	"github.com/sanctumos/clawedroad/internal/infra/repository"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return infra.IsRetryable(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	ledgerRepo      shared.LedgerRepository
	intentRepo      shared.IntentRepository
	disputeRepo     shared.DisputeRepository
	transactionRepo shared.TransactionRepository
	auditRepo       shared.AuditRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Ledger() shared.LedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewLedgerRepository(t.uow.q)
	}
	return t.ledgerRepo
}

func (t *pgTx) Intents() shared.IntentRepository {
	if t.intentRepo == nil {
		t.intentRepo = repository.NewIntentRepository(t.uow.q)
	}
	return t.intentRepo
}

func (t *pgTx) Disputes() shared.DisputeRepository {
	if t.disputeRepo == nil {
		t.disputeRepo = repository.NewDisputeRepository(t.uow.q)
	}
	return t.disputeRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.uow.q)
	}
	return t.transactionRepo
}

func (t *pgTx) Audit() shared.AuditRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository(t.uow.q)
	}
	return t.auditRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads runs its queries one after another: a pgx.Tx cannot serve
// concurrent queries.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	transactionStore *readstore.TransactionReadStore
	disputeStore     *readstore.DisputeReadStore
	intentStore      *readstore.IntentReadStore
}

func (r *commandReads) transactions() *readstore.TransactionReadStore {
	if r.transactionStore == nil {
		r.transactionStore = readstore.NewTransactionReadStore(r.uow.q, r.dbtx)
	}
	return r.transactionStore
}

func (r *commandReads) disputes() *readstore.DisputeReadStore {
	if r.disputeStore == nil {
		r.disputeStore = readstore.NewDisputeReadStore(r.uow.q, r.dbtx)
	}
	return r.disputeStore
}

func (r *commandReads) intents() *readstore.IntentReadStore {
	if r.intentStore == nil {
		r.intentStore = readstore.NewIntentReadStore(r.uow.q, r.dbtx)
	}
	return r.intentStore
}

func (r *commandReads) TransactionByID(ctx context.Context, id uuid.UUID) (*shared.TransactionSnapshot, error) {
	header, err := r.transactions().FindHeader(ctx, id)
	if err != nil {
		return nil, err
	}
	statuses, err := r.transactions().ListStatusEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	shipping, err := r.transactions().ListShippingEvents(ctx, id)
	if err != nil {
		return nil, err
	}

	projection, ok := ledger.Project(statuses, shipping)
	if !ok {
		return nil, infra.WrapRepoErr("transaction has no status events", nil, infra.KindNotFound)
	}

	var d *dispute.Dispute
	if header.DisputeID != nil {
		d, err = r.disputes().FindByID(ctx, *header.DisputeID)
		if err != nil {
			return nil, err
		}
	}

	snapshot := &shared.TransactionSnapshot{
		ID:               header.ID,
		BuyerID:          header.BuyerID,
		StoreID:          header.StoreID,
		BuyerConfirmedAt: header.BuyerConfirmedAt,
		Dispute:          d,
		Projection:       projection,
	}
	return snapshot, nil
}

func (r *commandReads) MemberStoreIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.transactions().MemberStoreIDs(ctx, userID)
}

func (r *commandReads) DisputeByID(ctx context.Context, id uuid.UUID) (*dispute.Dispute, error) {
	return r.disputes().FindByID(ctx, id)
}

func (r *commandReads) IntentByID(ctx context.Context, id int64) (*intent.Intent, error) {
	return r.intents().FindByID(ctx, id)
}

func (r *commandReads) StalePending(ctx context.Context, createdBefore time.Time, limit int32) ([]shared.StaleTransaction, error) {
	items, err := r.transactions().ListStalePending(ctx, createdBefore, limit)
	if err != nil {
		return nil, err
	}

	stale := make([]shared.StaleTransaction, 0, len(items))
	for _, it := range items {
		stale = append(stale, shared.StaleTransaction{ID: it.ID, Amount: it.Amount})
	}
	return stale, nil
}
