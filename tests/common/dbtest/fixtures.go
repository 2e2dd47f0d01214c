//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	var userID uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (username, role) VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET role = EXCLUDED.role
		 RETURNING uuid`,
		username, role).Scan(&userID)
	require.NoError(t, err)
	return userID
}

// CreateTestStore creates a store and makes every given user a member.
func CreateTestStore(t *testing.T, db DBLike, name string, members ...uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var storeID uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO stores (storename) VALUES ($1)
		 ON CONFLICT (storename) DO UPDATE SET storename = EXCLUDED.storename
		 RETURNING uuid`,
		name).Scan(&storeID)
	require.NoError(t, err)

	for _, m := range members {
		_, err := db.Exec(ctx,
			"INSERT INTO store_users (store_uuid, user_uuid) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			storeID, m)
		require.NoError(t, err)
	}
	return storeID
}

type TransactionFixture struct {
	BuyerID  uuid.UUID
	StoreID  uuid.UUID
	Amount   decimal.Decimal
	Currency string
	// PendingAt is the time of the initial PENDING event.
	PendingAt time.Time
}

// CreateTestTransaction inserts the header, the EVM payment method and the
// initial PENDING event.
func CreateTestTransaction(t *testing.T, db DBLike, f TransactionFixture) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	if f.Currency == "" {
		f.Currency = "ETH"
	}
	if f.PendingAt.IsZero() {
		f.PendingAt = time.Now().Add(-time.Hour)
	}

	var txID uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO transactions (description, store_uuid, buyer_uuid) VALUES ($1, $2, $3) RETURNING uuid`,
		"e2e order", f.StoreID, f.BuyerID).Scan(&txID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO evm_transactions (uuid, escrow_address, amount, chain_id, currency) VALUES ($1, $2, $3, 1, $4)`,
		txID, "0x00000000000000000000000000000000000000e5", pgconv.DecimalToNumeric(f.Amount), f.Currency)
	require.NoError(t, err)

	AppendTestStatus(t, db, txID, "PENDING", "0", f.PendingAt)
	return txID
}

// AppendTestStatus takes the amount as a decimal literal.
func AppendTestStatus(t *testing.T, db DBLike, txID uuid.UUID, status, amount string, at time.Time) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		`INSERT INTO transaction_statuses (transaction_uuid, time, amount, status, comment) VALUES ($1, $2, $3, $4, $5)`,
		txID, at, pgconv.DecimalToNumeric(decimal.RequireFromString(amount)), status, "fixture")
	require.NoError(t, err)
}

func AppendTestShipping(t *testing.T, db DBLike, txID uuid.UUID, status string, at time.Time) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		`INSERT INTO shipping_statuses (transaction_uuid, time, status, comment) VALUES ($1, $2, $3, $4)`,
		txID, at, status, "fixture")
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()
	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// ResetDB empties every application table and restarts identities.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var tables string
	err := db.QueryRow(ctx, `
		SELECT coalesce(string_agg(format('%I.%I', schemaname, tablename), ', '), '')
		FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'atlas_schema_revisions'`).Scan(&tables)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	if tables == "" {
		return nil
	}
	_, err = db.Exec(ctx, "TRUNCATE "+tables+" RESTART IDENTITY CASCADE")
	return err
}
