//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/repository"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
	repositorymock "github.com/sanctumos/clawedroad/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLedgerRepository_AppendStatus(t *testing.T) {
	ctx := context.Background()
	txID := uuid.New()
	userID := uuid.New()
	at := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	event, err := ledger.NewStatusEvent(ledger.StatusEventParams{
		TransactionID: txID,
		Status:        ledger.StatusFrozen,
		Amount:        decimal.RequireFromString("123456789012.000000000000000001"),
		Comment:       "Dispute opened",
		UserID:        &userID,
		Time:          at,
	})
	require.NoError(t, err)

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockLedgerWriteQueries, sqlc.DBTX)
		expectID   int64
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: event appended",
			setupMock: func(mock *repositorymock.MockLedgerWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertTransactionStatus(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertTransactionStatusParams) (int64, error) {
						assert.Equal(t, txID, arg.TransactionUUID)
						assert.Equal(t, "FROZEN", arg.Status)
						assert.Equal(t, "Dispute opened", arg.Comment)
						assert.Equal(t, pgconv.UUIDToPgtype(userID), arg.UserUUID)
						assert.False(t, arg.PaymentReceiptUUID.Valid)
						assert.Equal(t, int32(-18), arg.Amount.Exp)
						assert.Equal(t, "123456789012000000000000000001", arg.Amount.Int.String())
						amount, err := pgconv.DecimalFromNumeric(arg.Amount)
						require.NoError(t, err)
						assert.Equal(t, "123456789012.000000000000000001", amount.String())
						return 11, nil
					})
			},
			expectID: 11,
		},
		{
			name: "error: unknown transaction",
			setupMock: func(mock *repositorymock.MockLedgerWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().InsertTransactionStatus(ctx, tx, gomock.Any()).Return(int64(0), fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockLedgerWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertTransactionStatus(ctx, tx, gomock.Any()).Return(int64(0), errors.New("broken pipe"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockLedgerWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewLedgerRepository(mockQueries)
			tc.setupMock(mockQueries, mockDB)

			id, err := repo.AppendStatus(ctx, mockDB, event)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectID, id)
		})
	}
}

func TestLedgerRepository_AppendShipping(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockLedgerWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewLedgerRepository(mockQueries)

	txID := uuid.New()
	at := time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC)
	event, err := ledger.NewShippingEvent(ledger.ShippingEventParams{
		TransactionID: txID,
		Status:        ledger.ShippingDispatched,
		Comment:       "Marked shipped",
		Time:          at,
	})
	require.NoError(t, err)

	mockQueries.EXPECT().InsertShippingStatus(ctx, mockDB, sqlc.InsertShippingStatusParams{
		TransactionUUID: txID,
		Time:            pgTime(at),
		Status:          "DISPATCHED",
		Comment:         "Marked shipped",
	}).Return(int64(5), nil)

	id, err := repo.AppendShipping(ctx, mockDB, event)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func pgTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// mockDBTX satisfies sqlc.DBTX; every query goes through the sqlc mocks.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
