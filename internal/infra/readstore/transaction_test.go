//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/readstore"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"
	"github.com/sanctumos/clawedroad/tests/common/builder"
	readstoremock "github.com/sanctumos/clawedroad/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// FindHeader Tests
// =============================================================================

func TestTransactionReadStore_FindHeader(t *testing.T) {
	ctx := context.Background()
	txID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockTransactionViewQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: header found",
			setupMock: func(mock *readstoremock.MockTransactionViewQueries) {
				mock.EXPECT().GetTransactionHeader(ctx, gomock.Any(), txID).Return(sqlc.GetTransactionHeaderRow{
					UUID:      txID,
					Type:      "evm",
					StoreUUID: uuid.New(),
					BuyerUUID: uuid.New(),
					CreatedAt: pgconv.TimeToPgtype(time.Now()),
				}, nil)
			},
		},
		{
			name: "error: transaction not found",
			setupMock: func(mock *readstoremock.MockTransactionViewQueries) {
				mock.EXPECT().GetTransactionHeader(ctx, gomock.Any(), txID).Return(sqlc.GetTransactionHeaderRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockTransactionViewQueries) {
				mock.EXPECT().GetTransactionHeader(ctx, gomock.Any(), txID).Return(sqlc.GetTransactionHeaderRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockTransactionViewQueries(ctrl)
			store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			header, err := store.FindHeader(ctx, txID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, header)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, txID, header.ID)
			assert.Nil(t, header.DisputeID)
			assert.Nil(t, header.BuyerConfirmedAt)
		})
	}
}

// =============================================================================
// Event history Tests
// =============================================================================

func TestTransactionReadStore_ListStatusEvents(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockTransactionViewQueries(ctrl)
	store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})

	txID := uuid.New()
	at := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	zero := pgtype.Numeric{Int: big.NewInt(0), Valid: true}
	paid := pgtype.Numeric{Int: big.NewInt(0).SetUint64(1123456789123456789), Exp: -18, Valid: true}

	mockQueries.EXPECT().ListTransactionStatuses(ctx, gomock.Any(), txID).Return([]sqlc.TransactionStatus{
		{ID: 1, TransactionUUID: txID, Time: pgconv.TimeToPgtype(at), Amount: zero, Status: "PENDING"},
		{ID: 2, TransactionUUID: txID, Time: pgconv.TimeToPgtype(at.Add(time.Hour)), Amount: paid, Status: "COMPLETED", Comment: "paid"},
	}, nil)

	events, err := store.ListStatusEvents(ctx, txID)
	require.NoError(t, err)

	type flat struct {
		ID     int64
		Status ledger.PaymentStatus
		Amount string
		Time   time.Time
	}
	got := make([]flat, len(events))
	for i, e := range events {
		got[i] = flat{ID: e.ID(), Status: e.Status(), Amount: e.Amount().String(), Time: e.Time()}
	}
	want := []flat{
		{ID: 1, Status: ledger.StatusPending, Amount: "0", Time: at},
		{ID: 2, Status: ledger.StatusCompleted, Amount: "1.123456789123456789", Time: at.Add(time.Hour)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

// =============================================================================
// Listing Tests
// =============================================================================

func TestTransactionReadStore_ListCurrentForStores(t *testing.T) {
	ctx := context.Background()

	t.Run("success: no stores skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTransactionViewQueries(ctrl)
		store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})

		views, err := store.ListCurrentForStores(ctx, nil, 50)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("success: rows converted to views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTransactionViewQueries(ctrl)
		store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})

		b := builder.NewTransactionBuilder().WithAmount("0.75").WithOpenDispute()
		storeIDs := []uuid.UUID{b.StoreID}
		mockQueries.EXPECT().ListCurrentForStores(ctx, gomock.Any(), sqlc.ListCurrentForStoresParams{StoreIds: storeIDs, Limit: 50}).
			Return([]sqlc.VCurrentTransactionStatus{b.BuildViewRow()}, nil)

		views, err := store.ListCurrentForStores(ctx, storeIDs, 50)
		require.NoError(t, err)
		require.Len(t, views, 1)

		v := views[0]
		assert.Equal(t, b.ID, v.ID)
		assert.Equal(t, "0.75", v.Amount.String())
		assert.Equal(t, "COMPLETED", v.Status)
		require.NotNil(t, v.DisputeID)
		assert.Equal(t, *b.DisputeID, *v.DisputeID)
		require.NotNil(t, v.DisputeStatus)
		assert.Equal(t, "open", *v.DisputeStatus)
		assert.True(t, v.CreatedAt.Equal(b.CreatedAt))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTransactionViewQueries(ctrl)
		store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListCurrentForStores(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		views, err := store.ListCurrentForStores(ctx, []uuid.UUID{uuid.New()}, 50)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, views)
	})
}

func TestTransactionReadStore_ListStalePending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockTransactionViewQueries(ctrl)
	store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})

	cutoff := time.Date(2025, 1, 9, 9, 0, 0, 0, time.UTC)
	staleID := uuid.New()
	zero := pgconv.DecimalToNumeric(decimal.Zero)

	mockQueries.EXPECT().ListStalePending(ctx, gomock.Any(), sqlc.ListStalePendingParams{
		CreatedAt: pgconv.TimeToPgtype(cutoff),
		Limit:     100,
	}).Return([]sqlc.ListStalePendingRow{{UUID: staleID, CurrentAmount: zero}}, nil)

	items, err := store.ListStalePending(ctx, cutoff, 100)
	require.NoError(t, err)
	if diff := cmp.Diff([]*queries.StalePendingItem{{ID: staleID, Amount: decimal.Zero}}, items); diff != "" {
		t.Errorf("stale items mismatch (-want +got):\n%s", diff)
	}
}

func TestTransactionReadStore_NaNAmountRejected(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockTransactionViewQueries(ctrl)
	store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})

	row := builder.NewTransactionBuilder().BuildViewRow()
	row.CurrentAmount = pgtype.Numeric{NaN: true, Valid: true}
	mockQueries.EXPECT().ListCurrentAll(ctx, gomock.Any(), int32(10)).Return([]sqlc.VCurrentTransactionStatus{row}, nil)

	views, err := store.ListCurrentAll(ctx, 10)
	require.Error(t, err)
	assert.Nil(t, views)
	assert.True(t, errors.Is(err, pgconv.ErrNonFiniteNumeric))
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
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
	return nil
}
