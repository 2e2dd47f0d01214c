//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/readstore"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/tests/common/builder"
	readstoremock "github.com/sanctumos/clawedroad/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIntentReadStore_ListPending(t *testing.T) {
	ctx := context.Background()
	release := intent.ActionRelease

	testCases := []struct {
		name         string
		action       *intent.Action
		expectFilter pgtype.Text
	}{
		{name: "success: all actions", action: nil, expectFilter: pgtype.Text{}},
		{name: "success: filtered by action", action: &release, expectFilter: pgtype.Text{String: "RELEASE", Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockIntentViewQueries(ctrl)
			store := readstore.NewIntentReadStore(mockQueries, &mockDBTX{})

			first := builder.NewIntentBuilder().WithID(1).BuildRow()
			second := builder.NewIntentBuilder().WithID(2).AsPartialRefund(10).BuildRow()
			mockQueries.EXPECT().ListPendingIntents(ctx, gomock.Any(), sqlc.ListPendingIntentsParams{
				Action: tc.expectFilter,
				Limit:  20,
			}).Return([]sqlc.TransactionIntent{first, second}, nil)

			intents, err := store.ListPending(ctx, tc.action, 20)
			require.NoError(t, err)
			require.Len(t, intents, 2)
			assert.Equal(t, int64(1), intents[0].ID())
			assert.Equal(t, int64(2), intents[1].ID())
			require.NotNil(t, intents[1].Params().RefundPercent)
			assert.Equal(t, 10.0, *intents[1].Params().RefundPercent)
		})
	}
}

func TestIntentReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("error: intent not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockIntentViewQueries(ctrl)
		store := readstore.NewIntentReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetIntent(ctx, gomock.Any(), int64(5)).Return(sqlc.TransactionIntent{}, pgx.ErrNoRows)

		in, err := store.FindByID(ctx, 5)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, in)
	})

	t.Run("error: corrupt params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockIntentViewQueries(ctrl)
		store := readstore.NewIntentReadStore(mockQueries, &mockDBTX{})

		row := builder.NewIntentBuilder().WithID(5).BuildRow()
		row.Params = []byte("{not json")
		mockQueries.EXPECT().GetIntent(ctx, gomock.Any(), int64(5)).Return(row, nil)

		in, err := store.FindByID(ctx, 5)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, in)
	})
}
