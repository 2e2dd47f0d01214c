//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"
	"github.com/sanctumos/clawedroad/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementQueries_PendingIntents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	release := intent.ActionRelease

	tests := []struct {
		name   string
		action *intent.Action
	}{
		{name: "all actions", action: nil},
		{name: "filtered by action", action: &release},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stores := newReadStores(t)
			first := builder.NewIntentBuilder().WithID(1).BuildDomain()
			second := builder.NewIntentBuilder().WithID(2).AsPartialRefund(30).BuildDomain()
			stores.intents.EXPECT().ListPending(ctx, tt.action, int32(50)).Return([]*intent.Intent{first, second}, nil)

			got, err := queries.NewSettlementQueries(stores.intents, ledgerCfg).PendingIntents(ctx, tt.action)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, int64(1), got[0].ID)
			assert.Equal(t, "pending", got[0].Status)
			assert.Nil(t, got[0].RefundPercent)
			require.NotNil(t, got[1].RefundPercent)
			assert.Equal(t, 30.0, *got[1].RefundPercent)
		})
	}
}

func TestSettlementQueries_GetIntent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		stores := newReadStores(t)
		stores.intents.EXPECT().FindByID(ctx, int64(7)).
			Return(builder.NewIntentBuilder().WithID(7).ClaimedByWorker("worker-a").BuildDomain(), nil)

		got, err := queries.NewSettlementQueries(stores.intents, ledgerCfg).GetIntent(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "in_progress", got.Status)
		require.NotNil(t, got.ClaimedBy)
		assert.Equal(t, "worker-a", *got.ClaimedBy)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		stores := newReadStores(t)
		stores.intents.EXPECT().FindByID(ctx, int64(7)).
			Return(nil, infra.WrapRepoErr("intent not found", nil, infra.KindNotFound))

		_, err := queries.NewSettlementQueries(stores.intents, ledgerCfg).GetIntent(ctx, 7)
		assert.True(t, errs.Is(err, errs.ErrIntentNotFound))
	})
}
