//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"
	"github.com/sanctumos/clawedroad/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDisputeQueries_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("buyer reads dispute with claims", func(t *testing.T) {
		t.Parallel()
		stores := newReadStores(t)
		b := builder.NewTransactionBuilder().AsFrozen()
		stores.disputes.EXPECT().FindByID(gomock.Any(), *b.DisputeID).Return(b.BuildDispute(), nil).Times(2)
		stores.transactions.EXPECT().FindHeader(gomock.Any(), b.ID).Return(b.BuildHeader(), nil)
		stores.transactions.EXPECT().ListStatusEvents(gomock.Any(), b.ID).Return(b.BuildStatusEvents(), nil)
		stores.transactions.EXPECT().ListShippingEvents(gomock.Any(), b.ID).Return(nil, nil)
		stores.transactions.EXPECT().MemberStoreIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		stores.disputes.EXPECT().ListClaims(ctx, *b.DisputeID).Return([]*queries.ClaimView{
			{ID: 1, Claim: "Not received\n\nStill waiting", Status: "open", CreatedAt: time.Now()},
		}, nil)

		got, err := queries.NewDisputeQueries(stores.disputes, stores.transactions, ledgerCfg).
			Get(ctx, *b.DisputeID, builder.Buyer(b))
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.TransactionID)
		assert.Equal(t, "open", got.Status)
		assert.Len(t, got.Claims, 1)
	})

	t.Run("stranger is denied before claims are read", func(t *testing.T) {
		t.Parallel()
		stores := newReadStores(t)
		b := builder.NewTransactionBuilder().AsFrozen()
		stores.disputes.EXPECT().FindByID(gomock.Any(), *b.DisputeID).Return(b.BuildDispute(), nil).Times(2)
		stores.transactions.EXPECT().FindHeader(gomock.Any(), b.ID).Return(b.BuildHeader(), nil)
		stores.transactions.EXPECT().ListStatusEvents(gomock.Any(), b.ID).Return(b.BuildStatusEvents(), nil)
		stores.transactions.EXPECT().ListShippingEvents(gomock.Any(), b.ID).Return(nil, nil)
		stores.transactions.EXPECT().MemberStoreIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := queries.NewDisputeQueries(stores.disputes, stores.transactions, ledgerCfg).
			Get(ctx, *b.DisputeID, builder.Stranger())
		assert.True(t, errs.Is(err, errs.ErrTransactionAccess))
	})

	t.Run("unknown dispute", func(t *testing.T) {
		t.Parallel()
		stores := newReadStores(t)
		id := uuid.New()
		stores.disputes.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("dispute not found", nil, infra.KindNotFound))

		_, err := queries.NewDisputeQueries(stores.disputes, stores.transactions, ledgerCfg).
			Get(ctx, id, builder.Staff())
		assert.True(t, errs.Is(err, errs.ErrDisputeNotFound))
	})
}

func TestDisputeQueries_ListOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("staff", func(t *testing.T) {
		t.Parallel()
		stores := newReadStores(t)
		items := []*queries.OpenDisputeItem{{ID: uuid.New(), TransactionID: uuid.New()}}
		stores.disputes.EXPECT().ListOpen(ctx, int32(50)).Return(items, nil)

		got, err := queries.NewDisputeQueries(stores.disputes, stores.transactions, ledgerCfg).ListOpen(ctx, builder.Staff())
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("non-staff", func(t *testing.T) {
		t.Parallel()
		stores := newReadStores(t)

		_, err := queries.NewDisputeQueries(stores.disputes, stores.transactions, ledgerCfg).ListOpen(ctx, builder.Vendor())
		assert.True(t, errs.Is(err, errs.ErrStaffOnly))
	})
}
