//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/infra/repository"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	repositorymock "github.com/sanctumos/clawedroad/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDisputeRepository_LinkToTransaction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		affected     int64
		dbErr        error
		expectLinked bool
		expectErr    bool
	}{
		{name: "success: transaction had no dispute", affected: 1, expectLinked: true},
		{name: "success: transaction already linked", affected: 0, expectLinked: false},
		{name: "error: database failure", dbErr: errors.New("deadlock"), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDisputeWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDisputeRepository(mockQueries)

			disputeID, txID := uuid.New(), uuid.New()
			mockQueries.EXPECT().LinkDispute(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.LinkDisputeParams) (int64, error) {
					assert.Equal(t, txID, arg.UUID)
					assert.Equal(t, disputeID[:], arg.DisputeUUID.Bytes[:])
					return tc.affected, tc.dbErr
				})

			linked, err := repo.LinkToTransaction(ctx, mockDB, disputeID, txID, now)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectLinked, linked)
		})
	}
}

func TestDisputeRepository_Resolve(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)

	newResolved := func(t *testing.T) *dispute.Dispute {
		d, err := dispute.NewDispute(uuid.New(), now.Add(-time.Hour))
		require.NoError(t, err)
		require.NoError(t, d.Resolve(uuid.New(), now))
		return d
	}

	t.Run("success: open dispute resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDisputeWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDisputeRepository(mockQueries)
		d := newResolved(t)

		mockQueries.EXPECT().ResolveDispute(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ResolveDisputeParams) (int64, error) {
				assert.Equal(t, d.ID(), arg.UUID)
				assert.True(t, arg.ResolverUserUUID.Valid)
				return 1, nil
			})

		ok, err := repo.Resolve(ctx, mockDB, d)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("success: concurrent resolve reports false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDisputeWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDisputeRepository(mockQueries)

		mockQueries.EXPECT().ResolveDispute(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		ok, err := repo.Resolve(ctx, mockDB, newResolved(t))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDisputeRepository_AddClaim(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockDisputeWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewDisputeRepository(mockQueries)

	body, err := dispute.NewClaimBody("Damaged", "Box was crushed")
	require.NoError(t, err)
	userID := uuid.New()
	claim := dispute.NewClaim(uuid.New(), body, &userID, time.Now())

	mockQueries.EXPECT().InsertDisputeClaim(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertDisputeClaimParams) (int64, error) {
			assert.Equal(t, "Damaged\n\nBox was crushed", arg.Claim)
			return 9, nil
		})

	id, err := repo.AddClaim(ctx, mockDB, claim)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}
