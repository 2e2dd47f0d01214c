//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/infra"
	"github.com/sanctumos/clawedroad/internal/pkg/clock"
	"github.com/sanctumos/clawedroad/internal/pkg/metrics"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"
	"github.com/sanctumos/clawedroad/tests/common/builder"
	sharedmock "github.com/sanctumos/clawedroad/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)

// uowFixture wires a mocked unit of work whose Tx hands out mocked
// repositories. Within is only expected once expectWithin is called, so a
// test that never calls it proves the use case did no I/O.
type uowFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	ledger   *sharedmock.MockLedgerRepository
	intents  *sharedmock.MockIntentRepository
	disputes *sharedmock.MockDisputeRepository
	txs      *sharedmock.MockTransactionRepository
	audit    *sharedmock.MockAuditRepository
	clock    *clock.Fixed
	recorder *metrics.Metrics
}

func newUoWFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &uowFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		ledger:   sharedmock.NewMockLedgerRepository(ctrl),
		intents:  sharedmock.NewMockIntentRepository(ctrl),
		disputes: sharedmock.NewMockDisputeRepository(ctrl),
		txs:      sharedmock.NewMockTransactionRepository(ctrl),
		audit:    sharedmock.NewMockAuditRepository(ctrl),
		clock:    clock.NewFixed(fixedNow),
		recorder: metrics.New(),
	}

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Ledger().Return(f.ledger).AnyTimes()
	f.tx.EXPECT().Intents().Return(f.intents).AnyTimes()
	f.tx.EXPECT().Disputes().Return(f.disputes).AnyTimes()
	f.tx.EXPECT().Transactions().Return(f.txs).AnyTimes()
	f.tx.EXPECT().Audit().Return(f.audit).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	return f
}

func (f *uowFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
}

// expectTransaction makes the snapshot of b visible inside the transaction
// and reports memberOf as the caller's store memberships.
func (f *uowFixture) expectTransaction(b *builder.TransactionBuilder, memberOf ...uuid.UUID) {
	f.reads.EXPECT().TransactionByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).AnyTimes()
	f.reads.EXPECT().MemberStoreIDs(gomock.Any(), gomock.Any()).Return(memberOf, nil).AnyTimes()
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}
