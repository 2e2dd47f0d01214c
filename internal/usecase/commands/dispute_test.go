//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"
	"github.com/sanctumos/clawedroad/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DisputeCommandsTestSuite struct {
	suite.Suite
	f  *uowFixture
	uc commands.DisputeCommands
}

func (s *DisputeCommandsTestSuite) SetupTest() {
	s.f = newUoWFixture(s.T())
	s.uc = commands.NewDisputeUseCase(s.f.uow, s.f.clock, s.f.recorder)
}

func TestDisputeCommandsSuite(t *testing.T) {
	suite.Run(t, new(DisputeCommandsTestSuite))
}

var claim = commands.ClaimInput{Reason: "Not as described", Message: "Wrong colour"}

func (s *DisputeCommandsTestSuite) TestOpenDispute() {
	ctx := context.Background()

	s.Run("success: dispute linked, payment frozen and claim stored", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder().WithAmount("123456789012.000000000000000001")
		buyer := builder.Buyer(b)
		s.f.expectWithin()
		s.f.expectTransaction(b)

		var created *dispute.Dispute
		gomock.InOrder(
			s.f.disputes.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, d *dispute.Dispute) error {
					created = d
					assert.Equal(s.T(), b.ID, d.TransactionID())
					return nil
				}),
			s.f.disputes.EXPECT().LinkToTransaction(ctx, gomock.Any(), gomock.Any(), b.ID, fixedNow).Return(true, nil),
			s.f.ledger.EXPECT().AppendStatus(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, ev *ledger.StatusEvent) (int64, error) {
					assert.Equal(s.T(), ledger.StatusFrozen, ev.Status())
					assert.Equal(s.T(), "123456789012.000000000000000001", ev.Amount().String(), "frozen row keeps the exact amount")
					return 3, nil
				}),
			s.f.disputes.EXPECT().AddClaim(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c *dispute.Claim) (int64, error) {
					assert.Equal(s.T(), created.ID(), c.DisputeID())
					assert.Equal(s.T(), "Not as described\n\nWrong colour", c.Body().String())
					return 1, nil
				}),
		)

		d, err := s.uc.OpenDispute(ctx, b.ID, buyer, claim)
		s.Require().NoError(err)
		s.Equal(dispute.StatusOpen, d.Status())
	})

	s.Run("error: losing the link race leaves no claim and no freeze", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder()
		s.f.expectWithin()
		s.f.expectTransaction(b)

		s.f.disputes.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		s.f.disputes.EXPECT().LinkToTransaction(ctx, gomock.Any(), gomock.Any(), b.ID, fixedNow).Return(false, nil)

		_, err := s.uc.OpenDispute(ctx, b.ID, builder.Buyer(b), claim)
		s.True(errs.Is(err, errs.ErrDisputeAlreadyExists))
	})

	s.Run("error: a disputed payment cannot be disputed again", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder().AsFrozen()
		s.f.expectWithin()
		s.f.expectTransaction(b)

		_, err := s.uc.OpenDispute(ctx, b.ID, builder.Buyer(b), claim)
		s.True(errs.Is(err, errs.ErrActionNotAllowed))
	})

	s.Run("error: storage failure is reported as create failure", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder()
		s.f.expectWithin()
		s.f.expectTransaction(b)
		s.f.disputes.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(errs.New("connection reset"))

		_, err := s.uc.OpenDispute(ctx, b.ID, builder.Buyer(b), claim)
		s.True(errs.Is(err, errs.ErrDisputeCreateFailed))
	})

	s.Run("error: empty claim", func() {
		s.SetupTest()
		_, err := s.uc.OpenDispute(ctx, uuid.New(), builder.Staff(), commands.ClaimInput{})
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("error: reason without a message", func() {
		s.SetupTest()
		_, err := s.uc.OpenDispute(ctx, uuid.New(), builder.Staff(), commands.ClaimInput{Reason: "Not as described"})
		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.True(errs.Is(err, dispute.ErrEmptyClaim))
	})
}

func (s *DisputeCommandsTestSuite) TestAddClaim() {
	ctx := context.Background()

	s.Run("success: vendor answers", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder().AsFrozen()
		s.f.expectWithin()
		s.f.expectTransaction(b, b.StoreID)
		s.f.reads.EXPECT().DisputeByID(ctx, *b.DisputeID).Return(b.BuildDispute(), nil)
		s.f.disputes.EXPECT().AddClaim(ctx, gomock.Any(), gomock.Any()).Return(int64(4), nil)

		id, err := s.uc.AddClaim(ctx, *b.DisputeID, builder.Vendor(), commands.ClaimInput{Message: "Shipped on time"})
		s.Require().NoError(err)
		s.Equal(int64(4), id)
	})

	s.Run("error: resolved dispute", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder().AsFrozen().WithResolvedDispute()
		s.f.expectWithin()
		s.f.reads.EXPECT().DisputeByID(ctx, *b.DisputeID).Return(b.BuildDispute(), nil)

		_, err := s.uc.AddClaim(ctx, *b.DisputeID, builder.Buyer(b), claim)
		s.True(errs.Is(err, errs.ErrDisputeResolved))
	})

	s.Run("error: unknown dispute", func() {
		s.SetupTest()
		id := uuid.New()
		s.f.expectWithin()
		s.f.reads.EXPECT().DisputeByID(ctx, id).Return(nil, notFound("dispute not found"))

		_, err := s.uc.AddClaim(ctx, id, builder.Staff(), claim)
		s.True(errs.Is(err, errs.ErrDisputeNotFound))
	})
}

func (s *DisputeCommandsTestSuite) TestResolve() {
	ctx := context.Background()

	s.Run("success: staff resolves and an audit entry is written", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder().AsFrozen()
		staff := builder.Staff()
		s.f.expectWithin()
		s.f.reads.EXPECT().DisputeByID(ctx, *b.DisputeID).Return(b.BuildDispute(), nil)
		s.f.disputes.EXPECT().Resolve(ctx, gomock.Any(), gomock.Any()).Return(true, nil)
		s.f.audit.EXPECT().Write(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, entry shared.AuditEntry) error {
				assert.Equal(s.T(), shared.AuditDisputeResolve, entry.ActionType)
				assert.Equal(s.T(), b.DisputeID.String(), entry.TargetID)
				assert.Equal(s.T(), staff.UserID, *entry.ActorID)
				return nil
			})

		d, err := s.uc.Resolve(ctx, *b.DisputeID, staff)
		s.Require().NoError(err)
		s.Equal(dispute.StatusResolved, d.Status())
		s.Equal(staff.UserID, *d.ResolverID())
	})

	s.Run("error: second resolve", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder().AsFrozen().WithResolvedDispute()
		s.f.expectWithin()
		s.f.reads.EXPECT().DisputeByID(ctx, *b.DisputeID).Return(b.BuildDispute(), nil)

		_, err := s.uc.Resolve(ctx, *b.DisputeID, builder.Staff())
		s.True(errs.Is(err, errs.ErrDisputeResolved))
	})

	s.Run("error: only staff", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder().AsFrozen()

		_, err := s.uc.Resolve(ctx, *b.DisputeID, builder.Buyer(b))
		s.True(errs.Is(err, errs.ErrStaffOnly))
	})
}

func (s *DisputeCommandsTestSuite) TestPartialRefund() {
	ctx := context.Background()

	s.Run("error: percent validated before storage access", func() {
		s.SetupTest()
		_, err := s.uc.PartialRefund(ctx, uuid.New(), builder.Staff(), 101)
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("success: intent enqueued while the dispute is open", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder().AsFrozen()
		s.f.expectWithin()
		s.f.expectTransaction(b)
		s.f.reads.EXPECT().DisputeByID(ctx, *b.DisputeID).Return(b.BuildDispute(), nil)
		enqueued := builder.NewIntentBuilder().WithID(12).WithTransaction(b.ID).AsPartialRefund(50).BuildDomain()
		s.f.intents.EXPECT().Enqueue(ctx, gomock.Any(), gomock.Any()).Return(enqueued, nil)
		s.f.audit.EXPECT().Write(ctx, gomock.Any(), gomock.Any()).Return(nil)

		in, err := s.uc.PartialRefund(ctx, *b.DisputeID, builder.Staff(), 50)
		s.Require().NoError(err)
		s.Equal(int64(12), in.ID())
	})

	s.Run("error: refund before the payment is frozen", func() {
		s.SetupTest()
		b := builder.NewTransactionBuilder().WithOpenDispute()
		s.f.expectWithin()
		s.f.expectTransaction(b)
		s.f.reads.EXPECT().DisputeByID(ctx, *b.DisputeID).Return(b.BuildDispute(), nil)

		_, err := s.uc.PartialRefund(ctx, *b.DisputeID, builder.Staff(), 50)
		s.True(errs.Is(err, errs.ErrActionNotAllowed))
	})
}
