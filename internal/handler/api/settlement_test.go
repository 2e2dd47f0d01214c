//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/domain/user"
	"github.com/sanctumos/clawedroad/internal/handler/api"
	resdto "github.com/sanctumos/clawedroad/internal/handler/dto/response"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"
	"github.com/sanctumos/clawedroad/tests/common/builder"
	"github.com/sanctumos/clawedroad/tests/common/httptest"
	commandsmock "github.com/sanctumos/clawedroad/tests/mock/commands"
	queriesmock "github.com/sanctumos/clawedroad/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettlementHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettlementCommands
	mockQueries  *queriesmock.MockSettlementQueries
	userID       uuid.UUID
	role         user.Role
}

func (s *SettlementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSettlementQueries(s.mockCtrl)
	h := api.NewSettlementHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.role = user.RoleSettlement
	auth := fakeAuth(&s.userID, &s.role)

	g := s.router.Group("/settlement/intents", auth)
	g.GET("", h.Pending)
	g.POST("/:id/claim", h.Claim)
	g.POST("/:id/complete", h.Complete)
	g.POST("/:id/fail", h.Fail)
	g.PATCH("/:id", h.Mark)
}

func (s *SettlementHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettlementHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettlementHandlerTestSuite))
}

func (s *SettlementHandlerTestSuite) TestPending() {
	s.Run("success: no filter", func() {
		view := queries.NewIntentView(builder.NewIntentBuilder().WithID(4).BuildDomain())
		s.mockQueries.EXPECT().PendingIntents(gomock.Any(), (*intent.Action)(nil)).Return([]*queries.IntentView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settlement/intents", nil, bearer)

		var body []resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(int64(4), body[0].ID)
	})

	s.Run("success: filtered by action", func() {
		s.mockQueries.EXPECT().PendingIntents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, action *intent.Action) ([]*queries.IntentView, error) {
				s.Require().NotNil(action)
				s.Equal(intent.ActionCancel, *action)
				return nil, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settlement/intents?action=CANCEL", nil, bearer)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on unknown action", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settlement/intents?action=BURN", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid action")
	})
}

func (s *SettlementHandlerTestSuite) TestClaim() {
	url := "/settlement/intents/5/claim"

	s.Run("success: returns the claimed intent", func() {
		s.mockCommands.EXPECT().ClaimIntent(gomock.Any(), int64(5), "worker-a").
			Return(builder.NewIntentBuilder().WithID(5).ClaimedByWorker("worker-a").BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"worker_id": "worker-a"}, bearer)

		var body resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("in_progress", body.Status)
		s.Require().NotNil(body.ClaimedBy)
		s.Equal("worker-a", *body.ClaimedBy)
		s.NotNil(body.ClaimedAt)
	})

	s.Run("error: 409 when already claimed", func() {
		s.mockCommands.EXPECT().ClaimIntent(gomock.Any(), int64(5), "worker-b").Return(nil, errs.ErrIntentNotClaimable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"worker_id": "worker-b"}, bearer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "INTENT_NOT_CLAIMABLE")
	})

	s.Run("error: 400 without worker id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	for _, raw := range []string{"abc", "0", "-3"} {
		s.Run("error: 400 on id "+raw, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/settlement/intents/"+raw+"/claim",
				map[string]any{"worker_id": "worker-a"}, bearer)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		})
	}
}

func (s *SettlementHandlerTestSuite) TestComplete() {
	url := "/settlement/intents/5/complete"
	done := builder.NewIntentBuilder().WithID(5).WithStatus(intent.StatusCompleted).BuildDomain()

	s.Run("success: empty body keeps defaults", func() {
		s.mockCommands.EXPECT().CompleteIntent(gomock.Any(), int64(5), commands.CompleteInput{}).Return(done, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, bearer)

		var body resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Status)
	})

	amountCases := []struct {
		name string
		raw  any
		want string
	}{
		{name: "number", raw: json.Number("0.75"), want: "0.75"},
		{name: "string keeps every digit", raw: "123456789012.000000000000000001", want: "123456789012.000000000000000001"},
		{name: "number keeps every digit", raw: json.Number("1.123456789123456789"), want: "1.123456789123456789"},
	}
	for _, tc := range amountCases {
		s.Run("success: amount forwarded as "+tc.name, func() {
			var got commands.CompleteInput
			s.mockCommands.EXPECT().CompleteIntent(gomock.Any(), int64(5), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, in commands.CompleteInput) (*intent.Intent, error) {
					got = in
					return done, nil
				})

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				map[string]any{"amount": tc.raw, "comment": "tx 0xabc"}, bearer)
			s.Equal(http.StatusOK, rec.Code)
			s.Require().NotNil(got.Amount)
			s.Equal(tc.want, got.Amount.String())
			s.Equal("tx 0xabc", got.Comment)
		})
	}

	s.Run("error: 404 for unknown intent", func() {
		s.mockCommands.EXPECT().CompleteIntent(gomock.Any(), int64(5), gomock.Any()).Return(nil, errs.ErrIntentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Intent not found")
	})
}

func (s *SettlementHandlerTestSuite) TestFail() {
	s.Run("success: reason and flag forwarded", func() {
		s.mockCommands.EXPECT().FailIntent(gomock.Any(), int64(5), commands.FailInput{Reason: "rpc down", AppendFailed: true}).
			Return(builder.NewIntentBuilder().WithID(5).WithStatus(intent.StatusFailed).BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/settlement/intents/5/fail",
			map[string]any{"reason": "rpc down", "append_failed": true}, bearer)

		var body resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("failed", body.Status)
	})
}

func (s *SettlementHandlerTestSuite) TestMark() {
	s.Run("error: 400 on non-terminal status", func() {
		s.mockCommands.EXPECT().MarkIntentStatus(gomock.Any(), int64(5), "pending").
			Return(nil, errs.Mark(intent.ErrNotTerminal, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/settlement/intents/5",
			map[string]any{"status": "pending"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
