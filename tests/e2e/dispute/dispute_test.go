//go:build e2e

package dispute_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/handler/dto/response"
	"github.com/sanctumos/clawedroad/tests/common/dbtest"
	"github.com/sanctumos/clawedroad/tests/common/httptest"
	"github.com/sanctumos/clawedroad/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	openURL          = "/api/transactions/%s/disputes"
	transactionURL   = "/api/transactions/%s"
	disputeURL       = "/api/disputes/%s"
	claimsURL        = "/api/disputes/%s/claims"
	resolveURL       = "/api/disputes/%s/resolve"
	partialRefundURL = "/api/disputes/%s/partial-refund"
	staffQueueURL    = "/api/staff/disputes"
)

type DisputeSuite struct {
	e2e.SharedSuite
}

func TestDisputeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DisputeSuite))
}

func (s *DisputeSuite) open(t *testing.T, p e2e.Parties) response.DisputeResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(openURL, p.TxID),
		map[string]any{"reason": "Item not received", "message": "Nothing arrived after three weeks"}, p.BuyerToken)
	var got response.DisputeResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)
	require.NotEmpty(t, got.ID)
	return got
}

func (s *DisputeSuite) status(t *testing.T, p e2e.Parties) response.TransactionResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(transactionURL, p.TxID), nil, p.StaffToken)
	var got response.TransactionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
	return got
}

func (s *DisputeSuite) actionsFor(t *testing.T, p e2e.Parties, token string) []string {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(transactionURL, p.TxID), nil, token)
	var got response.TransactionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
	return got.AllowedActions
}

func (s *DisputeSuite) TestOpen() {
	s.Run("Normal case: buyer opens a dispute and the payment freezes", func() {
		t := s.T()
		p := s.SeedCompleted(t)

		got := s.open(t, p)
		assert.Equal(t, p.TxID.String(), got.TransactionID)
		assert.Equal(t, "open", got.Status)
		require.Len(t, got.Claims, 1)
		assert.Equal(t, "Item not received\n\nNothing arrived after three weeks", got.Claims[0].Claim)

		tx := s.status(t, p)
		assert.Equal(t, "FROZEN", tx.Status)
		assert.Equal(t, "1.5", tx.Amount)
		require.NotNil(t, tx.DisputeID)
		assert.Equal(t, got.ID, *tx.DisputeID)
	})

	s.Run("Error case: a second dispute is rejected without a new row", func() {
		t := s.T()
		p := s.SeedCompleted(t)
		s.open(t, p)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(openURL, p.TxID),
			map[string]any{"reason": "again", "message": "Still not here"}, p.VendorToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Action not allowed")
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "disputes", "transaction_uuid = $1", p.TxID))
	})

	s.Run("Error case: pending payments cannot be disputed", func() {
		t := s.T()
		p := s.SeedPending(t, time.Now().Add(-time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(openURL, p.TxID),
			map[string]any{"reason": "too early", "message": "Not paid yet"}, p.BuyerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Action not allowed")
		assert.Zero(t, dbtest.CountRows(t, s.DB, "disputes", ""))
	})

	s.Run("Error case: empty claim", func() {
		t := s.T()
		p := s.SeedCompleted(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(openURL, p.TxID),
			map[string]any{"reason": "  ", "message": ""}, p.BuyerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("Error case: a reason alone is not a claim", func() {
		t := s.T()
		p := s.SeedCompleted(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(openURL, p.TxID),
			map[string]any{"reason": "Item not received"}, p.BuyerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		assert.Equal(t, "COMPLETED", s.status(t, p).Status)
	})
}

func (s *DisputeSuite) TestClaims() {
	s.Run("Normal case: vendor answers the claim", func() {
		t := s.T()
		p := s.SeedCompleted(t)
		d := s.open(t, p)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(claimsURL, d.ID),
			map[string]any{"message": "Tracking shows it was delivered"}, p.VendorToken)
		var added response.ClaimAddedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &added)
		assert.Positive(t, added.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(disputeURL, d.ID), nil, p.BuyerToken)
		var got response.DisputeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got.Claims, 2)
		assert.Equal(t, "Tracking shows it was delivered", got.Claims[1].Claim)
	})

	s.Run("Error case: strangers cannot read or claim", func() {
		t := s.T()
		p := s.SeedCompleted(t)
		d := s.open(t, p)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(claimsURL, d.ID),
			map[string]any{"message": "me too"}, p.StrangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(disputeURL, d.ID), nil, p.StrangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied")
	})
}

func (s *DisputeSuite) TestResolve() {
	s.Run("Normal case: staff resolves and the payment stays frozen", func() {
		t := s.T()
		p := s.SeedCompleted(t)
		d := s.open(t, p)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(resolveURL, d.ID), nil, p.StaffToken)
		var got response.DisputeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "resolved", got.Status)
		assert.NotNil(t, got.ResolverID)

		tx := s.status(t, p)
		assert.Equal(t, "FROZEN", tx.Status)
		assert.ElementsMatch(t, []string{"release", "cancel", "partial_refund"}, tx.AllowedActions)
		assert.Equal(t, []string{"cancel"}, s.actionsFor(t, p, p.BuyerToken))
		assert.Equal(t, []string{"release"}, s.actionsFor(t, p, p.VendorToken))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "audit_log", "action_type = 'dispute_resolve' AND target_id = $1", d.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(claimsURL, d.ID),
			map[string]any{"message": "late"}, p.BuyerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Dispute is resolved")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(resolveURL, d.ID), nil, p.StaffToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Dispute is resolved")
	})

	s.Run("Error case: buyer cannot resolve", func() {
		t := s.T()
		p := s.SeedCompleted(t)
		d := s.open(t, p)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(resolveURL, d.ID), nil, p.BuyerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
		tx := s.status(t, p)
		require.NotNil(t, tx.DisputeStatus)
		assert.Equal(t, "open", *tx.DisputeStatus)
	})
}

func (s *DisputeSuite) TestPartialRefund() {
	s.Run("Normal case: staff enqueues a partial refund", func() {
		t := s.T()
		p := s.SeedCompleted(t)
		d := s.open(t, p)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(partialRefundURL, d.ID),
			map[string]any{"refund_percent": 40}, p.StaffToken)
		var got response.IntentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, &got)
		assert.Equal(t, "PARTIAL_REFUND", got.Action)
		assert.Equal(t, "pending", got.Status)
		require.NotNil(t, got.RefundPercent)
		assert.Equal(t, 40.0, *got.RefundPercent)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "audit_log", "action_type = 'dispute_partial_refund'"))
	})

	s.Run("Error case: percent above 100", func() {
		t := s.T()
		p := s.SeedCompleted(t)
		d := s.open(t, p)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(partialRefundURL, d.ID),
			map[string]any{"refund_percent": 150}, p.StaffToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		assert.Zero(t, dbtest.CountRows(t, s.DB, "transaction_intents", ""))
	})
}

func (s *DisputeSuite) TestStaffQueue() {
	s.Run("Normal case: only open disputes are listed", func() {
		t := s.T()
		p := s.SeedCompleted(t)
		d := s.open(t, p)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, staffQueueURL, nil, p.StaffToken)
		var got []response.OpenDisputeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		assert.Equal(t, d.ID, got[0].ID)
		assert.Equal(t, p.TxID.String(), got[0].TransactionID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(resolveURL, d.ID), nil, p.StaffToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, staffQueueURL, nil, p.StaffToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Empty(t, got)
	})

	s.Run("Error case: non-staff are refused", func() {
		t := s.T()
		p := s.SeedCompleted(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, staffQueueURL, nil, p.VendorToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
