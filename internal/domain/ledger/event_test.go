//go:build unit

package ledger_test

import (
	"strings"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusEvent(t *testing.T) {
	valid := func() ledger.StatusEventParams {
		return ledger.StatusEventParams{
			TransactionID: txID,
			Status:        ledger.StatusFrozen,
			Amount:        decimal.RequireFromString("0.25"),
			Comment:       "  Dispute opened ",
			Time:          t0,
		}
	}

	cases := []struct {
		name   string
		mutate func(*ledger.StatusEventParams)
		errIs  error
	}{
		{name: "valid", mutate: func(*ledger.StatusEventParams) {}},
		{name: "zero amount", mutate: func(p *ledger.StatusEventParams) { p.Amount = decimal.Zero }},
		{name: "missing transaction", mutate: func(p *ledger.StatusEventParams) { p.TransactionID = uuid.Nil }, errIs: ledger.ErrMissingTransaction},
		{name: "unknown status", mutate: func(p *ledger.StatusEventParams) { p.Status = "REFUNDED" }, errIs: ledger.ErrInvalidPaymentStatus},
		{name: "eighteen fractional digits", mutate: func(p *ledger.StatusEventParams) { p.Amount = decimal.RequireFromString("1.123456789123456789") }},
		{name: "negative amount", mutate: func(p *ledger.StatusEventParams) { p.Amount = decimal.NewFromInt(-1) }, errIs: ledger.ErrNegativeAmount},
		{name: "zero time", mutate: func(p *ledger.StatusEventParams) { p.Time = time.Time{} }, errIs: ledger.ErrMissingTime},
		{name: "comment too long", mutate: func(p *ledger.StatusEventParams) { p.Comment = strings.Repeat("a", ledger.MaxCommentLength+1) }, errIs: ledger.ErrCommentTooLong},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := valid()
			c.mutate(&p)
			event, err := ledger.NewStatusEvent(p)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, event)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(0), event.ID())
			assert.Equal(t, "Dispute opened", event.Comment())
			assert.True(t, p.Amount.Equal(event.Amount()), "amount %s", event.Amount())
		})
	}
}

func TestNewShippingEvent(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		event, err := ledger.NewShippingEvent(ledger.ShippingEventParams{
			TransactionID: txID,
			Status:        ledger.ShippingDispatched,
			Comment:       "Marked shipped",
			Time:          t0,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.ShippingDispatched, event.Status())
	})

	t.Run("unknown label", func(t *testing.T) {
		_, err := ledger.NewShippingEvent(ledger.ShippingEventParams{
			TransactionID: txID,
			Status:        "LOST",
			Time:          t0,
		})
		assert.ErrorIs(t, err, ledger.ErrInvalidShippingStatus)
	})
}

func TestNewPaymentStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "COMPLETED", "RELEASED", "FAILED", "CANCELLED", "FROZEN"} {
		status, err := ledger.NewPaymentStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}
	_, err := ledger.NewPaymentStatus("pending")
	assert.ErrorIs(t, err, ledger.ErrInvalidPaymentStatus)
}
