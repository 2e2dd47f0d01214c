//go:build unit

package intent_test

import (
	"math"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewRefundPercent(t *testing.T) {
	cases := []struct {
		name  string
		input float64
		ok    bool
	}{
		{name: "zero", input: 0},
		{name: "negative", input: -5},
		{name: "just above zero", input: 0.01, ok: true},
		{name: "half", input: 50, ok: true},
		{name: "full", input: 100, ok: true},
		{name: "above full", input: 100.0001},
		{name: "NaN", input: math.NaN()},
		{name: "infinity", input: math.Inf(1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pct, err := intent.NewRefundPercent(c.input)
			if !c.ok {
				require.ErrorIs(t, err, intent.ErrInvalidRefundPercent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.input, pct.Value())
		})
	}
}

func TestNewIntent(t *testing.T) {
	txID := uuid.New()
	actor := uuid.New()

	t.Run("release starts pending", func(t *testing.T) {
		in, err := intent.NewRelease(txID, &actor, now)
		require.NoError(t, err)
		assert.Equal(t, intent.ActionRelease, in.Action())
		assert.Equal(t, intent.StatusPending, in.Status())
		assert.Equal(t, now, in.RequestedAt())
		assert.Nil(t, in.Params().RefundPercent)
		assert.Nil(t, in.ClaimedBy())
	})

	t.Run("partial refund carries percent", func(t *testing.T) {
		pct, err := intent.NewRefundPercent(50)
		require.NoError(t, err)

		in, err := intent.NewPartialRefund(txID, pct, nil, now)
		require.NoError(t, err)
		require.NotNil(t, in.Params().RefundPercent)
		assert.Equal(t, 50.0, *in.Params().RefundPercent)

		raw, err := in.Params().Marshal()
		require.NoError(t, err)
		assert.JSONEq(t, `{"refund_percent":50}`, string(raw))
	})

	t.Run("zero value percent rejected", func(t *testing.T) {
		_, err := intent.NewPartialRefund(txID, intent.RefundPercent{}, nil, now)
		assert.ErrorIs(t, err, intent.ErrInvalidRefundPercent)
	})

	t.Run("missing transaction", func(t *testing.T) {
		_, err := intent.NewCancel(uuid.Nil, nil, now)
		assert.ErrorIs(t, err, intent.ErrMissingTransaction)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to intent.Status
		ok       bool
	}{
		{intent.StatusPending, intent.StatusInProgress, true},
		{intent.StatusPending, intent.StatusCompleted, true},
		{intent.StatusPending, intent.StatusFailed, true},
		{intent.StatusInProgress, intent.StatusCompleted, true},
		{intent.StatusInProgress, intent.StatusFailed, true},
		{intent.StatusInProgress, intent.StatusPending, false},
		{intent.StatusCompleted, intent.StatusFailed, false},
		{intent.StatusFailed, intent.StatusPending, false},
		{intent.StatusCompleted, intent.StatusCompleted, false},
	}
	for _, c := range cases {
		t.Run(c.from.String()+"->"+c.to.String(), func(t *testing.T) {
			assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to))
		})
	}
}

func TestNewTerminalStatus(t *testing.T) {
	_, err := intent.NewTerminalStatus("completed")
	assert.NoError(t, err)
	_, err = intent.NewTerminalStatus("in_progress")
	assert.ErrorIs(t, err, intent.ErrNotTerminal)
	_, err = intent.NewTerminalStatus("done")
	assert.ErrorIs(t, err, intent.ErrInvalidStatus)
}

func TestSettledStatus(t *testing.T) {
	assert.Equal(t, ledger.StatusReleased, intent.ActionRelease.SettledStatus())
	assert.Equal(t, ledger.StatusCancelled, intent.ActionCancel.SettledStatus())
	assert.Equal(t, ledger.StatusReleased, intent.ActionPartialRefund.SettledStatus())
}

func TestUnmarshalParams(t *testing.T) {
	p, err := intent.UnmarshalParams([]byte(`{"refund_percent": 25}`))
	require.NoError(t, err)
	require.NotNil(t, p.RefundPercent)
	assert.Equal(t, 25.0, *p.RefundPercent)

	p, err = intent.UnmarshalParams(nil)
	require.NoError(t, err)
	assert.Nil(t, p.RefundPercent)

	_, err = intent.UnmarshalParams([]byte(`{`))
	assert.ErrorIs(t, err, intent.ErrInvalidParams)
}
