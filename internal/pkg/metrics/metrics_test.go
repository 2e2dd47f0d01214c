//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sanctumos/clawedroad/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("counters are isolated per instance", func(t *testing.T) {
		a := metrics.New()
		b := metrics.New()

		a.LedgerAppended("status", "FROZEN")
		a.LedgerAppended("status", "FROZEN")
		b.Swept(3)

		n, err := testutil.GatherAndCount(a.Registry(), "escrow_ledger_appends_total")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = testutil.GatherAndCount(b.Registry(), "escrow_ledger_appends_total")
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		n, err = testutil.GatherAndCount(b.Registry(), "escrow_sweeper_expired_total")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("pool gauges sample on scrape", func(t *testing.T) {
		m := metrics.New()
		snap := metrics.PoolSnapshot{Total: 4, Idle: 3, Acquired: 1, Max: 20}
		m.WatchPool(func() metrics.PoolSnapshot { return snap })

		n, err := testutil.GatherAndCount(m.Registry(), "escrow_db_pool_connections_acquired")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		snap.Acquired = 7
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Contains(t, rec.Body.String(), "escrow_db_pool_connections_acquired 7")
		assert.Contains(t, rec.Body.String(), "escrow_db_pool_connections_max 20")
	})

	t.Run("handler exposes registry", func(t *testing.T) {
		m := metrics.New()
		m.IntentEnqueued("RELEASE")
		m.ObserveHTTP("/health", http.MethodGet, "200", 0.01)

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `escrow_intent_enqueued_total{action="RELEASE"} 1`)
		assert.Contains(t, rec.Body.String(), "escrow_http_requests_total")
	})
}
