//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sanctumos/clawedroad/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	route, method, status string
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveHTTP(route, method, status string, seconds float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{route: route, method: method, status: status})
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &recordingObserver{}
	r := gin.New()
	r.Use(middleware.Metrics(obs))
	r.GET("/api/transactions/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/api/transactions/a", "/api/transactions/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, obs.seen, 3)
	assert.Equal(t, observation{"/api/transactions/:id", http.MethodGet, "204"}, obs.seen[0])
	assert.Equal(t, obs.seen[0], obs.seen[1])
	assert.Equal(t, observation{"unmatched", http.MethodGet, "404"}, obs.seen[2])
}
