package bootstrap

import (
	"context"
	"log/slog"

	"github.com/sanctumos/clawedroad/internal/infra/db"
	"github.com/sanctumos/clawedroad/internal/pkg/config"
	"github.com/sanctumos/clawedroad/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool, exports its gauges and closes it when the app stops.
func NewDB(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	m.WatchPool(func() metrics.PoolSnapshot {
		st := pool.Stat()
		return metrics.PoolSnapshot{
			Total:    st.TotalConns(),
			Idle:     st.IdleConns(),
			Acquired: st.AcquiredConns(),
			Max:      st.MaxConns(),
		}
	})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("database pool ready",
				"host", cfg.DB.Host,
				"database", cfg.DB.DBName,
				"max_conns", pool.Config().MaxConns)
			return nil
		},
		OnStop: func(_ context.Context) error {
			st := pool.Stat()
			slog.Info("closing database pool",
				"acquire_count", st.AcquireCount(),
				"canceled_acquires", st.CanceledAcquireCount())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
