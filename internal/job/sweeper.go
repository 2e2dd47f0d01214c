package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/sanctumos/clawedroad/internal/pkg/config"
)

const defaultSweepInterval = 5 * time.Minute

type PendingExpirer interface {
	ExpireStalePending(ctx context.Context) (int, error)
}

// Sweeper periodically fails transactions stuck in PENDING.
type Sweeper struct {
	expirer  PendingExpirer
	interval time.Duration
}

func NewSweeper(expirer PendingExpirer, cfg config.SettlementConfig) *Sweeper {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{expirer: expirer, interval: interval}
}

// Run sweeps once immediately and then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.SweepOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

func (s *Sweeper) SweepOnce(ctx context.Context) int {
	n, err := s.expirer.ExpireStalePending(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("pending sweep failed", "error", err.Error())
		}
		return 0
	}
	return n
}
