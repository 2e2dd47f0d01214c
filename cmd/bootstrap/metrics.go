package bootstrap

import (
	"github.com/sanctumos/clawedroad/internal/pkg/metrics"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		fx.Annotate(
			func(m *metrics.Metrics) *metrics.Metrics { return m },
			fx.As(new(commands.Recorder)),
		),
	),
)
