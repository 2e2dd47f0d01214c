package bootstrap

import (
	"log/slog"

	"github.com/sanctumos/clawedroad/internal/handler/middleware"
	"github.com/sanctumos/clawedroad/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
