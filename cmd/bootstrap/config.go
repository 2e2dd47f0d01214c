package bootstrap

import (
	"github.com/sanctumos/clawedroad/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the sections use cases depend on. Tests that provide
// their own config.Config reuse it.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.LedgerConfig { return cfg.Ledger },
	func(cfg config.Config) config.SettlementConfig { return cfg.Settlement },
)
