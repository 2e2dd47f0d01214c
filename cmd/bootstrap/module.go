package bootstrap

import (
	"github.com/sanctumos/clawedroad/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the HTTP API.
var Module = fx.Options(
	CoreModule,
	JWTModule,
	components.HandlerModule,
)

// CoreModule is everything below the transport layer; the sweeper runs on it
// alone.
var CoreModule = fx.Options(
	ConfigModule,
	DBModule,
	MetricsModule,
	components.PersistenceModule,
	components.UseCaseModule,
)
