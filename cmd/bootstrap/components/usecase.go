package components

import (
	"github.com/sanctumos/clawedroad/internal/pkg/clock"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystem,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTransactionUseCase,
		commands.NewDisputeUseCase,
		commands.NewSettlementUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTransactionQueries,
		queries.NewDisputeQueries,
		queries.NewSettlementQueries,
	),
)
