package components

import (
	"github.com/sanctumos/clawedroad/internal/handler"
	"github.com/sanctumos/clawedroad/internal/handler/api"
	"github.com/sanctumos/clawedroad/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTransactionHandler,
		api.NewDisputeHandler,
		api.NewSettlementHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(t *api.TransactionHandler, d *api.DisputeHandler, s *api.SettlementHandler) handler.Handlers {
	return handler.Handlers{Transactions: t, Disputes: d, Settlement: s}
}
