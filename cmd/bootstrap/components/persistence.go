package components

import (
	"github.com/sanctumos/clawedroad/internal/infra/readstore"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/infra/uow"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TransactionViewQueries)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		// Dispute
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DisputeViewQueries)),
		),
		fx.Annotate(
			readstore.NewDisputeReadStore,
			fx.As(new(queries.DisputeReadStore)),
		),
		// Intent
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.IntentViewQueries)),
		),
		fx.Annotate(
			readstore.NewIntentReadStore,
			fx.As(new(queries.IntentReadStore)),
		),
	),
)

// Write-side repositories are built per transaction inside the UoW.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
