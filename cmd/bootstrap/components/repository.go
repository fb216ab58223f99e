package components

import (
	"stayops/internal/infra/db"
	repo_impl "stayops/internal/infra/repository"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		db.NewTxManager,
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReader)),
		),
		fx.Annotate(
			repo_impl.NewUnitRepository,
			fx.As(new(commands.UnitRepository)),
			fx.As(new(queries.UnitReader)),
		),
		fx.Annotate(
			repo_impl.NewBusinessRepository,
			fx.As(new(commands.BusinessRepository)),
			fx.As(new(queries.BusinessReader)),
		),
		fx.Annotate(
			repo_impl.NewPromotionRepository,
			fx.As(new(commands.PromotionRepository)),
			fx.As(new(queries.PromotionReader)),
		),
		fx.Annotate(
			repo_impl.NewPricingRuleRepository,
			fx.As(new(commands.PricingRuleRepository)),
			fx.As(new(queries.PricingRuleReader)),
		),
		fx.Annotate(
			repo_impl.NewTransactionRepository,
			fx.As(new(commands.TransactionRepository)),
			fx.As(new(queries.TransactionReader)),
		),
		fx.Annotate(
			repo_impl.NewAuditRepository,
			fx.As(new(commands.AuditRepository)),
			fx.As(new(queries.AuditReader)),
		),
		fx.Annotate(
			repo_impl.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
