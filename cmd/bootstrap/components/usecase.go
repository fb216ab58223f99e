package components

import (
	"stayops/internal/domain/booking"
	"stayops/internal/domain/entitlement"
	"stayops/internal/domain/pricing"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/config"
	"stayops/internal/usecase"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPriceCalculator,
	entitlement.NewDefaultResolver,
	booking.NewFactory,
)

func NewPriceCalculator(cfg config.Config) *pricing.Calculator {
	return pricing.NewCalculator(pricing.NewMoneyFromInt(cfg.Platform.DefaultServiceFee))
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewSettlementCommands,
		commands.NewUnitCommands,
		commands.NewCatalogCommands,
		commands.NewBusinessCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewQuoteQueries,
		queries.NewEntitlementQueries,
		queries.NewSettlementQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
