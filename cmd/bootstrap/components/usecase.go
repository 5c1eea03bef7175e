package components

import (
	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/pkg/clock"
	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/usecase"
	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (booking.Policy, error) {
		return booking.NewPolicy(cfg.Booking.TimeZone, cfg.Booking.LeadDays)
	},
	func(cfg config.Config) commands.OrderSettings {
		return commands.OrderSettings{
			PendingTimeout: cfg.Jobs.OrderPendingTimeout,
			ReturnURL:      cfg.Gateway.ReturnURL,
		}
	},
	func(cfg config.Config) commands.HandoffSettings {
		return commands.HandoffSettings{
			SecondAppBaseURL:   cfg.Handoff.SecondAppBaseURL,
			Mode:               cfg.Handoff.Mode,
			CodeTTL:            cfg.Handoff.CodeTTL,
			ExchangeSecretHash: cfg.Handoff.ExchangeSecretHash,
		}
	},
	func(cfg config.Config) commands.RelaySettings {
		return commands.RelaySettings{
			BatchSize:   cfg.Jobs.OutboxBatchSize,
			MaxAttempts: cfg.Jobs.OutboxMaxAttempts,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderUseCase,
		commands.NewLedgerUseCase,
		commands.NewBookingUseCase,
		commands.NewHandoffUseCase,
		commands.NewOutboxRelay,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewEntitlementQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
