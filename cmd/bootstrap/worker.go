package bootstrap

import (
	"context"
	"log/slog"

	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		StartWorkers,
	),
)

func StartWorkers(
	lc fx.Lifecycle,
	cfg config.Config,
	logger *slog.Logger,
	orders commands.OrderCommands,
	ledger commands.LedgerCommands,
	bookings commands.BookingCommands,
	relay commands.OutboxRelay,
) {
	if !cfg.Jobs.Enabled {
		logger.Info("background jobs disabled")
		return
	}

	scheduler := worker.NewScheduler(logger, worker.Jobs(cfg.Jobs, orders, ledger, bookings, relay)...)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
