package bootstrap

import (
	"log/slog"

	"entitlement-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records which drivers were picked; secrets are never logged.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("gateway", cfg.Gateway.Provider),
		slog.String("mq_driver", cfg.MQ.Driver),
		slog.String("handoff_mode", cfg.Handoff.Mode),
		slog.String("booking_timezone", cfg.Booking.TimeZone),
		slog.Bool("jobs_enabled", cfg.Jobs.Enabled),
		slog.Bool("tracing_enabled", cfg.Tracing.Enabled),
	)
}
