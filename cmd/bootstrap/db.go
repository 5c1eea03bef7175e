package bootstrap

import (
	"context"
	"log/slog"

	"entitlement-engine/internal/infra/db"
	"entitlement-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		slog.String("host", cfg.DB.Host),
		slog.String("database", cfg.DB.DBName),
		slog.Int("max_conns", int(pool.Config().MaxConns)),
	)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			// in-flight relay or sweep transactions show up as acquired connections
			stat := pool.Stat()
			logger.Info("closing database pool",
				slog.Int("acquired", int(stat.AcquiredConns())),
				slog.Int("idle", int(stat.IdleConns())),
			)
			cleanup()
			return nil
		},
	})

	return pool, nil
}
