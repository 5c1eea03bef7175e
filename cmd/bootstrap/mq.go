package bootstrap

import (
	"context"

	"entitlement-engine/internal/infra/mq"
	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (mq.Publisher, error) {
	pub, err := mq.New(cfg.MQ)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}
