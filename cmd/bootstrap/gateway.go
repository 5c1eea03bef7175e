package bootstrap

import (
	"entitlement-engine/internal/infra/gateway"
	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) (commands.PaymentGateway, error) {
	return gateway.New(cfg.Gateway)
}
