package gateway

import (
	"fmt"

	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/usecase/commands"
)

const (
	ProviderSigned = "signed"
	ProviderOmise  = "omise"
)

// New picks the driver named by cfg.Provider.
func New(cfg config.GatewayConfig) (commands.PaymentGateway, error) {
	switch cfg.Provider {
	case "", ProviderSigned:
		return NewSignedGateway(cfg, nil), nil
	case ProviderOmise:
		return NewOmiseGateway(cfg)
	default:
		return nil, fmt.Errorf("unknown payment gateway provider %q", cfg.Provider)
	}
}
