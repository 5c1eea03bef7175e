//go:build unit

package config_test

import (
	"testing"

	"entitlement-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, config.NewTestConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *config.Config)
		ok     bool
	}{
		{name: "success: code mode with a secret hash", ok: true, mutate: func(c *config.Config) {
			c.Handoff.Mode = "code"
			c.Handoff.ExchangeSecretHash = "$2a$10$abcdefghijklmnopqrstuv"
		}},
		{name: "success: omise without a webhook secret", ok: true, mutate: func(c *config.Config) {
			c.Gateway.Provider = "omise"
			c.Gateway.WebhookSecret = ""
		}},
		{name: "error: zero access token duration", mutate: func(c *config.Config) { c.JWT.AccessTokenDuration = 0 }},
		{name: "error: relative second app url", mutate: func(c *config.Config) { c.Handoff.SecondAppBaseURL = "/papers" }},
		{name: "error: unknown handoff mode", mutate: func(c *config.Config) { c.Handoff.Mode = "cookie" }},
		{name: "error: code mode without a secret hash", mutate: func(c *config.Config) { c.Handoff.Mode = "code" }},
		{name: "error: code mode without a ttl", mutate: func(c *config.Config) {
			c.Handoff.Mode = "code"
			c.Handoff.ExchangeSecretHash = "$2a$10$abcdefghijklmnopqrstuv"
			c.Handoff.CodeTTL = 0
		}},
		{name: "error: negative lead days", mutate: func(c *config.Config) { c.Booking.LeadDays = -1 }},
		{name: "error: signed gateway without a webhook secret", mutate: func(c *config.Config) { c.Gateway.WebhookSecret = "" }},
		{name: "error: default provider without a webhook secret", mutate: func(c *config.Config) {
			c.Gateway.Provider = ""
			c.Gateway.WebhookSecret = ""
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()

			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
