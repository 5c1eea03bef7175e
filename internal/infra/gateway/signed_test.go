//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/infra/gateway"
	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "whsec_test"

func gatewayConfig(baseURL string) config.GatewayConfig {
	return config.GatewayConfig{
		Provider:        gateway.ProviderSigned,
		BaseURL:         baseURL,
		ClientID:        "client",
		ClientSecret:    "secret",
		WebhookSecret:   webhookSecret,
		Timeout:         2 * time.Second,
		MaxRetries:      2,
		SignatureMaxAge: 5 * time.Minute,
	}
}

func orderRequest() commands.GatewayOrderRequest {
	return commands.GatewayOrderRequest{
		OrderID:   uuid.New(),
		UserID:    uuid.New(),
		Amount:    499900,
		Currency:  "INR",
		ReturnURL: "https://app.example.com/orders/return",
	}
}

// =============================================================================
// CreateOrder Tests
// =============================================================================

func TestSignedGateway_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success: order registered with idempotency key and basic auth", func(t *testing.T) {
		req := orderRequest()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/orders", r.URL.Path)
			assert.Equal(t, req.OrderID.String(), r.Header.Get("Idempotency-Key"))
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "client", user)
			assert.Equal(t, "secret", pass)

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, req.OrderID.String(), body["referenceId"])
			assert.EqualValues(t, 499900, body["amount"])

			_, _ = w.Write([]byte(`{"orderId":"gw_123","paymentSessionId":"sess_456"}`))
		}))
		defer srv.Close()

		got, err := gateway.NewSignedGateway(gatewayConfig(srv.URL), srv.Client()).CreateOrder(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "gw_123", got.GatewayOrderID)
		assert.Equal(t, "sess_456", got.PaymentSessionID)
	})

	t.Run("success: transient 503 is retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"orderId":"gw_retry","paymentSessionId":"s"}`))
		}))
		defer srv.Close()

		got, err := gateway.NewSignedGateway(gatewayConfig(srv.URL), srv.Client()).CreateOrder(ctx, orderRequest())

		require.NoError(t, err)
		assert.Equal(t, "gw_retry", got.GatewayOrderID)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("error: 4xx is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"currency not enabled"}`))
		}))
		defer srv.Close()

		_, err := gateway.NewSignedGateway(gatewayConfig(srv.URL), srv.Client()).CreateOrder(ctx, orderRequest())

		assert.True(t, errs.Is(err, commands.ErrGatewayUnavailable))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("error: gateway answers without an order id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		_, err := gateway.NewSignedGateway(gatewayConfig(srv.URL), srv.Client()).CreateOrder(ctx, orderRequest())

		assert.True(t, errs.Is(err, commands.ErrGatewayUnavailable))
	})
}

// =============================================================================
// VerifyNotification Tests
// =============================================================================

func TestSignedGateway_VerifyNotification(t *testing.T) {
	ctx := context.Background()
	g := gateway.NewSignedGateway(gatewayConfig("http://unused"), nil)
	body := []byte(`{"orderId":"gw_123","status":"PAID"}`)
	now := strconv.FormatInt(time.Now().Unix(), 10)
	signed := func(ts string, b []byte) commands.RawNotification {
		return commands.RawNotification{
			Body:      b,
			Timestamp: ts,
			Signature: gateway.SignatureHeaderValue([]byte(webhookSecret), ts, b),
		}
	}

	t.Run("success: valid signature", func(t *testing.T) {
		n, err := g.VerifyNotification(ctx, signed(now, body))

		require.NoError(t, err)
		assert.Equal(t, "gw_123", n.GatewayOrderID)
		assert.Equal(t, order.OutcomePaid, n.Outcome)
		assert.JSONEq(t, string(body), string(n.Payload))
	})

	stale := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)
	testCases := []struct {
		name string
		raw  commands.RawNotification
	}{
		{name: "tampered body", raw: func() commands.RawNotification {
			r := signed(now, body)
			r.Body = []byte(`{"orderId":"gw_999","status":"PAID"}`)
			return r
		}()},
		{name: "signed with another key", raw: commands.RawNotification{
			Body: body, Timestamp: now,
			Signature: gateway.SignatureHeaderValue([]byte("other"), now, body),
		}},
		{name: "timestamp outside tolerance", raw: signed(stale, body)},
		{name: "missing timestamp", raw: signed("", body)},
		{name: "signature not base64", raw: commands.RawNotification{Body: body, Timestamp: now, Signature: "%%%"}},
		{name: "unknown status", raw: signed(now, []byte(`{"orderId":"gw_123","status":"AUTHORIZED"}`))},
		{name: "missing order id", raw: signed(now, []byte(`{"status":"PAID"}`))},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			_, err := g.VerifyNotification(ctx, tc.raw)

			assert.True(t, errs.Is(err, commands.ErrUntrustedNotification), "got %v", err)
		})
	}

	t.Run("error: no webhook secret configured", func(t *testing.T) {
		cfg := gatewayConfig("http://unused")
		cfg.WebhookSecret = ""

		_, err := gateway.NewSignedGateway(cfg, nil).VerifyNotification(ctx, signed(now, body))

		assert.True(t, errs.Is(err, commands.ErrUntrustedNotification))
	})
}

func TestNew(t *testing.T) {
	t.Run("default provider is the signed gateway", func(t *testing.T) {
		cfg := gatewayConfig("http://unused")
		cfg.Provider = ""

		g, err := gateway.New(cfg)

		require.NoError(t, err)
		assert.IsType(t, &gateway.SignedGateway{}, g)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := gatewayConfig("http://unused")
		cfg.Provider = "paypal"

		_, err := gateway.New(cfg)

		assert.Error(t, err)
	})
}
