package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/usecase/commands"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const (
	SignatureHeader = "X-Webhook-Signature"
	TimestampHeader = "X-Webhook-Timestamp"

	createOrderPath = "/v1/orders"
)

type createOrderBody struct {
	ReferenceID string `json:"referenceId"`
	CustomerID  string `json:"customerId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	ReturnURL   string `json:"returnUrl"`
}

type createOrderResponse struct {
	OrderID          string `json:"orderId"`
	PaymentSessionID string `json:"paymentSessionId"`
}

type notificationBody struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// SignedGateway talks to a REST gateway that signs its callbacks with
// base64(HMAC-SHA256(secret, timestamp + body)).
type SignedGateway struct {
	client     *http.Client
	baseURL    string
	clientID   string
	secret     string
	webhookKey []byte
	maxRetries uint64
	maxAge     time.Duration
	now        func() time.Time
}

func NewSignedGateway(cfg config.GatewayConfig, client *http.Client) *SignedGateway {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	maxAge := cfg.SignatureMaxAge
	if maxAge <= 0 {
		maxAge = 5 * time.Minute
	}
	return &SignedGateway{
		client:     client,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		clientID:   cfg.ClientID,
		secret:     cfg.ClientSecret,
		webhookKey: []byte(cfg.WebhookSecret),
		maxRetries: cfg.MaxRetries,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// CreateOrder retries network errors and 5xx responses with exponential
// backoff. 4xx responses are not retried.
func (g *SignedGateway) CreateOrder(ctx context.Context, req commands.GatewayOrderRequest) (commands.GatewayOrder, error) {
	body, err := json.Marshal(createOrderBody{
		ReferenceID: req.OrderID.String(),
		CustomerID:  req.UserID.String(),
		Amount:      req.Amount,
		Currency:    req.Currency,
		ReturnURL:   req.ReturnURL,
	})
	if err != nil {
		return commands.GatewayOrder{}, err
	}

	var out createOrderResponse
	op := func() error {
		return g.postJSON(ctx, createOrderPath, req.OrderID, body, &out)
	}
	notify := func(err error, wait time.Duration) {
		slog.Warn("gateway call failed, retrying",
			"order_id", req.OrderID,
			"wait", wait,
			"error", err)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), g.maxRetries), ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return commands.GatewayOrder{}, errs.Mark(err, commands.ErrGatewayUnavailable)
	}
	if out.OrderID == "" {
		return commands.GatewayOrder{}, errs.Mark(errs.New("gateway returned no order id"), commands.ErrGatewayUnavailable)
	}
	return commands.GatewayOrder{GatewayOrderID: out.OrderID, PaymentSessionID: out.PaymentSessionID}, nil
}

func (g *SignedGateway) postJSON(ctx context.Context, path string, orderID uuid.UUID, body []byte, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// the gateway deduplicates retries on this key
	httpReq.Header.Set("Idempotency-Key", orderID.String())
	httpReq.SetBasicAuth(g.clientID, g.secret)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("gateway responded %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return backoff.Permanent(fmt.Errorf("gateway rejected request with %d: %s", resp.StatusCode, strings.TrimSpace(string(payload))))
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return backoff.Permanent(errs.Wrap(err, "failed to decode gateway response"))
	}
	return nil
}

// VerifyNotification checks the signature and the timestamp window before
// looking at the body.
func (g *SignedGateway) VerifyNotification(_ context.Context, raw commands.RawNotification) (commands.Notification, error) {
	if len(g.webhookKey) == 0 {
		return commands.Notification{}, errs.Mark(errs.New("webhook secret not configured"), commands.ErrUntrustedNotification)
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(raw.Timestamp), 10, 64)
	if err != nil {
		return commands.Notification{}, errs.Mark(errs.New("missing or malformed timestamp"), commands.ErrUntrustedNotification)
	}
	age := g.now().Sub(time.Unix(ts, 0))
	if age < 0 {
		age = -age
	}
	if age > g.maxAge {
		return commands.Notification{}, errs.Mark(errs.New("notification timestamp outside tolerance"), commands.ErrUntrustedNotification)
	}

	presented, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw.Signature))
	if err != nil || !hmac.Equal(presented, Sign(g.webhookKey, raw.Timestamp, raw.Body)) {
		return commands.Notification{}, errs.Mark(errs.New("signature mismatch"), commands.ErrUntrustedNotification)
	}

	var body notificationBody
	if err := json.Unmarshal(raw.Body, &body); err != nil {
		return commands.Notification{}, errs.Mark(errs.Wrap(err, "malformed notification body"), commands.ErrUntrustedNotification)
	}
	outcome := order.Outcome(strings.ToLower(body.Status))
	if body.OrderID == "" || !outcome.IsValid() {
		return commands.Notification{}, errs.Mark(errs.New("notification missing order id or status"), commands.ErrUntrustedNotification)
	}
	return commands.Notification{
		GatewayOrderID: body.OrderID,
		Outcome:        outcome,
		Payload:        json.RawMessage(raw.Body),
	}, nil
}

// Sign computes the raw HMAC over timestamp followed by body.
func Sign(key []byte, timestamp string, body []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return mac.Sum(nil)
}

// SignatureHeaderValue is what the gateway puts in SignatureHeader.
func SignatureHeaderValue(key []byte, timestamp string, body []byte) string {
	return base64.StdEncoding.EncodeToString(Sign(key, timestamp, body))
}
