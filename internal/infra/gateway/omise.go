package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/usecase/commands"

	"github.com/cenkalti/backoff/v4"
	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

const (
	omiseChargeComplete = "charge.complete"
	omiseRefundCreate   = "refund.create"
)

// OmiseGateway creates source-backed charges and authenticates callbacks by
// fetching the event back from the Omise API.
type OmiseGateway struct {
	client     *omise.Client
	sourceType string
	maxRetries uint64
}

func NewOmiseGateway(cfg config.GatewayConfig) (*OmiseGateway, error) {
	client, err := omise.NewClient(cfg.OmisePublicKey, cfg.OmiseSecretKey)
	if err != nil {
		return nil, err
	}
	client.SetDebug(false)
	sourceType := cfg.OmiseSourceType
	if sourceType == "" {
		sourceType = "promptpay"
	}
	return &OmiseGateway{client: client, sourceType: sourceType, maxRetries: cfg.MaxRetries}, nil
}

func (g *OmiseGateway) CreateOrder(ctx context.Context, req commands.GatewayOrderRequest) (commands.GatewayOrder, error) {
	currency := strings.ToLower(req.Currency)
	var (
		src omise.Source
		ch  omise.Charge
	)

	op := func() error {
		if src.ID == "" {
			err := g.client.Do(&src, &operations.CreateSource{
				Type:     g.sourceType,
				Amount:   req.Amount,
				Currency: currency,
			})
			if err != nil {
				return err
			}
		}
		return g.client.Do(&ch, &operations.CreateCharge{
			Amount:    req.Amount,
			Currency:  currency,
			Source:    src.ID,
			ReturnURI: req.ReturnURL,
			Metadata:  map[string]interface{}{"order_id": req.OrderID.String()},
		})
	}
	notify := func(err error, wait time.Duration) {
		slog.Warn("omise call failed, retrying", "order_id", req.OrderID, "wait", wait, "error", err)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), g.maxRetries), ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return commands.GatewayOrder{}, errs.Mark(err, commands.ErrGatewayUnavailable)
	}
	return commands.GatewayOrder{GatewayOrderID: ch.ID, PaymentSessionID: src.ID}, nil
}

type omiseEventRef struct {
	ID string `json:"id"`
}

// VerifyNotification trusts nothing in the body except the event id.
func (g *OmiseGateway) VerifyNotification(_ context.Context, raw commands.RawNotification) (commands.Notification, error) {
	var ref omiseEventRef
	if err := json.Unmarshal(raw.Body, &ref); err != nil || ref.ID == "" {
		return commands.Notification{}, errs.Mark(errs.New("notification has no event id"), commands.ErrUntrustedNotification)
	}

	ev := &omise.Event{}
	if err := g.client.Do(ev, &operations.RetrieveEvent{EventID: ref.ID}); err != nil {
		return commands.Notification{}, errs.Mark(errs.Wrap(err, "failed to retrieve omise event"), commands.ErrUntrustedNotification)
	}

	data, err := json.Marshal(ev.Data)
	if err != nil {
		return commands.Notification{}, errs.Mark(err, commands.ErrUntrustedNotification)
	}

	switch ev.Key {
	case omiseChargeComplete:
		var ch omise.Charge
		if err := json.Unmarshal(data, &ch); err != nil {
			return commands.Notification{}, errs.Mark(err, commands.ErrUntrustedNotification)
		}
		outcome, ok := outcomeFromChargeStatus(string(ch.Status))
		if !ok {
			return commands.Notification{}, errs.Mark(errs.Newf("charge status %q is not final", ch.Status), commands.ErrUntrustedNotification)
		}
		return commands.Notification{GatewayOrderID: ch.ID, Outcome: outcome, Payload: data}, nil
	case omiseRefundCreate:
		var rf omise.Refund
		if err := json.Unmarshal(data, &rf); err != nil {
			return commands.Notification{}, errs.Mark(err, commands.ErrUntrustedNotification)
		}
		return commands.Notification{GatewayOrderID: rf.Charge, Outcome: order.OutcomeRefunded, Payload: data}, nil
	default:
		return commands.Notification{}, errs.Mark(errs.Newf("unsupported omise event %q", ev.Key), commands.ErrUntrustedNotification)
	}
}

func outcomeFromChargeStatus(status string) (order.Outcome, bool) {
	switch status {
	case "successful":
		return order.OutcomePaid, true
	case "failed", "reversed":
		return order.OutcomeFailed, true
	case "expired":
		return order.OutcomeExpired, true
	default:
		return "", false
	}
}
