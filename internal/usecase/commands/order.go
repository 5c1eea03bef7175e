package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/pkg/clock"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/pkg/obs"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderSettings struct {
	PendingTimeout time.Duration
	ReturnURL      string
}

type CreateOrderInput struct {
	PackageID uuid.UUID
	Amount    int64
	Currency  string
}

type CreateOrderResult struct {
	Order            *order.Order
	PaymentSessionID string
}

// CompletionResult reports what a notification did. Replays come back with
// Applied false and the order's current state.
type CompletionResult struct {
	OrderID       uuid.UUID
	State         order.State
	Applied       bool
	Flagged       bool
	EntitlementID *uuid.UUID
}

type RefundResult struct {
	OrderID       uuid.UUID
	State         order.State
	Applied       bool
	EntitlementID *uuid.UUID
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, in CreateOrderInput) (*CreateOrderResult, error)
	MarkPending(ctx context.Context, orderID uuid.UUID, ref, paymentSessionID string) (*order.Order, error)
	HandleNotification(ctx context.Context, raw RawNotification) (*CompletionResult, error)
	CompleteOrder(ctx context.Context, ref string, outcome order.Outcome, payload json.RawMessage) (*CompletionResult, error)
	RefundOrder(ctx context.Context, orderID uuid.UUID) (*RefundResult, error)
	ReconcileStaleOrders(ctx context.Context) (int, error)
}

type orderUseCaseImpl struct {
	uow      shared.UnitOfWork
	catalog  CatalogReader
	gateway  PaymentGateway
	clock    clock.Clock
	settings OrderSettings
}

func NewOrderUseCase(uow shared.UnitOfWork, catalog CatalogReader, gateway PaymentGateway, clk clock.Clock, settings OrderSettings) OrderCommands {
	return &orderUseCaseImpl{
		uow:      uow,
		catalog:  catalog,
		gateway:  gateway,
		clock:    clk,
		settings: settings,
	}
}

// CreateOrder prices the order from the catalog and registers it with the
// gateway. When the gateway is unreachable the order stays in created and the
// reconciler expires it later.
func (uc *orderUseCaseImpl) CreateOrder(ctx context.Context, userID uuid.UUID, in CreateOrderInput) (*CreateOrderResult, error) {
	var ord *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pkg, err := uc.catalog.PackageByID(ctx, tx.DB(), in.PackageID)
		if err != nil {
			return err
		}
		if !pkg.Active {
			return ErrPackageNotFound
		}
		ord, err = order.NewOrder(uuid.New(), userID, pkg, in.Amount, in.Currency, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.Orders().Create(ctx, tx.DB(), ord)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create order")
	}

	gw, err := uc.registerWithGateway(ctx, ord)
	if err != nil {
		slog.Warn("gateway order creation failed",
			"order_id", ord.ID(),
			"error", err)
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	ord, err = uc.MarkPending(ctx, ord.ID(), gw.GatewayOrderID, gw.PaymentSessionID)
	if err != nil {
		return nil, err
	}

	slog.Info("order created",
		"order_id", ord.ID(),
		"user_id", userID,
		"package_id", in.PackageID,
		"gateway_order_id", gw.GatewayOrderID)

	return &CreateOrderResult{Order: ord, PaymentSessionID: gw.PaymentSessionID}, nil
}

func (uc *orderUseCaseImpl) registerWithGateway(ctx context.Context, ord *order.Order) (gw GatewayOrder, err error) {
	ctx, span := obs.Start(ctx, "gateway.create_order")
	defer func() { obs.End(span, err) }()

	return uc.gateway.CreateOrder(ctx, GatewayOrderRequest{
		OrderID:   ord.ID(),
		UserID:    ord.UserID(),
		Amount:    ord.Amount(),
		Currency:  ord.Currency(),
		ReturnURL: uc.settings.ReturnURL,
	})
}

// MarkPending records the gateway reference and returns the order as stored.
func (uc *orderUseCaseImpl) MarkPending(ctx context.Context, orderID uuid.UUID, ref, paymentSessionID string) (*order.Order, error) {
	var ord *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ord, err = tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if isNotFound(err) {
				return ErrOrderNotFound
			}
			return err
		}
		prev := ord.State()
		changed, err := ord.MarkPending(ref, paymentSessionID, uc.clock.Now())
		if err != nil || !changed {
			return err
		}
		return tx.Orders().Save(ctx, tx.DB(), ord, prev)
	})
	if err != nil {
		return nil, err
	}
	return ord, nil
}

func (uc *orderUseCaseImpl) HandleNotification(ctx context.Context, raw RawNotification) (*CompletionResult, error) {
	n, err := uc.gateway.VerifyNotification(ctx, raw)
	if err != nil {
		slog.Warn("rejected payment notification", "error", err)
		return nil, errs.Mark(err, ErrUntrustedNotification)
	}

	if n.Outcome == order.OutcomeRefunded {
		res, err := uc.refund(ctx, func(ctx context.Context, tx shared.Tx) (*order.Order, error) {
			return tx.Orders().FindByGatewayRefForUpdate(ctx, tx.DB(), n.GatewayOrderID)
		}, &n)
		if err != nil {
			return nil, err
		}
		return &CompletionResult{
			OrderID:       res.OrderID,
			State:         res.State,
			Applied:       res.Applied,
			EntitlementID: res.EntitlementID,
		}, nil
	}

	return uc.CompleteOrder(ctx, n.GatewayOrderID, n.Outcome, n.Payload)
}

// CompleteOrder applies a verified gateway outcome. The order row lock
// serialises concurrent deliveries, so only one of them grants access.
func (uc *orderUseCaseImpl) CompleteOrder(ctx context.Context, ref string, outcome order.Outcome, payload json.RawMessage) (*CompletionResult, error) {
	if !outcome.IsValid() || outcome == order.OutcomeRefunded {
		return nil, order.ErrInvalidOutcome
	}

	var result *CompletionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		ord, err := tx.Orders().FindByGatewayRefForUpdate(ctx, tx.DB(), ref)
		if err != nil {
			if isNotFound(err) {
				return ErrOrderNotFound
			}
			return err
		}

		prev := ord.State()
		completion, err := ord.Complete(outcome, now)
		if err != nil {
			return err
		}
		if completion.Applied || completion.Flagged {
			if err := tx.Orders().Save(ctx, tx.DB(), ord, prev); err != nil {
				return err
			}
		}

		result = &CompletionResult{
			OrderID: ord.ID(),
			State:   ord.State(),
			Applied: completion.Applied,
			Flagged: completion.Flagged,
		}

		switch {
		case completion.PaidNow():
			pkg, err := uc.catalog.PackageByID(ctx, tx.DB(), ord.PackageID())
			if err != nil {
				return errs.Wrap(err, "failed to load package for paid order")
			}
			ent, _, err := materializeInTx(ctx, tx, ord, pkg, now)
			if err != nil {
				return err
			}
			id := ent.ID()
			result.EntitlementID = &id
		case ord.State() == order.StatePaid:
			ent, err := tx.Entitlements().FindByOrderID(ctx, tx.DB(), ord.ID())
			if err == nil {
				id := ent.ID()
				result.EntitlementID = &id
			} else if !isNotFound(err) {
				return err
			}
		}

		if completion.Applied {
			err = appendEvent(ctx, tx, shared.AggregateOrder, ord.ID(), shared.EventOrderCompleted, map[string]any{
				"orderId":       ord.ID(),
				"userId":        ord.UserID(),
				"packageId":     ord.PackageID(),
				"state":         ord.State(),
				"entitlementId": result.EntitlementID,
			}, now)
			if err != nil {
				return err
			}
		}
		if completion.Flagged {
			err = appendEvent(ctx, tx, shared.AggregateOrder, ord.ID(), shared.EventOrderFlagged, map[string]any{
				"orderId": ord.ID(),
				"state":   ord.State(),
				"reason":  ord.ReviewReason(),
			}, now)
			if err != nil {
				return err
			}
		}

		return tx.GatewayEvents().Record(ctx, tx.DB(), shared.GatewayEventRecord{
			GatewayOrderID: ref,
			Outcome:        string(outcome),
			Payload:        payload,
			Applied:        completion.Applied,
			Flagged:        completion.Flagged,
			ReceivedAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}

	if result.Applied || result.Flagged {
		slog.Info("order completed",
			"order_id", result.OrderID,
			"state", result.State,
			"flagged", result.Flagged)
	}
	return result, nil
}

func (uc *orderUseCaseImpl) RefundOrder(ctx context.Context, orderID uuid.UUID) (*RefundResult, error) {
	return uc.refund(ctx, func(ctx context.Context, tx shared.Tx) (*order.Order, error) {
		return tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
	}, nil)
}

// refund moves a paid order to refunded and revokes its entitlement in the
// same transaction. n is set when the refund came from a gateway callback.
func (uc *orderUseCaseImpl) refund(ctx context.Context, load func(context.Context, shared.Tx) (*order.Order, error), n *Notification) (*RefundResult, error) {
	var result *RefundResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		ord, err := load(ctx, tx)
		if err != nil {
			if isNotFound(err) {
				return ErrOrderNotFound
			}
			return err
		}

		prev := ord.State()
		changed, err := ord.Refund(now)
		if err != nil {
			return err
		}
		result = &RefundResult{OrderID: ord.ID(), State: ord.State(), Applied: changed}

		if changed {
			if err := tx.Orders().Save(ctx, tx.DB(), ord, prev); err != nil {
				return err
			}
		}

		ent, err := tx.Entitlements().FindByOrderID(ctx, tx.DB(), ord.ID())
		switch {
		case err == nil:
			id := ent.ID()
			result.EntitlementID = &id
			// an entitlement already cancelled stays cancelled
			if _, err := revokeInTx(ctx, tx, id, entitlement.RevokeRefunded, now); err != nil && !errs.Is(err, entitlement.ErrNotActive) {
				return err
			}
		case !isNotFound(err):
			return err
		}

		if changed {
			err = appendEvent(ctx, tx, shared.AggregateOrder, ord.ID(), shared.EventOrderRefunded, map[string]any{
				"orderId":       ord.ID(),
				"userId":        ord.UserID(),
				"entitlementId": result.EntitlementID,
			}, now)
			if err != nil {
				return err
			}
		}

		if n != nil {
			return tx.GatewayEvents().Record(ctx, tx.DB(), shared.GatewayEventRecord{
				GatewayOrderID: n.GatewayOrderID,
				Outcome:        string(n.Outcome),
				Payload:        n.Payload,
				Applied:        changed,
				ReceivedAt:     now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Applied {
		slog.Info("order refunded", "order_id", result.OrderID)
	}
	return result, nil
}

// ReconcileStaleOrders expires orders that never received an outcome.
func (uc *orderUseCaseImpl) ReconcileStaleOrders(ctx context.Context) (int, error) {
	var expired []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		var err error
		expired, err = tx.Orders().ExpireStale(ctx, tx.DB(), now, now.Add(-uc.settings.PendingTimeout))
		if err != nil {
			return err
		}
		for _, id := range expired {
			err = appendEvent(ctx, tx, shared.AggregateOrder, id, shared.EventOrderCompleted, map[string]any{
				"orderId": id,
				"state":   order.StateExpired,
			}, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(expired) > 0 {
		slog.Info("stale orders expired", "count", len(expired))
	}
	return len(expired), nil
}
