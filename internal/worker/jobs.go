package worker

import (
	"context"

	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/usecase/commands"
)

const (
	JobReconcileOrders    = "reconcile_orders"
	JobExpireEntitlements = "expire_entitlements"
	JobRelayOutbox        = "relay_outbox"
	JobPurgeIdempotency   = "purge_idempotency_keys"
)

// Jobs wires the periodic maintenance tasks to their use cases.
func Jobs(cfg config.JobsConfig, orders commands.OrderCommands, ledger commands.LedgerCommands, bookings commands.BookingCommands, relay commands.OutboxRelay) []Job {
	return []Job{
		{
			Name:     JobReconcileOrders,
			Interval: cfg.ReconcileInterval,
			Run: func(ctx context.Context) error {
				_, err := orders.ReconcileStaleOrders(ctx)
				return err
			},
		},
		{
			Name:     JobExpireEntitlements,
			Interval: cfg.ExpireInterval,
			Run: func(ctx context.Context) error {
				_, err := ledger.ExpireSweep(ctx)
				return err
			},
		},
		{
			Name:     JobRelayOutbox,
			Interval: cfg.OutboxInterval,
			Run: func(ctx context.Context) error {
				_, err := relay.RelayPending(ctx)
				return err
			},
		},
		{
			Name:     JobPurgeIdempotency,
			Interval: cfg.ExpireInterval,
			Run: func(ctx context.Context) error {
				_, err := bookings.PurgeExpiredIdempotencyKeys(ctx)
				return err
			},
		},
	}
}
