package commands

import (
	"context"
	"log/slog"
	"time"

	"entitlement-engine/internal/pkg/clock"
	"entitlement-engine/internal/usecase/shared"
)

const (
	relayBaseDelay = 2 * time.Second
	relayMaxDelay  = 5 * time.Minute
)

type RelaySettings struct {
	BatchSize   int32
	MaxAttempts int32
}

type OutboxRelay interface {
	// RelayPending publishes one batch of due events and reports how many went out.
	RelayPending(ctx context.Context) (int, error)
}

type outboxRelayImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	settings  RelaySettings
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, settings RelaySettings) OutboxRelay {
	if settings.BatchSize <= 0 {
		settings.BatchSize = 50
	}
	if settings.MaxAttempts <= 0 {
		settings.MaxAttempts = 10
	}
	return &outboxRelayImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		settings:  settings,
	}
}

// RelayPending holds the claimed rows locked while publishing, so concurrent
// relays skip them. Delivery is at least once.
func (r *outboxRelayImpl) RelayPending(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		now := r.clock.Now()
		events, err := tx.Outbox().ClaimPending(ctx, tx.DB(), now, r.settings.BatchSize)
		if err != nil {
			return err
		}

		for _, evt := range events {
			if pubErr := r.publisher.Publish(ctx, evt); pubErr != nil {
				slog.Warn("outbox publish failed",
					"event_id", evt.ID,
					"event_type", evt.EventType,
					"attempts", evt.Attempts+1,
					"error", pubErr)
				retryAt := now.Add(retryDelay(evt.Attempts))
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), evt.ID, pubErr.Error(), retryAt, r.settings.MaxAttempts); err != nil {
					return err
				}
				continue
			}
			if err := tx.Outbox().MarkPublished(ctx, tx.DB(), evt.ID, now); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if published > 0 {
		slog.Debug("outbox events published", "count", published)
	}
	return published, nil
}

func retryDelay(attempts int32) time.Duration {
	d := relayBaseDelay
	for i := int32(0); i < attempts && d < relayMaxDelay; i++ {
		d *= 2
	}
	if d > relayMaxDelay {
		d = relayMaxDelay
	}
	return d
}
