package mq

import (
	"context"
	"log/slog"

	"entitlement-engine/internal/usecase/shared"
)

// LogPublisher only logs events. It is the default when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(ctx context.Context, evt shared.OutboxEvent) error {
	slog.InfoContext(ctx, "domain event",
		"event_id", evt.ID,
		"event_type", evt.EventType,
		"aggregate_type", evt.AggregateType,
		"aggregate_id", evt.AggregateID)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
