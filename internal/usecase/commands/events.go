package commands

import (
	"context"
	"encoding/json"
	"time"

	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// appendEvent writes an outbox row inside tx so the event commits with the change.
func appendEvent(ctx context.Context, tx shared.Tx, aggregateType string, aggregateID uuid.UUID, eventType string, payload any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "failed to encode %s event", eventType)
	}
	return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       body,
		OccurredAt:    now,
	})
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
