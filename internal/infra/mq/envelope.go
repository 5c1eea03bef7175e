package mq

import (
	"encoding/json"
	"time"

	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// envelope is the wire shape of every published event.
type envelope struct {
	ID            uuid.UUID       `json:"id"`
	Type          string          `json:"type"`
	AggregateType string          `json:"aggregateType"`
	AggregateID   uuid.UUID       `json:"aggregateId"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Data          json.RawMessage `json:"data"`
}

func encode(evt shared.OutboxEvent) ([]byte, error) {
	data := evt.Payload
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	return json.Marshal(envelope{
		ID:            evt.ID,
		Type:          evt.EventType,
		AggregateType: evt.AggregateType,
		AggregateID:   evt.AggregateID,
		OccurredAt:    evt.OccurredAt.UTC(),
		Data:          data,
	})
}
