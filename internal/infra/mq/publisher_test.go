//go:build unit

package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	evt := shared.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: shared.AggregateOrder,
		AggregateID:   uuid.New(),
		EventType:     shared.EventOrderCompleted,
		Payload:       json.RawMessage(`{"state":"paid"}`),
		OccurredAt:    time.Date(2025, 3, 10, 14, 30, 0, 0, ist),
	}

	t.Run("envelope carries identity and payload, time in UTC", func(t *testing.T) {
		body, err := encode(evt)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, evt.ID.String(), got["id"])
		assert.Equal(t, "order.completed", got["type"])
		assert.Equal(t, "order", got["aggregateType"])
		assert.Equal(t, evt.AggregateID.String(), got["aggregateId"])
		assert.Equal(t, "2025-03-10T09:00:00Z", got["occurredAt"])
		assert.Equal(t, map[string]any{"state": "paid"}, got["data"])
	})

	t.Run("empty payload is sent as an empty object", func(t *testing.T) {
		evt := evt
		evt.Payload = nil

		body, err := encode(evt)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"data":{}`)
	})
}

func TestNew(t *testing.T) {
	t.Run("log driver is the default", func(t *testing.T) {
		pub, err := New(config.MQConfig{})
		require.NoError(t, err)
		assert.IsType(t, &LogPublisher{}, pub)
		assert.NoError(t, pub.Publish(context.Background(), shared.OutboxEvent{ID: uuid.New()}))
		assert.NoError(t, pub.Close())
	})

	t.Run("kafka needs a broker", func(t *testing.T) {
		_, err := New(config.MQConfig{Driver: DriverKafka})
		assert.Error(t, err)
	})

	t.Run("kafka writer is created lazily", func(t *testing.T) {
		pub, err := New(config.MQConfig{Driver: DriverKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "events"})
		require.NoError(t, err)
		assert.IsType(t, &KafkaPublisher{}, pub)
		assert.NoError(t, pub.Close())
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := New(config.MQConfig{Driver: "nats"})
		assert.Error(t, err)
	})
}
