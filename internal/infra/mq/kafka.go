package mq

import (
	"context"
	"fmt"
	"time"

	"entitlement-engine/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher keys messages by aggregate id so one aggregate's events stay
// on one partition, in order.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
		},
		topic: topic,
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt shared.OutboxEvent) error {
	body, err := encode(evt)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(evt.AggregateID.String()),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(evt.EventType)},
		},
		Time: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
