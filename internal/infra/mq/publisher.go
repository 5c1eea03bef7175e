package mq

import (
	"fmt"

	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/usecase/commands"
)

const (
	DriverAMQP  = "amqp"
	DriverKafka = "kafka"
	DriverLog   = "log"
)

type Publisher interface {
	commands.EventPublisher
	Close() error
}

// New returns the publisher for cfg.Driver.
func New(cfg config.MQConfig) (Publisher, error) {
	switch cfg.Driver {
	case DriverAMQP:
		return NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange)
	case DriverKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	case "", DriverLog:
		return NewLogPublisher(), nil
	default:
		return nil, fmt.Errorf("unknown mq driver %q", cfg.Driver)
	}
}
