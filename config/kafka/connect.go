package kafka

import (
	"fmt"

	"salesreport-srv/config"
	"salesreport-srv/pkg/kafka"
)

// ConnectProducer creates a Kafka producer for job lifecycle events. Returns
// (nil, nil) when no brokers are configured: publishing is optional.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	return producer, nil
}
