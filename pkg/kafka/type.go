package kafka

import "github.com/IBM/sarama"

// Config holds configuration for the Kafka producer.
type Config struct {
	Brokers []string
	Topic   string
}

// implProducer implements IProducer over a sarama sync producer.
type implProducer struct {
	producer sarama.SyncProducer
	topic    string
}
