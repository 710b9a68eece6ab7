package kafka

import (
	"context"
	"encoding/json"

	"salesreport-srv/internal/pipeline"
	"salesreport-srv/pkg/kafka"
	"salesreport-srv/pkg/log"
)

type implPublisher struct {
	producer kafka.IProducer
	l        log.Logger
}

// New creates an EventPublisher backed by a Kafka producer. Messages are
// keyed by job ID so one job's events stay in order.
func New(l log.Logger, producer kafka.IProducer) pipeline.EventPublisher {
	return &implPublisher{
		producer: producer,
		l:        l,
	}
}

func (p *implPublisher) PublishJobResult(ctx context.Context, result pipeline.JobResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		p.l.Errorf(ctx, "pipeline.delivery.kafka.PublishJobResult: Marshal failed: %v", err)
		return err
	}

	if err := p.producer.Publish([]byte(result.JobID), payload); err != nil {
		p.l.Errorf(ctx, "pipeline.delivery.kafka.PublishJobResult: Publish failed: %v", err)
		return err
	}

	return nil
}
