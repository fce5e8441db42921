package evproducer

import (
	"context"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/platform/logger"
)

type noopProducer struct{}

// NewNoopProducer drops events; used when Kafka is disabled.
func NewNoopProducer() *noopProducer { return &noopProducer{} }

func (noopProducer) Publish(ctx context.Context, event model.Event) error {
	logger.Debug(ctx, "event dropped",
		logger.String("event_type", string(event.Type)),
		logger.String("entity_id", event.EntityID),
	)
	return nil
}
