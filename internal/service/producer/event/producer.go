package evproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/platform/kafka"
)

type Converter interface {
	EventToJSON(e model.Event) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewEventProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// Publish keys the record by entity id so that events of one entity stay ordered.
func (s *service) Publish(ctx context.Context, event model.Event) error {
	payload, err := s.conv.EventToJSON(event)
	if err != nil {
		return fmt.Errorf("converter event_to_json error: %w", err)
	}

	if err := s.producer.Send(
		ctx,
		[]byte(event.EntityID),
		payload,
		kafka.Header{Key: kafka.HeaderEventType, Value: []byte(event.Type)},
	); err != nil {
		return fmt.Errorf("producer %s event error: %w", event.Type, err)
	}

	return nil
}
