package evconsumer

import (
	"context"
	"errors"
	"fmt"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/platform/kafka"
	"github.com/you-humble/garage-ops/platform/logger"
)

type Converter interface {
	JSONToEvent(data []byte) (model.Event, error)
}

type Notifier interface {
	Notify(ctx context.Context, event model.Event) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	notifier Notifier
}

func NewEventConsumer(
	consumer kafka.Consumer,
	conv Converter,
	notifier Notifier,
) *service {
	return &service{consumer: consumer, conv: conv, notifier: notifier}
}

func (s *service) RunEventsConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting domain events consumer")

	if err := s.consumer.Consume(ctx, s.eventHandler); err != nil {
		logger.Error(ctx, "Consume from events topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) eventHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.JSONToEvent(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode event",
			logger.String("event_type", msg.Header(kafka.HeaderEventType)),
			logger.ErrorF(err),
		)
		return fmt.Errorf("converter json_to_event error: %w", err)
	}

	if err := s.notifier.Notify(ctx, event); err != nil {
		if errors.Is(err, model.ErrUnknownEventType) {
			logger.Debug(ctx, "event skipped", logger.String("event_type", string(event.Type)))
			return nil
		}
		logger.Error(ctx, "notifier.Notify", logger.ErrorF(err))
		return err
	}

	return nil
}
