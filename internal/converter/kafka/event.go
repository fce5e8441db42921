package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/you-humble/garage-ops/internal/model"
)

type eventRecord struct {
	EventID    string         `json:"eventId"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	EntityID   string         `json:"entityId"`
	Payload    map[string]any `json:"payload,omitempty"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) EventToJSON(e model.Event) ([]byte, error) {
	data, err := json.Marshal(eventRecord{
		EventID:    e.ID,
		Type:       string(e.Type),
		OccurredAt: e.OccurredAt,
		EntityID:   e.EntityID,
		Payload:    e.Payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, nil
}

func (c *kafkaConverter) JSONToEvent(data []byte) (model.Event, error) {
	var rec eventRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if rec.EventID == "" || rec.Type == "" {
		return model.Event{}, fmt.Errorf("event without id or type: %q", data)
	}

	return model.Event{
		ID:         rec.EventID,
		Type:       model.EventType(rec.Type),
		EntityID:   rec.EntityID,
		OccurredAt: rec.OccurredAt,
		Payload:    rec.Payload,
	}, nil
}
