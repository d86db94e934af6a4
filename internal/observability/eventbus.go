package observability

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Recorder receives the metric side of published events.
type Recorder interface {
	ObserveGeneration(kind, provider, status string, duration time.Duration)
	ObserveContact(status string)
}

// EventBus implements the EventPublisher interface.
// Every event is logged. Known event types also feed the recorder.
type EventBus struct {
	recorder Recorder
}

// NewEventBus creates a new event bus (DI constructor). recorder may be nil.
func NewEventBus(recorder Recorder) *EventBus {
	return &EventBus{
		recorder: recorder,
	}
}

// Publish publishes an event with the given type and data.
func (e *EventBus) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	fields := make([]zap.Field, 0, len(data)+1)
	fields = append(fields, zap.String("event", eventType))
	for k, v := range data {
		fields = append(fields, zap.Any(k, v))
	}
	FromContext(ctx).Info("event published", fields...)

	if e.recorder == nil {
		return
	}

	status := stringValue(data, "status")
	switch eventType {
	case "generation.text":
		e.recorder.ObserveGeneration("text", stringValue(data, "provider"), status, durationValue(data))
	case "generation.image":
		e.recorder.ObserveGeneration("image", stringValue(data, "provider"), status, durationValue(data))
	case "contact.message":
		e.recorder.ObserveContact(status)
	}
}

func stringValue(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func durationValue(data map[string]interface{}) time.Duration {
	if ms, ok := data["duration_ms"].(int64); ok {
		return time.Duration(ms) * time.Millisecond
	}
	return 0
}
