package observability

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// EventBus implements the EventPublisher interface on top of the structured logger.
type EventBus struct {
	logger *zap.Logger
}

// NewEventBus creates a new event bus.
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		logger: logger,
	}
}

// Publish publishes an event with the given type and data.
func (e *EventBus) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if e.logger == nil {
		return
	}

	correlation := ContextFields(ctx)
	tagged := make(map[string]struct{}, len(correlation))
	for _, f := range correlation {
		tagged[f.Key] = struct{}{}
	}

	// Data keys already carried as correlation IDs are not repeated.
	keys := make([]string, 0, len(data))
	for k := range data {
		if _, dup := tagged[k]; !dup {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys)+len(correlation)+1)
	fields = append(fields, zap.String("event", eventType))
	fields = append(fields, correlation...)
	for _, k := range keys {
		fields = append(fields, zap.Any(k, data[k]))
	}

	e.logger.Info("event published", fields...)
}
