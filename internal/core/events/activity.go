package events

import (
	"context"
	"log/slog"
)

// ActivityLogger writes one structured line per domain event.
type ActivityLogger struct {
	logger *slog.Logger
}

func NewActivityLogger(logger *slog.Logger) *ActivityLogger {
	return &ActivityLogger{logger: logger}
}

func (a *ActivityLogger) Handle(ctx context.Context, event Event) error {
	attrs := []any{
		"event_type", event.EventType(),
		"event_id", event.EventID(),
		"occurred_at", event.OccurredAt(),
	}
	if data, ok := event.Payload().(map[string]interface{}); ok {
		for k, v := range data {
			attrs = append(attrs, k, v)
		}
	}
	a.logger.InfoContext(ctx, "activity", attrs...)
	return nil
}

func (a *ActivityLogger) RegisterEventHandlers(bus *EventBus) {
	for _, t := range []string{EventTypeJobStatusChanged, EventTypeJobDeleted, EventTypeCommentPosted} {
		bus.Subscribe(t, a.Handle)
	}
}
