package metrics

import (
	"context"

	"github.com/clanfrenzy/frenzybot/internal/event"
	"github.com/clanfrenzy/frenzybot/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SubmissionAccepted,
		event.SubmissionDenied,
		event.SubmissionRejected,
		event.MultiplierUnlocked,
		event.RecalculationCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent counts every published event by type. Business counters are
// incremented at the decision site, not here, so a slow subscriber cannot
// skew the award totals.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
