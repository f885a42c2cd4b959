package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// EventSchemaVersion is embedded in every published event.
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	SubmissionAccepted     Type = "submission.accepted"
	SubmissionDenied       Type = "submission.denied"
	SubmissionRejected     Type = "submission.rejected"
	MultiplierUnlocked     Type = "multiplier.unlocked"
	RecalculationCompleted Type = "recalculation.completed"
)

// Typed event payloads

// SubmissionDecidedPayloadV1 is the payload for accepted, denied and
// rejected submission events.
type SubmissionDecidedPayloadV1 struct {
	SubmissionID  string  `json:"submission_id"`
	Team          string  `json:"team"`
	Tier          string  `json:"tier"`
	Source        string  `json:"source"`
	Item          string  `json:"item"`
	ParticipantID string  `json:"participant_id"`
	ReviewerID    string  `json:"reviewer_id"`
	PointsAwarded float64 `json:"points_awarded"`
	Timestamp     int64   `json:"timestamp"`
}

// MultiplierUnlockedPayloadV1 is the payload for multiplier unlock events.
type MultiplierUnlockedPayloadV1 struct {
	Team        string   `json:"team"`
	Multipliers []string `json:"multipliers"`
	Timestamp   int64    `json:"timestamp"`
}

// RecalculationCompletedPayloadV1 is the payload for periodic
// recalculation summary events.
type RecalculationCompletedPayloadV1 struct {
	ParticipantsChecked int   `json:"participants_checked"`
	ParticipantsUpdated int   `json:"participants_updated"`
	Errors              int   `json:"errors"`
	Timestamp           int64 `json:"timestamp"`
}

// Type-safe event constructors

// NewSubmissionDecidedEvent creates a submission decision event of the given
// type (accepted, denied or rejected).
func NewSubmissionDecidedEvent(t Type, submissionID, team, tier, source, item, participantID, reviewerID string, points float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: SubmissionDecidedPayloadV1{
			SubmissionID:  submissionID,
			Team:          team,
			Tier:          tier,
			Source:        source,
			Item:          item,
			ParticipantID: participantID,
			ReviewerID:    reviewerID,
			PointsAwarded: points,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewMultiplierUnlockedEvent creates a multiplier unlock event.
func NewMultiplierUnlockedEvent(team string, multipliers []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MultiplierUnlocked,
		Payload: MultiplierUnlockedPayloadV1{
			Team:        team,
			Multipliers: multipliers,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewRecalculationCompletedEvent creates a recalculation summary event.
func NewRecalculationCompletedEvent(checked, updated, errCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RecalculationCompleted,
		Payload: RecalculationCompletedPayloadV1{
			ParticipantsChecked: checked,
			ParticipantsUpdated: updated,
			Errors:              errCount,
			Timestamp:           time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously. Handler
// failures are aggregated; a failing handler never blocks the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
