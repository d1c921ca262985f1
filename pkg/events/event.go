package events

import (
	"context"
	"time"
)

const ConversationMessageSaved = "CONVERSATION_MESSAGE_SAVED"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CONVERSATION_MESSAGE_SAVED").
	EventType() string

	Payload() map[string]interface{}

	Timestamp() time.Time
}

// Publisher delivers events to the bus. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewConversationMessageSaved(id int64, telegramID int64, role string, createdAt time.Time) BaseEvent {
	return BaseEvent{
		Type: ConversationMessageSaved,
		Data: map[string]interface{}{
			"id":          id,
			"telegram_id": telegramID,
			"role":        role,
			"created_at":  createdAt.Format(time.RFC3339Nano),
		},
		OccurredAt: createdAt,
	}
}

// NopPublisher is used when no bus is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() {}
