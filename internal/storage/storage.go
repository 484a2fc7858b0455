package storage

import "time"

// Kind tells how the conversation controller handled a message.
type Kind string

const (
	KindGoal     Kind = "goal"
	KindQuestion Kind = "question"
	KindDialog   Kind = "dialog"
)

// Event represents a single handled message and the bot's reply.
// Events are expected to be appended in chronological order.
type Event struct {
	Timestamp         time.Time `json:"timestamp"`
	UserID            int64     `json:"user_id"`
	Kind              Kind      `json:"kind"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	Failed            bool      `json:"failed,omitempty"`
}

// Recorder abstracts persistence of interaction events.
// LoadInteractions should return events in chronological order.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}
