package storage

import "time"

// Event records a single delivered interaction: the user's message and the
// assistant's reply. Events are appended in chronological order. This is an
// audit log, not the conversation cache — the context window never reads it.
type Event struct {
	Timestamp         time.Time `json:"timestamp"`
	ChatID            int64     `json:"chat_id"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	Model             string    `json:"model,omitempty"`
	TotalTokens       int       `json:"total_tokens,omitempty"`
}

// Recorder abstracts persistence of interaction events.
// Implementations can be file-based, database, etc.
// LoadInteractions should return events in chronological order.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}
