package domain

import "time"

const (
	EventPostCreated    = "post.created"
	EventMessageCreated = "message.created"
)

// Event is a realtime notification emitted after an entity is persisted.
type Event struct {
	Kind      string    `json:"kind"`
	Body      any       `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}
