// Package event defines the lifecycle events emitted for users and posts.
package event

import (
	"context"
	"time"
)

type Type string

const (
	UserCreated   Type = "user.created"
	UserUpdated   Type = "user.updated"
	UserDeleted   Type = "user.deleted"
	PostCreated   Type = "post.created"
	PostUpdated   Type = "post.updated"
	PostPublished Type = "post.published"
	PostDeleted   Type = "post.deleted"
)

// Event is the JSON payload carried on the events queue. Data holds the
// entity document for create/update events and is empty for deletes.
type Event struct {
	Type       Type           `json:"type"`
	EntityID   string         `json:"entity_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// IsUser reports whether the event concerns a user.
func (e Event) IsUser() bool {
	return e.Type == UserCreated || e.Type == UserUpdated || e.Type == UserDeleted
}

// IsDelete reports whether the event removes its entity.
func (e Event) IsDelete() bool {
	return e.Type == UserDeleted || e.Type == PostDeleted
}

// Publisher delivers events to their consumers.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, ev Event) error

func (f PublisherFunc) Publish(ctx context.Context, ev Event) error { return f(ctx, ev) }

// New stamps an event with the current time.
func New(t Type, entityID string, data map[string]any) Event {
	return Event{Type: t, EntityID: entityID, OccurredAt: time.Now().UTC(), Data: data}
}
