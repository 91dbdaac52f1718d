package audit

import (
	"context"
	"time"
)

const (
	ActionCreate       = "CREATE"
	ActionUpdate       = "UPDATE"
	ActionDelete       = "DELETE"
	ActionStatusChange = "STATUS_CHANGE"
	ActionLogin        = "LOGIN"
	ActionLogout       = "LOGOUT"
)

const (
	ResourceFood     = "food"
	ResourceCategory = "category"
	ResourceUser     = "user"
	ResourceOrder    = "order"
	ResourceSession  = "session"
)

// Event records one successful mutation made from the console.
type Event struct {
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	ResourceID int       `json:"resourceId,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

var _ Publisher = NopPublisher{}
