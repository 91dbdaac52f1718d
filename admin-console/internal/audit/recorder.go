package audit

import (
	"context"
	"log"
)

type ActorSource interface {
	Name() string
}

// Recorder stamps events with the signed-in admin and publishes them. A
// failed publish is logged and never returned to the caller.
type Recorder struct {
	publisher Publisher
	actor     ActorSource
}

func NewRecorder(publisher Publisher, actor ActorSource) *Recorder {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Recorder{publisher: publisher, actor: actor}
}

func (r *Recorder) Record(ctx context.Context, action, resource string, id int) {
	r.RecordDetail(ctx, action, resource, id, "")
}

func (r *Recorder) RecordDetail(ctx context.Context, action, resource string, id int, detail string) {
	if r == nil {
		return
	}
	event := Event{Type: action, Resource: resource, ResourceID: id, Detail: detail}
	if r.actor != nil {
		event.Actor = r.actor.Name()
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		log.Printf("ERROR: publish audit event %s %s %d: %v", action, resource, id, err)
	}
}
