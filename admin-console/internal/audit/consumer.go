package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"
)

// MessageReader is satisfied by *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer reads audit events back off the topic.
type Consumer struct {
	Reader MessageReader
}

func NewConsumer(reader MessageReader) *Consumer {
	return &Consumer{Reader: reader}
}

// Consume hands decoded events to handle until ctx ends or limit events have
// been delivered; limit 0 means no limit. Malformed messages are skipped.
func (c *Consumer) Consume(ctx context.Context, limit int, handle func(Event)) error {
	delivered := 0
	for limit == 0 || delivered < limit {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read audit event: %w", err)
		}

		var event Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("ERROR: skip malformed audit event at offset %d: %v", message.Offset, err)
			continue
		}
		handle(event)
		delivered++
	}
	return nil
}
