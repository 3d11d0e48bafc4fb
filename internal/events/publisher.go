package events

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher emits habit lifecycle notifications. Sends are fire-and-forget:
// the caller never waits on the broker and never sees a delivery failure.
// A lost notification only affects downstream observers' freshness, so
// availability wins over durability here.
type Publisher struct {
	client  *redis.Client
	timeout time.Duration
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client, timeout: 3 * time.Second}
}

// Publish sends one "<Kind>: <id>" message to the habit events stream on a
// detached goroutine. Call it only after the local mutation has committed.
func (p *Publisher) Publish(kind LifecycleKind, habitID int64) {
	message := LifecycleMessage(kind, habitID)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		args := &redis.XAddArgs{
			Stream: HabitEventsStream,
			Values: map[string]any{"message": message},
		}
		if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
			log.Printf("Failed to publish %q: %v", message, err)
			return
		}
		log.Printf("Sent to %s: %s", HabitEventsStream, message)
	}()
}
