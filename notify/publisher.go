// notify/publisher.go
package notify

import (
	"context"
	"encoding/json"
	"log"

	"olilab_backend/models"

	"github.com/redis/go-redis/v9"
)

const (
	Channel   = "olilab:notifications"
	recentKey = "olilab:notifications:recent"
	recentMax = 100
)

// Publisher fans notification records out to Redis: a pub/sub channel for
// live listeners plus a capped recent list. A nil Publisher (or nil client)
// is a no-op, so the store stays the source of truth either way.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish is fire and forget; a Redis hiccup must not fail the operation that
// already saved the notification.
func (p *Publisher) Publish(ctx context.Context, n models.Notification) {
	if p == nil || p.rdb == nil {
		return
	}
	b, err := json.Marshal(n)
	if err != nil {
		return
	}
	pipe := p.rdb.TxPipeline()
	pipe.Publish(ctx, Channel, b)
	pipe.LPush(ctx, recentKey, b)
	pipe.LTrim(ctx, recentKey, 0, recentMax-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("notify: publish %s: %v", n.ID, err)
	}
}
