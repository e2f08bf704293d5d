// Package notify tracks which direct-message rooms each user has seen and
// signals them when something newer arrives. State lives in redis so it
// survives reconnects and is shared across instances; new-message signals
// ride redis pub/sub.
package notify

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	seenKeyPrefix   = "chat:seen:"
	eventChanPrefix = "chat:events:"

	// Watcher state is rebuilt from a fresh baseline on reconnect, so it
	// only needs to outlive one session.
	stateTTL = 24 * time.Hour
)

type Notifier struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// Publish signals the recipient that a room has a new message. Best effort:
// a down redis only costs the push, the poll loop still catches up.
func (n *Notifier) Publish(ctx context.Context, recipientUID, roomID string) {
	if err := n.rdb.Publish(ctx, eventChanPrefix+recipientUID, roomID).Err(); err != nil {
		log.Printf("notify: publish to %s failed: %v", recipientUID, err)
	}
}

// Subscribe opens the user's new-message channel.
func (n *Notifier) Subscribe(ctx context.Context, uid string) *redis.PubSub {
	return n.rdb.Subscribe(ctx, eventChanPrefix+uid)
}

// Seen records that the user has caught up with a room as of now.
func (n *Notifier) Seen(ctx context.Context, uid, roomID string) {
	n.SeenAt(ctx, uid, roomID, time.Now())
}

// SeenAt records the exact last-seen instant for a room.
func (n *Notifier) SeenAt(ctx context.Context, uid, roomID string, at time.Time) {
	key := seenKeyPrefix + uid
	pipe := n.rdb.Pipeline()
	pipe.HSet(ctx, key, roomID, at.UnixMilli())
	pipe.Expire(ctx, key, stateTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("notify: recording seen state for %s failed: %v", uid, err)
	}
}

// LastSeen loads the user's per-room last-seen instants.
func (n *Notifier) LastSeen(ctx context.Context, uid string) (map[string]time.Time, error) {
	raw, err := n.rdb.HGetAll(ctx, seenKeyPrefix+uid).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]time.Time, len(raw))
	for roomID, v := range raw {
		millis, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[roomID] = time.UnixMilli(millis)
	}
	return out, nil
}

// Clear drops the user's watcher state, called when their session ends.
func (n *Notifier) Clear(ctx context.Context, uid string) {
	if err := n.rdb.Del(ctx, seenKeyPrefix+uid).Err(); err != nil {
		log.Printf("notify: clearing state for %s failed: %v", uid, err)
	}
}
