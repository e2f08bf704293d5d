package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nio-salesdesk/salesdesk-backend/internal/auth"
	"github.com/nio-salesdesk/salesdesk-backend/internal/chat/notify"
)

const (
	pollInterval      = 2 * time.Second
	notifyPollEvery   = 5 * time.Second
	keepAliveInterval = 15 * time.Second
)

// Both message streams are Server-Sent Events: a baseline snapshot first,
// then an update event whenever the tail of the window changes.

func (h *Handler) streamGroup(c *gin.Context) {
	h.streamMessages(c, func(ctx context.Context) ([]Message, error) {
		return h.repo.GroupMessages(ctx)
	})
}

func (h *Handler) streamDirect(c *gin.Context) {
	roomID := RoomID(auth.UserUID(c), c.Param("uid"))
	h.streamMessages(c, func(ctx context.Context) ([]Message, error) {
		return h.repo.DirectMessages(ctx, roomID)
	})
}

func (h *Handler) streamMessages(c *gin.Context, load func(context.Context) ([]Message, error)) {
	flusher, ok := sseSetup(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	messages, err := load(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	emit(c, flusher, "initial", gin.H{"messages": messages})
	lastID, lastTS := tail(messages)

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	poll := time.NewTicker(pollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-keepAlive.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case <-poll.C:
			messages, err := load(ctx)
			if err != nil {
				continue
			}
			id, ts := tail(messages)
			if id == lastID && ts.Equal(lastTS) {
				continue
			}
			lastID, lastTS = id, ts
			emit(c, flusher, "update", gin.H{"messages": messages})
		}
	}
}

// streamNotifications pushes unread signals for the caller's DM rooms. The
// first pass only records a baseline; after that a room signals when its
// latest message is newer than the watcher's last-seen and came from
// someone else. Redis pub/sub wakes the loop early, the poll ticker is the
// fallback. Watcher state is cleared when the client disconnects.
func (h *Handler) streamNotifications(c *gin.Context) {
	flusher, ok := sseSetup(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	uid := auth.UserUID(c)

	states, err := h.roomStates(ctx, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	for _, st := range states {
		if !st.Timestamp.IsZero() {
			h.notifier.SeenAt(ctx, uid, st.RoomID, st.Timestamp)
		}
	}
	emit(c, flusher, "initial", gin.H{"watching": len(states)})

	sub := h.notifier.Subscribe(ctx, uid)
	defer sub.Close()

	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		h.notifier.Clear(cleanupCtx, uid)
	}()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	poll := time.NewTicker(notifyPollEvery)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-keepAlive.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case <-sub.Channel():
			h.pushSignals(c, flusher, uid)

		case <-poll.C:
			h.pushSignals(c, flusher, uid)
		}
	}
}

func (h *Handler) pushSignals(c *gin.Context, flusher http.Flusher, uid string) {
	ctx := c.Request.Context()

	states, err := h.roomStates(ctx, uid)
	if err != nil {
		return
	}
	seen, err := h.notifier.LastSeen(ctx, uid)
	if err != nil {
		return
	}

	for _, sig := range notify.Diff(uid, states, seen, false) {
		emit(c, flusher, "notification", sig)
		h.notifier.SeenAt(ctx, uid, sig.RoomID, sig.Timestamp)
	}
}

func (h *Handler) roomStates(ctx context.Context, uid string) ([]notify.RoomState, error) {
	rooms, err := h.repo.Conversations(ctx, uid)
	if err != nil {
		return nil, err
	}
	states := make([]notify.RoomState, 0, len(rooms))
	for _, room := range rooms {
		st := notify.RoomState{RoomID: room.ID}
		if room.LastMessage != nil {
			st.SenderUID = room.LastMessage.SenderUID
			st.Timestamp = room.LastMessage.Timestamp
		}
		states = append(states, st)
	}
	return states, nil
}

func sseSetup(c *gin.Context) (http.Flusher, bool) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "streaming unsupported"})
		return nil, false
	}
	return flusher, true
}

func emit(c *gin.Context, flusher http.Flusher, event string, payload interface{}) {
	data, _ := json.Marshal(payload)
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(data))
	flusher.Flush()
}

func tail(messages []Message) (string, time.Time) {
	if len(messages) == 0 {
		return "", time.Time{}
	}
	last := messages[len(messages)-1]
	return last.ID, last.Timestamp
}
