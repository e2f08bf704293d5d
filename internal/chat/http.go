package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nio-salesdesk/salesdesk-backend/internal/auth"
	"github.com/nio-salesdesk/salesdesk-backend/internal/chat/notify"
	"github.com/nio-salesdesk/salesdesk-backend/internal/users"
)

type Handler struct {
	repo     *Repo
	users    *users.Repo
	notifier *notify.Notifier
}

func Register(rg *gin.RouterGroup, repo *Repo, userRepo *users.Repo, notifier *notify.Notifier) {
	h := &Handler{repo: repo, users: userRepo, notifier: notifier}

	rg.GET("/chat/group", h.groupMessages)
	rg.POST("/chat/group", h.sendGroup)
	rg.GET("/chat/group/pinned", h.pinned)
	rg.POST("/chat/group/:id/pin", h.pin)
	rg.POST("/chat/group/:id/unpin", h.unpin)
	rg.GET("/chat/group/stream", h.streamGroup)

	rg.POST("/chat/dm/:uid", h.sendDirect)
	rg.GET("/chat/dm/:uid", h.directMessages)
	rg.GET("/chat/dm/:uid/stream", h.streamDirect)
	rg.POST("/chat/rooms/:roomId/read", h.markRead)
	rg.GET("/chat/conversations", h.conversations)

	rg.GET("/chat/notifications/stream", h.streamNotifications)
}

type sendReq struct {
	Text     string `json:"text"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
}

func (r sendReq) empty() bool {
	return strings.TrimSpace(r.Text) == "" && r.FileURL == ""
}

// message builds the outgoing message with the sender resolved server-side.
func (h *Handler) message(c *gin.Context, req sendReq) Message {
	uid := auth.UserUID(c)
	sender, err := h.users.Get(c.Request.Context(), uid)
	if err != nil {
		sender = nil
	}
	return newMessage(uid, sender, req)
}

// newMessage stamps the sender's identity onto the payload. Name and role
// come from the profile; an absent profile leaves them empty.
func newMessage(uid string, sender *users.User, req sendReq) Message {
	m := Message{
		SenderUID: uid,
		Text:      strings.TrimSpace(req.Text),
		FileURL:   req.FileURL,
		FileName:  req.FileName,
		FilePath:  req.FilePath,
		FileType:  req.FileType,
	}
	if sender != nil {
		m.SenderName = sender.Name
		m.SenderRole = sender.Role
	}
	return m
}

func (h *Handler) groupMessages(c *gin.Context) {
	items, err := h.repo.GroupMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "messages": items})
}

func (h *Handler) sendGroup(c *gin.Context) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil || req.empty() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "message text or file required"})
		return
	}

	m, err := h.repo.SendGroup(c.Request.Context(), h.message(c, req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": m})
}

func (h *Handler) pinned(c *gin.Context) {
	m, err := h.repo.PinnedMessage(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"ok": true, "message": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": m})
}

func (h *Handler) pin(c *gin.Context) {
	if err := h.repo.Pin(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) unpin(c *gin.Context) {
	if err := h.repo.Unpin(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) sendDirect(c *gin.Context) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil || req.empty() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "message text or file required"})
		return
	}

	me := auth.UserUID(c)
	other := c.Param("uid")
	if other == "" || other == me {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid recipient"})
		return
	}

	ctx := c.Request.Context()
	roomID := RoomID(me, other)
	if err := h.repo.EnsureRoom(ctx, roomID, []string{me, other}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	m, err := h.repo.SendDirect(ctx, roomID, h.message(c, req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	h.notifier.Publish(ctx, other, roomID)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "roomId": roomID, "message": m})
}

func (h *Handler) directMessages(c *gin.Context) {
	roomID := RoomID(auth.UserUID(c), c.Param("uid"))
	items, err := h.repo.DirectMessages(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "roomId": roomID, "messages": items})
}

func (h *Handler) markRead(c *gin.Context) {
	roomID := c.Param("roomId")
	uid := auth.UserUID(c)

	if err := h.requireMember(c, roomID, uid); err != nil {
		return
	}
	if err := h.repo.MarkRead(c.Request.Context(), roomID, uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	h.notifier.Seen(c.Request.Context(), uid, roomID)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) conversations(c *gin.Context) {
	rooms, err := h.repo.Conversations(c.Request.Context(), auth.UserUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "conversations": rooms})
}

// requireMember rejects access to rooms the caller does not belong to.
// Writes the error response itself; a nil return means proceed.
func (h *Handler) requireMember(c *gin.Context, roomID, uid string) error {
	room, err := h.repo.Room(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "room not found"})
			return err
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return err
	}
	for _, m := range room.Members {
		if m == uid {
			return nil
		}
	}
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "not a member of this room"})
	return ErrNotMember
}
