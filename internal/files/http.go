package files

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nio-salesdesk/salesdesk-backend/internal/chat"
)

// Attachments cap at 20 MiB, matching what the chat UI accepts.
const maxUploadBytes = 20 << 20

type Handler struct {
	store *Store
}

func Register(rg *gin.RouterGroup, store *Store) {
	h := &Handler{store: store}
	rg.POST("/chat/upload", h.upload)
}

// upload receives one multipart attachment plus its chat scope (the group
// room or a DM room id) and returns the stored path and download URL.
func (h *Handler) upload(c *gin.Context) {
	scope := c.PostForm("scope")
	if scope == "" {
		scope = chat.GroupScope
	}
	if strings.ContainsAny(scope, "/\\") {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid scope"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "file required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"ok": false, "error": "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	defer f.Close()

	up, err := h.store.Save(
		c.Request.Context(),
		scope,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		f,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "upload": up})
}
