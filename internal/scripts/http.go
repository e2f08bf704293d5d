package scripts

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nio-salesdesk/salesdesk-backend/internal/auth"
)

type Handler struct {
	repo *Repo
}

func Register(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}

	rg.GET("/scripts", h.list)
	rg.POST("/scripts", h.add)
	rg.PATCH("/scripts/:id", h.update)
	rg.DELETE("/scripts/:id", h.delete)
}

// list returns the caller's scripts, seeding the starter set on their very
// first visit.
func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()
	uid := auth.UserUID(c)

	if _, err := h.repo.SeedDefaults(ctx, uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	items, err := h.repo.ForUser(ctx, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "scripts": items})
}

func (h *Handler) add(c *gin.Context) {
	var s Script
	if err := c.ShouldBindJSON(&s); err != nil ||
		strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	created, err := h.repo.Add(c.Request.Context(), auth.UserUID(c), s)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "script": created})
}

func (h *Handler) update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.repo.Update(c.Request.Context(), auth.UserUID(c), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "script not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), auth.UserUID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
