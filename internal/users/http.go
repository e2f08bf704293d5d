package users

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nio-salesdesk/salesdesk-backend/internal/auth"
)

// Store is what the handlers need from persistence; *Repo implements it.
type Store interface {
	CreateProfile(ctx context.Context, uid, email, name, th string) (*User, error)
	Get(ctx context.Context, uid string) (*User, error)
	All(ctx context.Context) ([]User, error)
	Agents(ctx context.Context) ([]User, error)
	Pending(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, uid string, upd ProfileUpdate) error
	SetSalesGoal(ctx context.Context, uid string, goal int) error
	Approve(ctx context.Context, uid string) error
}

type Handler struct {
	repo Store
}

func Register(rg *gin.RouterGroup, repo Store) {
	h := &Handler{repo: repo}

	rg.GET("/me", h.me)
	rg.POST("/users", h.createProfile)
	rg.GET("/users", h.list)
	rg.GET("/users/agents", h.agents)
	rg.GET("/users/pending", h.pending)

	// Profile mutations are team management, admins only.
	rg.PATCH("/users/:uid", h.requireAdmin, h.update)
	rg.PATCH("/users/:uid/sales-goal", h.requireAdmin, h.setSalesGoal)
	rg.POST("/users/:uid/approve", h.requireAdmin, h.approve)
}

// requireAdmin aborts unless the caller's own profile carries the admin
// role. Without it a pending agent could approve themselves.
func (h *Handler) requireAdmin(c *gin.Context) {
	caller, err := h.repo.Get(c.Request.Context(), auth.UserUID(c))
	if err != nil || caller.Role != RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "not allowed"})
		return
	}
	c.Next()
}

func (h *Handler) me(c *gin.Context) {
	u, err := h.repo.Get(c.Request.Context(), auth.UserUID(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": u})
}

type createProfileReq struct {
	Name string `json:"name"`
	TH   string `json:"th"`
}

// createProfile registers the caller's own profile right after sign-up.
// Role and status are fixed server-side: every new profile is a pending agent.
func (h *Handler) createProfile(c *gin.Context) {
	var req createProfileReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	u, err := h.repo.CreateProfile(
		c.Request.Context(),
		auth.UserUID(c),
		auth.UserEmail(c),
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.TH),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "user": u})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "users": items})
}

func (h *Handler) agents(c *gin.Context) {
	items, err := h.repo.Agents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "users": items})
}

func (h *Handler) pending(c *gin.Context) {
	items, err := h.repo.Pending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "users": items})
}

func (h *Handler) update(c *gin.Context) {
	var upd ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.repo.UpdateProfile(c.Request.Context(), c.Param("uid"), upd)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type salesGoalReq struct {
	SalesGoal int `json:"salesGoal"`
}

func (h *Handler) setSalesGoal(c *gin.Context) {
	var req salesGoalReq
	if err := c.ShouldBindJSON(&req); err != nil || req.SalesGoal < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.repo.SetSalesGoal(c.Request.Context(), c.Param("uid"), req.SalesGoal)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) approve(c *gin.Context) {
	err := h.repo.Approve(c.Request.Context(), c.Param("uid"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
