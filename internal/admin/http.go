package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nio-salesdesk/salesdesk-backend/internal/auth"
)

type Handler struct {
	service  *Service
	limiters *LimiterStore
}

func Register(rg *gin.RouterGroup, service *Service, limiters *LimiterStore) {
	h := &Handler{service: service, limiters: limiters}

	grp := rg.Group("/admin")
	grp.Use(h.rateLimit)
	grp.POST("/password-reset", h.passwordReset)
	grp.POST("/delete-user", h.deleteUser)
	grp.POST("/clear-group-chat", h.clearGroupChat)
}

func (h *Handler) rateLimit(c *gin.Context) {
	if !h.limiters.Allow(auth.UserUID(c)) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"ok":    false,
			"error": "Muitas solicitações. Tente novamente em instantes.",
		})
		return
	}
	c.Next()
}

type passwordResetReq struct {
	Email string `json:"email"`
}

func (h *Handler) passwordReset(c *gin.Context) {
	var req passwordResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res, err := h.service.SendPasswordReset(c.Request.Context(), auth.UserUID(c), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}

type deleteUserReq struct {
	UID string `json:"uid"`
}

func (h *Handler) deleteUser(c *gin.Context) {
	var req deleteUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res, err := h.service.DeleteUserAndData(c.Request.Context(), auth.UserUID(c), req.UID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}

func (h *Handler) clearGroupChat(c *gin.Context) {
	res, err := h.service.ClearGroupChat(c.Request.Context(), auth.UserUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}

func respondError(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), gin.H{"ok": false, "error": err.Error()})
}
