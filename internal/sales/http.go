package sales

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nio-salesdesk/salesdesk-backend/internal/auth"
	"github.com/nio-salesdesk/salesdesk-backend/internal/users"
)

type Handler struct {
	repo  *Repo
	users *users.Repo
}

func Register(rg *gin.RouterGroup, repo *Repo, userRepo *users.Repo) {
	h := &Handler{repo: repo, users: userRepo}

	rg.POST("/sales", h.create)
	rg.GET("/sales", h.list)
	rg.GET("/sales/recent", h.recent)
	rg.GET("/sales/month", h.month)
	rg.GET("/sales/agent/:uid", h.agentMonth)
	rg.PATCH("/sales/:id", h.update)
	rg.DELETE("/sales/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var s Sale
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// A sale always belongs to the caller who logs it.
	s.AgentUID = auth.UserUID(c)

	created, err := h.repo.Add(c.Request.Context(), s)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "sale": created})
}

// list returns all sales, optionally narrowed by a period shortcut or an
// explicit date range, then by a free-text query.
func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	var start, end time.Time
	if period := c.Query("period"); period != "" {
		s, e, ok := PeriodBounds(period, time.Now())
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown period"})
			return
		}
		start, end = s, e
	} else {
		start = parseDate(c.Query("start"))
		end = parseDate(c.Query("end"))
	}

	items = FilterByDateRange(items, start, end)
	items = FilterByText(items, c.Query("q"))

	c.JSON(http.StatusOK, gin.H{"ok": true, "sales": items})
}

func (h *Handler) recent(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("n", "30"))
	items, err := h.repo.Recent(c.Request.Context(), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "sales": items})
}

func (h *Handler) month(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid year/month"})
		return
	}

	items, err := h.repo.ForMonth(c.Request.Context(), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "sales": items})
}

func (h *Handler) agentMonth(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid year/month"})
		return
	}

	items, err := h.repo.ForAgentMonth(c.Request.Context(), c.Param("uid"), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "sales": items})
}

func (h *Handler) update(c *gin.Context) {
	var upd SaleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	fields := upd.Fields()
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no fields to update"})
		return
	}

	if !h.canMutate(c, c.Param("id")) {
		return
	}

	if err := h.repo.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "sale not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) delete(c *gin.Context) {
	if !h.canMutate(c, c.Param("id")) {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// canMutate enforces ownership: the authoring agent or any admin. Writes the
// error response itself and reports whether the handler may proceed.
func (h *Handler) canMutate(c *gin.Context, saleID string) bool {
	sale, err := h.repo.Get(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "sale not found"})
			return false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return false
	}

	callerUID := auth.UserUID(c)
	if sale.AgentUID == callerUID {
		return true
	}

	caller, err := h.users.Get(c.Request.Context(), callerUID)
	if err != nil || caller.Role != users.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "not allowed"})
		return false
	}
	return true
}

func parseDate(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func yearMonth(c *gin.Context) (int, time.Month, bool) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}
