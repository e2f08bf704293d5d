package reporting

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nio-salesdesk/salesdesk-backend/internal/sales"
	"github.com/nio-salesdesk/salesdesk-backend/internal/users"
)

type Handler struct {
	users *users.Repo
	sales *sales.Repo
}

func Register(rg *gin.RouterGroup, userRepo *users.Repo, saleRepo *sales.Repo) {
	h := &Handler{users: userRepo, sales: saleRepo}

	rg.GET("/reports/overview", h.overview)
	rg.GET("/reports/ranking", h.ranking)
	rg.GET("/reports/team", h.team)
}

// overview serves the dashboard in one response: KPI cards, the
// sales-by-agent chart and the recent-activity feed.
func (h *Handler) overview(c *gin.Context) {
	ctx := c.Request.Context()
	year, month, ok := yearMonth(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid year/month"})
		return
	}

	agents, err := h.users.Agents(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	pending, err := h.users.Pending(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	monthSales, err := h.sales.ForMonth(ctx, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	recent, err := h.sales.Recent(ctx, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"kpis":     ComputeKPIs(pending, agents, monthSales),
		"chart":    SalesByAgentChartData(monthSales, agents),
		"activity": ActivityFeed(recent, users.NameByUID(agents)),
	})
}

func (h *Handler) ranking(c *gin.Context) {
	ctx := c.Request.Context()
	year, month, ok := yearMonth(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid year/month"})
		return
	}

	team, err := h.users.Agents(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	monthSales, err := h.sales.ForMonth(ctx, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "ranking": TeamRanking(team, monthSales)})
}

// team serves the team-management view: one month summary per agent.
func (h *Handler) team(c *gin.Context) {
	ctx := c.Request.Context()
	year, month, ok := yearMonth(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid year/month"})
		return
	}

	agents, err := h.users.Agents(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	monthSales, err := h.sales.ForMonth(ctx, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	summaries := make([]AgentSummary, 0, len(agents))
	for _, a := range agents {
		summaries = append(summaries, AgentKPIs(a, monthSales))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "team": summaries})
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
