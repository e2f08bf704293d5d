// Package reporting aggregates sales into the dashboard views. Everything
// here is a pure function over already-loaded slices; aggregations never
// fail, missing references degrade to sentinel labels.
package reporting

import (
	"sort"
	"strconv"
	"time"

	"github.com/nio-salesdesk/salesdesk-backend/internal/sales"
	"github.com/nio-salesdesk/salesdesk-backend/internal/users"
)

// Sentinel labels shown when there is nothing to rank yet or the winning
// agent no longer has a profile.
const (
	NobodyYet    = "Ninguém ainda"
	UnknownAgent = "Desconhecido"
)

// KPI is one dashboard card.
type KPI struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// NameValue is one bar of the sales-by-agent chart.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Activity is one row of the recent-activity feed.
type Activity struct {
	AgentName  string    `json:"agentName"`
	Status     string    `json:"status"`
	StatusSlug string    `json:"statusSlug"`
	Timestamp  time.Time `json:"timestamp"`
}

// RankingRow is one agent's line in the monthly team ranking.
type RankingRow struct {
	UID          string `json:"uid"`
	Name         string `json:"name"`
	Installed    int    `json:"installed"`
	Provisioning int    `json:"provisioning"`
	Cancelled    int    `json:"cancelled"`
	Total        int    `json:"total"`
}

// AgentSummary is the per-agent month card on the team-management view.
type AgentSummary struct {
	UID          string  `json:"uid"`
	Name         string  `json:"name"`
	Installed    int     `json:"installed"`
	Provisioning int     `json:"provisioning"`
	Cancelled    int     `json:"cancelled"`
	PendingIssue int     `json:"pendingIssue"`
	Total        int     `json:"total"`
	SalesGoal    int     `json:"salesGoal"`
	MetaProgress float64 `json:"metaProgress"`
}

// ComputeKPIs builds the fixed seven overview cards from this month's sales
// plus the current agent and pending-approval lists.
func ComputeKPIs(pending, agents []users.User, monthSales []sales.Sale) []KPI {
	var installed, cancelled, provisioning, pendingIssue int
	for _, s := range monthSales {
		switch s.Status {
		case sales.StatusInstalled:
			installed++
		case sales.StatusCancelled:
			cancelled++
		case sales.StatusProvisioning:
			provisioning++
		case sales.StatusPendingIssue:
			pendingIssue++
		}
	}

	return []KPI{
		{Title: "Melhor Vendedor do Mês", Value: TopAgent(monthSales, agents), Icon: "trophy"},
		{Title: "Vendas Instaladas", Value: strconv.Itoa(installed), Icon: "check_circle"},
		{Title: "Vendas Canceladas", Value: strconv.Itoa(cancelled), Icon: "cancel"},
		{Title: "Em Aprovisionamento", Value: strconv.Itoa(provisioning), Icon: "schedule"},
		{Title: "Pendências", Value: strconv.Itoa(pendingIssue), Icon: "warning"},
		{Title: "Vendedores Ativos", Value: strconv.Itoa(len(agents)), Icon: "group"},
		{Title: "Solicitações Pendentes", Value: strconv.Itoa(len(pending)), Icon: "person_add"},
	}
}

// TopAgent names the agent with the most installed sales in the given set.
// Ties break by higher count first, then lexicographically lowest uid, so
// the card is stable across refreshes.
func TopAgent(monthSales []sales.Sale, agents []users.User) string {
	counts := map[string]int{}
	for _, s := range monthSales {
		if s.Status == sales.StatusInstalled {
			counts[s.AgentUID]++
		}
	}
	if len(counts) == 0 {
		return NobodyYet
	}

	bestUID := ""
	bestCount := -1
	for uid, n := range counts {
		if n > bestCount || (n == bestCount && uid < bestUID) {
			bestUID, bestCount = uid, n
		}
	}

	if name, ok := users.NameByUID(agents)[bestUID]; ok && name != "" {
		return name
	}
	return UnknownAgent
}

// SalesByAgentChartData counts installed sales per agent and returns the
// bars sorted by value desc, then name asc.
func SalesByAgentChartData(monthSales []sales.Sale, agents []users.User) []NameValue {
	names := users.NameByUID(agents)

	counts := map[string]int{}
	for _, s := range monthSales {
		if s.Status != sales.StatusInstalled {
			continue
		}
		name, ok := names[s.AgentUID]
		if !ok || name == "" {
			name = UnknownAgent
		}
		counts[name]++
	}

	out := make([]NameValue, 0, len(counts))
	for name, n := range counts {
		out = append(out, NameValue{Name: name, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ActivityFeed maps the most recent sales into feed rows, resolving agent
// names and attaching the normalized status slug the frontend styles by.
func ActivityFeed(recent []sales.Sale, names map[string]string) []Activity {
	out := make([]Activity, 0, len(recent))
	for _, s := range recent {
		name := names[s.AgentUID]
		if name == "" {
			name = UnknownAgent
		}
		out = append(out, Activity{
			AgentName:  name,
			Status:     s.Status,
			StatusSlug: StatusSlug(s.Status),
			Timestamp:  s.CreatedAt,
		})
	}
	return out
}

// TeamRanking builds the monthly ranking. Every listed user gets a row even
// with zero sales; rows order by installed desc, then total desc, then
// provisioning desc.
func TeamRanking(team []users.User, monthSales []sales.Sale) []RankingRow {
	index := make(map[string]int, len(team))
	rows := make([]RankingRow, 0, len(team))
	for _, u := range team {
		index[u.UID] = len(rows)
		rows = append(rows, RankingRow{UID: u.UID, Name: u.Name})
	}

	for _, s := range monthSales {
		i, ok := index[s.AgentUID]
		if !ok {
			continue
		}
		switch s.Status {
		case sales.StatusInstalled:
			rows[i].Installed++
		case sales.StatusCancelled:
			rows[i].Cancelled++
		case sales.StatusProvisioning:
			rows[i].Provisioning++
		}
	}
	for i := range rows {
		rows[i].Total = rows[i].Installed + rows[i].Cancelled + rows[i].Provisioning
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Installed != rows[j].Installed {
			return rows[i].Installed > rows[j].Installed
		}
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Provisioning > rows[j].Provisioning
	})
	return rows
}

// AgentKPIs summarizes one agent's month. Total counts sales that are live
// or on the way (installed + provisioning); metaProgress is installed over
// the agent's goal as a percentage, zero when no goal is set.
func AgentKPIs(agent users.User, monthSales []sales.Sale) AgentSummary {
	sum := AgentSummary{UID: agent.UID, Name: agent.Name, SalesGoal: agent.SalesGoal}
	for _, s := range monthSales {
		if s.AgentUID != agent.UID {
			continue
		}
		switch s.Status {
		case sales.StatusInstalled:
			sum.Installed++
		case sales.StatusProvisioning:
			sum.Provisioning++
		case sales.StatusCancelled:
			sum.Cancelled++
		case sales.StatusPendingIssue:
			sum.PendingIssue++
		}
	}
	sum.Total = sum.Installed + sum.Provisioning
	if agent.SalesGoal > 0 {
		sum.MetaProgress = float64(sum.Installed) / float64(agent.SalesGoal) * 100
	}
	return sum
}
