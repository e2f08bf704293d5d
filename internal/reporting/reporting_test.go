package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nio-salesdesk/salesdesk-backend/internal/sales"
	"github.com/nio-salesdesk/salesdesk-backend/internal/users"
)

func installed(uid string) sales.Sale {
	return sales.Sale{AgentUID: uid, Status: sales.StatusInstalled}
}

func withStatus(uid, status string) sales.Sale {
	return sales.Sale{AgentUID: uid, Status: status}
}

var team = []users.User{
	{UID: "a1", Name: "Ana", SalesGoal: 26},
	{UID: "b2", Name: "Bruno", SalesGoal: 26},
	{UID: "c3", Name: "Carla", SalesGoal: 10},
}

func TestStatusSlug(t *testing.T) {
	assert.Equal(t, "em-aprovisionamento", StatusSlug("Em Aprovisionamento"))
	assert.Equal(t, "pendencia", StatusSlug("Pendência"))
	assert.Equal(t, "instalada", StatusSlug("Instalada"))
	assert.Equal(t, "cancelada", StatusSlug("Cancelada"))
	assert.Equal(t, "draft", StatusSlug("Draft"))
	assert.Equal(t, "", StatusSlug(""))
}

func TestTopAgent(t *testing.T) {
	assert.Equal(t, NobodyYet, TopAgent(nil, team))

	// Only installed sales count.
	monthSales := []sales.Sale{withStatus("a1", sales.StatusCancelled)}
	assert.Equal(t, NobodyYet, TopAgent(monthSales, team))

	monthSales = []sales.Sale{installed("a1"), installed("b2"), installed("b2")}
	assert.Equal(t, "Bruno", TopAgent(monthSales, team))

	// Tie breaks to the lexicographically lowest uid.
	monthSales = []sales.Sale{installed("b2"), installed("a1")}
	assert.Equal(t, "Ana", TopAgent(monthSales, team))

	// Winner without a profile degrades to the sentinel.
	monthSales = []sales.Sale{installed("ghost")}
	assert.Equal(t, UnknownAgent, TopAgent(monthSales, team))
}

func TestComputeKPIs(t *testing.T) {
	monthSales := []sales.Sale{
		installed("a1"),
		installed("a1"),
		withStatus("b2", sales.StatusCancelled),
		withStatus("b2", sales.StatusProvisioning),
		withStatus("c3", sales.StatusPendingIssue),
		withStatus("c3", sales.StatusDraft),
	}
	pending := []users.User{{UID: "p1"}}

	kpis := ComputeKPIs(pending, team, monthSales)
	require.Len(t, kpis, 7)

	byTitle := map[string]string{}
	for _, k := range kpis {
		byTitle[k.Title] = k.Value
	}
	assert.Equal(t, "Ana", byTitle["Melhor Vendedor do Mês"])
	assert.Equal(t, "2", byTitle["Vendas Instaladas"])
	assert.Equal(t, "1", byTitle["Vendas Canceladas"])
	assert.Equal(t, "1", byTitle["Em Aprovisionamento"])
	assert.Equal(t, "1", byTitle["Pendências"])
	assert.Equal(t, "3", byTitle["Vendedores Ativos"])
	assert.Equal(t, "1", byTitle["Solicitações Pendentes"])
}

func TestSalesByAgentChartData(t *testing.T) {
	monthSales := []sales.Sale{
		installed("a1"),
		installed("b2"), installed("b2"),
		withStatus("a1", sales.StatusCancelled),
		installed("ghost"),
	}

	chart := SalesByAgentChartData(monthSales, team)
	require.Len(t, chart, 3)
	assert.Equal(t, NameValue{Name: "Bruno", Value: 2}, chart[0])
	// Equal counts order by name.
	assert.Equal(t, NameValue{Name: "Ana", Value: 1}, chart[1])
	assert.Equal(t, NameValue{Name: UnknownAgent, Value: 1}, chart[2])
}

func TestActivityFeed(t *testing.T) {
	created := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	recent := []sales.Sale{
		{AgentUID: "a1", Status: sales.StatusPendingIssue, CreatedAt: created},
		{AgentUID: "ghost", Status: sales.StatusInstalled},
	}

	feed := ActivityFeed(recent, users.NameByUID(team))
	require.Len(t, feed, 2)
	assert.Equal(t, "Ana", feed[0].AgentName)
	assert.Equal(t, "pendencia", feed[0].StatusSlug)
	assert.Equal(t, created, feed[0].Timestamp)
	assert.Equal(t, UnknownAgent, feed[1].AgentName)
}

func TestTeamRanking(t *testing.T) {
	monthSales := []sales.Sale{
		installed("a1"),
		installed("b2"),
		withStatus("b2", sales.StatusCancelled),
		withStatus("c3", sales.StatusProvisioning),
		withStatus("ghost", sales.StatusInstalled),
	}

	rows := TeamRanking(team, monthSales)
	require.Len(t, rows, 3)

	// a1 and b2 both have 1 installed, but b2 has a larger total.
	assert.Equal(t, "b2", rows[0].UID)
	assert.Equal(t, 2, rows[0].Total)
	assert.Equal(t, "a1", rows[1].UID)

	// Zero-sale agents still get a row.
	assert.Equal(t, "c3", rows[2].UID)
	assert.Equal(t, 0, rows[2].Installed)
	assert.Equal(t, 1, rows[2].Provisioning)
	assert.Equal(t, 1, rows[2].Total)
}

func TestTeamRankingProvisioningTieBreak(t *testing.T) {
	duo := []users.User{{UID: "x", Name: "X"}, {UID: "y", Name: "Y"}}
	monthSales := []sales.Sale{
		withStatus("x", sales.StatusCancelled),
		withStatus("y", sales.StatusProvisioning),
	}

	rows := TeamRanking(duo, monthSales)
	// Same installed, same total, more provisioning wins.
	assert.Equal(t, "y", rows[0].UID)
}

func TestAgentKPIs(t *testing.T) {
	agent := users.User{UID: "c3", Name: "Carla", SalesGoal: 10}
	monthSales := []sales.Sale{
		installed("c3"), installed("c3"),
		withStatus("c3", sales.StatusProvisioning),
		withStatus("c3", sales.StatusCancelled),
		withStatus("c3", sales.StatusPendingIssue),
		installed("a1"), // someone else's sale
	}

	sum := AgentKPIs(agent, monthSales)
	assert.Equal(t, 2, sum.Installed)
	assert.Equal(t, 1, sum.Provisioning)
	assert.Equal(t, 1, sum.Cancelled)
	assert.Equal(t, 1, sum.PendingIssue)
	assert.Equal(t, 3, sum.Total)
	assert.InDelta(t, 20.0, sum.MetaProgress, 0.001)

	// No goal means no progress, not a division by zero.
	sum = AgentKPIs(users.User{UID: "c3"}, monthSales)
	assert.Zero(t, sum.MetaProgress)
}
