package sales

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleUpdateDatesStayTimestamps(t *testing.T) {
	body := `{"saleDate":"2026-01-05T00:00:00Z","status":"Instalada"}`

	var upd SaleUpdate
	require.NoError(t, json.Unmarshal([]byte(body), &upd))

	fields := upd.Fields()
	require.Len(t, fields, 2)

	// The date must reach Firestore as a time.Time, never a string, or the
	// edited sale drops out of every saleDate range query.
	saleDate, ok := fields["saleDate"].(time.Time)
	require.True(t, ok, "saleDate should be a time.Time, got %T", fields["saleDate"])
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), saleDate)
	assert.Equal(t, "Instalada", fields["status"])
}

func TestSaleUpdateIgnoresControlFields(t *testing.T) {
	body := `{"agentUid":"intruder","createdAt":"2020-01-01T00:00:00Z","updatedAt":"2020-01-01T00:00:00Z","notes":"ok"}`

	var upd SaleUpdate
	require.NoError(t, json.Unmarshal([]byte(body), &upd))

	fields := upd.Fields()
	assert.Equal(t, map[string]interface{}{"notes": "ok"}, fields)
}

func TestSaleUpdateEmptyBody(t *testing.T) {
	var upd SaleUpdate
	require.NoError(t, json.Unmarshal([]byte(`{}`), &upd))
	assert.Empty(t, upd.Fields())
}

func TestMonthBoundsEveryMonth(t *testing.T) {
	lastDays := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m := time.January; m <= time.December; m++ {
		start, end := MonthBounds(2026, m)
		assert.Equal(t, 1, start.Day())
		assert.Equal(t, m, start.Month())
		assert.Equal(t, lastDays[m-1], end.Day(), "month %s", m)
		assert.Equal(t, m, end.Month(), "month %s", m)
		assert.Equal(t, 23, end.Hour())
	}
}
