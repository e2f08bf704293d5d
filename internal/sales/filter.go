package sales

import (
	"strings"
	"time"
)

// Predefined period shortcuts for the sales-management view.
const (
	PeriodFilterDay       = "day"
	PeriodFilterYesterday = "yesterday"
	PeriodFilterWeek      = "week"
	PeriodFilterMonth     = "month"
)

// PeriodBounds resolves a period shortcut to the [start, end] pair consumed
// by FilterByDateRange. The week runs Sunday through Saturday; month is the
// current calendar month. ok is false for an unknown shortcut.
func PeriodBounds(period string, now time.Time) (start, end time.Time, ok bool) {
	switch period {
	case PeriodFilterDay:
		start, end = DayBounds(now)
	case PeriodFilterYesterday:
		start, end = DayBounds(now.AddDate(0, 0, -1))
	case PeriodFilterWeek:
		firstDay := now.AddDate(0, 0, -int(now.Weekday()))
		lastDay := firstDay.AddDate(0, 0, 6)
		start, _ = DayBounds(firstDay)
		_, end = DayBounds(lastDay)
	case PeriodFilterMonth:
		start, end = MonthBounds(now.Year(), now.Month())
	default:
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// FilterByDateRange keeps sales whose saleDate falls inside [start, end].
// The end bound is extended to the last millisecond of its day so a range
// picked by calendar date is inclusive.
func FilterByDateRange(list []Sale, start, end time.Time) []Sale {
	if start.IsZero() || end.IsZero() {
		return list
	}

	inclusiveEnd := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, end.Location())

	out := make([]Sale, 0, len(list))
	for _, s := range list {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(inclusiveEnd) {
			out = append(out, s)
		}
	}
	return out
}

// FilterByText keeps sales whose concatenated agent name, CPF/CNPJ, ticket
// and OS contain the query, case-insensitively.
func FilterByText(list []Sale, query string) []Sale {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	out := make([]Sale, 0, len(list))
	for _, s := range list {
		haystack := strings.ToLower(s.AgentName + s.CustomerCpfCnpj + s.Ticket + s.OS)
		if strings.Contains(haystack, q) {
			out = append(out, s)
		}
	}
	return out
}
