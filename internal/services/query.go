package services

import (
	"strings"
)

const (
	FilterAllTime = "alltime"
	FilterCustom  = "custom"
)

// DateFilter restricts report aggregation to an inclusive date range when
// Mode is custom.
type DateFilter struct {
	Mode      string
	StartDate string
	EndDate   string
}

// Validate checks that a custom range carries both bounds. Any mode other
// than custom, including an unknown one, is normalised to alltime.
func (f *DateFilter) Validate() error {
	f.Mode = strings.TrimSpace(f.Mode)
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.EndDate = strings.TrimSpace(f.EndDate)

	if f.Mode != FilterCustom {
		f.Mode = FilterAllTime
		return nil
	}
	if f.StartDate == "" || f.EndDate == "" {
		return &ValidationError{
			Message: "Both start_date and end_date are required for custom filter",
			Details: map[string]string{"start_date": "required", "end_date": "required"},
		}
	}
	return nil
}

// Predicate returns the WHERE fragment and its arguments, or an empty clause
// for alltime.
func (f DateFilter) Predicate() (string, []any) {
	if f.Mode != FilterCustom {
		return "", nil
	}
	return "date BETWEEN ? AND ?", []any{f.StartDate, f.EndDate}
}

// aggregateQuery composes a SELECT over sales with an optional date filter.
type aggregateQuery struct {
	columns []string
	groupBy string
	orderBy string
	filter  DateFilter
}

func (q aggregateQuery) build() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(q.columns, ", "))
	b.WriteString(" FROM sales")

	where, args := q.filter.Predicate()
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if q.groupBy != "" {
		b.WriteString(" GROUP BY ")
		b.WriteString(q.groupBy)
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}
	return b.String(), args
}
