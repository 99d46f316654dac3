package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  DateFilter
		mode    string
		wantErr string
	}{
		{name: "empty defaults to alltime", filter: DateFilter{}, mode: FilterAllTime},
		{name: "alltime ignores dates", filter: DateFilter{Mode: "alltime", StartDate: "2024-01-01"}, mode: FilterAllTime},
		{name: "custom with both dates", filter: DateFilter{Mode: "custom", StartDate: "2024-01-01", EndDate: "2024-01-31"}, mode: FilterCustom},
		{name: "custom without start", filter: DateFilter{Mode: "custom", EndDate: "2024-01-31"}, wantErr: "Both start_date and end_date are required for custom filter"},
		{name: "custom without end", filter: DateFilter{Mode: "custom", StartDate: "2024-01-01"}, wantErr: "Both start_date and end_date are required for custom filter"},
		{name: "custom with blank dates", filter: DateFilter{Mode: "custom", StartDate: " ", EndDate: " "}, wantErr: "Both start_date and end_date are required for custom filter"},
		{name: "unknown mode falls back to alltime", filter: DateFilter{Mode: "weekly", StartDate: "2024-01-01"}, mode: FilterAllTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filter
			err := f.Validate()
			if tt.wantErr != "" {
				var validationErr *ValidationError
				assert.True(t, errors.As(err, &validationErr))
				assert.Equal(t, tt.wantErr, validationErr.Message)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.mode, f.Mode)
		})
	}
}

func TestDateFilter_Predicate(t *testing.T) {
	where, args := DateFilter{Mode: FilterAllTime, StartDate: "2024-01-01", EndDate: "2024-01-31"}.Predicate()
	assert.Empty(t, where)
	assert.Nil(t, args)

	where, args = DateFilter{Mode: FilterCustom, StartDate: "2024-01-01", EndDate: "2024-01-31"}.Predicate()
	assert.Equal(t, "date BETWEEN ? AND ?", where)
	assert.Equal(t, []any{"2024-01-01", "2024-01-31"}, args)
}

func TestAggregateQuery_Build(t *testing.T) {
	t.Run("without filter", func(t *testing.T) {
		query, args := aggregateQuery{
			columns: []string{"date", "SUM(quantity * price) AS total_sales"},
			groupBy: "date",
			orderBy: "date ASC",
		}.build()

		assert.Equal(t, "SELECT date, SUM(quantity * price) AS total_sales FROM sales GROUP BY date ORDER BY date ASC", query)
		assert.Empty(t, args)
	})

	t.Run("with custom range", func(t *testing.T) {
		query, args := aggregateQuery{
			columns: []string{"fuel_type", "SUM(quantity) AS total_quantity"},
			groupBy: "fuel_type",
			filter:  DateFilter{Mode: FilterCustom, StartDate: "2024-03-01", EndDate: "2024-03-02"},
		}.build()

		assert.Equal(t, "SELECT fuel_type, SUM(quantity) AS total_quantity FROM sales WHERE date BETWEEN ? AND ? GROUP BY fuel_type", query)
		assert.Equal(t, []any{"2024-03-01", "2024-03-02"}, args)
	})
}
