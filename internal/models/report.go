package models

// FuelTypeTotal is one row of the sales-by-type report.
type FuelTypeTotal struct {
	FuelType      string  `json:"fuel_type" db:"fuel_type"`
	TotalQuantity float64 `json:"total_quantity" db:"total_quantity"`
}

// DailyTotal is one row of the sales-over-time report. TotalSales is the
// summed quantity*price for the day.
type DailyTotal struct {
	Date       string  `json:"date" db:"date"`
	TotalSales float64 `json:"total_sales" db:"total_sales"`
}

// FuelTypeReport is one row of the combined report.
type FuelTypeReport struct {
	FuelType      string  `json:"fuel_type" db:"fuel_type"`
	TotalQuantity float64 `json:"total_quantity" db:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue" db:"total_revenue"`
}
