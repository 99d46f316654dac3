package models

// Sale is a single fuel sale in the ledger. Date is kept in its sortable
// text form (YYYY-MM-DD) so range filters compare lexicographically.
type Sale struct {
	ID       int64   `json:"id" db:"id"`
	FuelType string  `json:"fuel_type" db:"fuel_type"`
	Quantity float64 `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
	Date     string  `json:"date" db:"date"`
}
