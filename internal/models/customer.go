package models

// Customer is a loyalty account keyed by its unique name.
type Customer struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Points int64  `json:"points" db:"points"`
}
