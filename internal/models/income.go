package models

import "time"

// Income is a single revenue record owned by exactly one user.
// JSON field names follow the public API (camelCase).
type Income struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"` // owner; never taken from the client
	NameOfRevenue string    `json:"nameOfRevenue"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
