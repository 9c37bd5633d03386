package models

import "time"

// Expenditure is a single spending record owned by exactly one user.
type Expenditure struct {
	ID              string    `json:"id"`
	UserID          string    `json:"-"` // owner; never taken from the client
	Category        string    `json:"category"`
	NameOfItem      string    `json:"nameOfItem"`
	EstimatedAmount float64   `json:"estimatedAmount"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}
