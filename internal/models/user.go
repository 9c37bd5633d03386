package models

import "time"

// User is an account holder. Email is the login identifier; Username is for display.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
