package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	Username    string    `json:"username" db:"username"`         // Primary key
	Email       string    `json:"email" db:"email"`               // Unique email
	PhoneNumber *string   `json:"phone_number" db:"phone_number"` // Optional unique phone number
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}
