package models

import (
	"time"
)

// User represents a registered account. Password always holds the bcrypt
// hash, never the plaintext, and is omitted from responses.
type User struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username" validate:"required,min=5,max=50"`
	Password  string    `json:"-" db:"password" validate:"required,min=8"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
