package models

import (
	"time"
)

type Meal struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	IsOnDiet    bool      `json:"is_on_diet" db:"is_on_diet"`
	Time        time.Time `json:"time" db:"time"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UserID      string    `json:"user_id" db:"user_id"`
}
