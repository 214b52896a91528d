package database

import (
	"database/sql"
	"fmt"
)

// CreateTables creates all required tables in the database
func CreateTables(db *sql.DB) error {
	if err := createUsersTable(db); err != nil {
		return err
	}
	return createMealsTable(db)
}

func createUsersTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func createMealsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS meals (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_on_diet BOOLEAN NOT NULL DEFAULT FALSE,
		"time" TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_meals_user_time ON meals (user_id, "time");
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create meals table: %w", err)
	}
	return nil
}
