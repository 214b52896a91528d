package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/LucieneFagundes/daily-diet-api/internal/models"
)

// UserStore is the persistence collaborator for user accounts.
type UserStore interface {
	Create(username, passwordHash string) (models.User, error)
	GetByUsername(username string) (models.User, error)
}

type SQLUserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *SQLUserStore {
	return &SQLUserStore{db: db}
}

// Create inserts a new user with a fresh UUID. A username collision is
// reported as ErrDuplicate.
func (s *SQLUserStore) Create(username, passwordHash string) (models.User, error) {
	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
	}

	query := `INSERT INTO users (id, username, password) VALUES ($1, $2, $3) RETURNING created_at`
	err := s.db.QueryRow(query, user.ID, username, passwordHash).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (s *SQLUserStore) GetByUsername(username string) (models.User, error) {
	var user models.User
	query := `SELECT id, username, password, created_at FROM users WHERE username = $1`
	err := s.db.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user by username: %w", err)
	}
	return user, nil
}

