package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/LucieneFagundes/daily-diet-api/internal/models"
)

// MealPatch carries the mutable meal fields for a partial update. Nil fields
// keep their stored value.
type MealPatch struct {
	Name        *string
	Description *string
	IsOnDiet    *bool
	Time        *time.Time
}

// MealStore is the persistence collaborator for meals. Every filter pairs
// the meal id with the owning user id; there is no way to address a meal by
// id alone.
type MealStore interface {
	Create(ownerID, name, description string, isOnDiet bool, mealTime time.Time) (models.Meal, error)
	ListByOwner(ownerID string, limit, offset int) ([]models.Meal, int64, error)
	History(ownerID string) ([]models.Meal, error)
	GetByID(id, ownerID string) (models.Meal, error)
	Update(id, ownerID string, patch MealPatch) error
	Delete(id, ownerID string) error
}

type SQLMealStore struct {
	db *sql.DB
}

func NewMealStore(db *sql.DB) *SQLMealStore {
	return &SQLMealStore{db: db}
}

func (s *SQLMealStore) Create(ownerID, name, description string, isOnDiet bool, mealTime time.Time) (models.Meal, error) {
	meal := models.Meal{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		IsOnDiet:    isOnDiet,
		Time:        mealTime,
		UserID:      ownerID,
	}

	query := `INSERT INTO meals (id, name, description, is_on_diet, "time", user_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	err := s.db.QueryRow(query, meal.ID, name, description, isOnDiet, mealTime, ownerID).Scan(&meal.CreatedAt)
	if err != nil {
		return models.Meal{}, fmt.Errorf("insert meal: %w", err)
	}

	return meal, nil
}

// ListByOwner returns one page of the user's meals, newest first, along with
// the total count for pagination.
func (s *SQLMealStore) ListByOwner(ownerID string, limit, offset int) ([]models.Meal, int64, error) {
	var total int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM meals WHERE user_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count meals: %w", err)
	}

	query := `
		SELECT id, name, description, is_on_diet, "time", created_at, user_id
		FROM meals
		WHERE user_id = $1
		ORDER BY "time" DESC, created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := s.db.Query(query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select meals: %w", err)
	}
	defer rows.Close()

	meals, err := scanMeals(rows)
	if err != nil {
		return nil, 0, err
	}
	return meals, total, nil
}

// History returns the user's complete meal log ascending by meal time.
// Ties fall back to creation order so the sequence is stable regardless of
// physical row order, which the adherence summary depends on.
func (s *SQLMealStore) History(ownerID string) ([]models.Meal, error) {
	query := `
		SELECT id, name, description, is_on_diet, "time", created_at, user_id
		FROM meals
		WHERE user_id = $1
		ORDER BY "time" ASC, created_at ASC, id ASC
	`
	rows, err := s.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select meal history: %w", err)
	}
	defer rows.Close()

	return scanMeals(rows)
}

func (s *SQLMealStore) GetByID(id, ownerID string) (models.Meal, error) {
	var meal models.Meal
	query := `
		SELECT id, name, description, is_on_diet, "time", created_at, user_id
		FROM meals
		WHERE id = $1 AND user_id = $2
	`
	err := s.db.QueryRow(query, id, ownerID).Scan(
		&meal.ID,
		&meal.Name,
		&meal.Description,
		&meal.IsOnDiet,
		&meal.Time,
		&meal.CreatedAt,
		&meal.UserID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Meal{}, ErrNotFound
		}
		return models.Meal{}, fmt.Errorf("select meal: %w", err)
	}
	return meal, nil
}

// Update applies a partial patch to one owned meal. Zero affected rows means
// the meal does not exist or belongs to someone else; both surface as
// ErrNotFound.
func (s *SQLMealStore) Update(id, ownerID string, patch MealPatch) error {
	query := `
		UPDATE meals
		SET
			name = COALESCE($1, name),
			description = COALESCE($2, description),
			is_on_diet = COALESCE($3, is_on_diet),
			"time" = COALESCE($4, "time")
		WHERE id = $5 AND user_id = $6
	`
	result, err := s.db.Exec(query, patch.Name, patch.Description, patch.IsOnDiet, patch.Time, id, ownerID)
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update meal rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLMealStore) Delete(id, ownerID string) error {
	result, err := s.db.Exec(`DELETE FROM meals WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete meal rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMeals(rows *sql.Rows) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	for rows.Next() {
		var meal models.Meal
		err := rows.Scan(
			&meal.ID,
			&meal.Name,
			&meal.Description,
			&meal.IsOnDiet,
			&meal.Time,
			&meal.CreatedAt,
			&meal.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return meals, nil
}
