package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LucieneFagundes/daily-diet-api/internal/middleware"
	"github.com/LucieneFagundes/daily-diet-api/internal/store"
)

type MealHandler struct {
	meals store.MealStore
}

func NewMealHandler(meals store.MealStore) *MealHandler {
	return &MealHandler{meals: meals}
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

type createMealRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsOnDiet    *bool      `json:"is_on_diet"`
	Time        *time.Time `json:"time"`
}

// CreateMeal records a new meal for the authenticated user.
func (h *MealHandler) CreateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal name is required", "field": "name"})
		return
	}
	if req.IsOnDiet == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Diet flag is required", "field": "is_on_diet"})
		return
	}
	if req.Time == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal time is required", "field": "time"})
		return
	}

	meal, err := h.meals.Create(userID, name, strings.TrimSpace(req.Description), *req.IsOnDiet, *req.Time)
	if err != nil {
		log.Printf("Error creating meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating meal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal created successfully",
		"meal_id": meal.ID,
		"meal":    meal,
	})
}

// ListMeals returns one page of the user's meals, newest first.
func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := parseListQueryParams(c.Query("limit"), c.Query("offset"))

	meals, total, err := h.meals.ListByOwner(userID, params.Limit, params.Offset)
	if err != nil {
		log.Printf("Error retrieving meals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals":  meals,
		"count":  len(meals),
		"total":  total,
		"limit":  params.Limit,
		"offset": params.Offset,
	})
}

// GetMeal returns a single meal owned by the caller. A meal owned by someone
// else answers exactly like a missing one.
func (h *MealHandler) GetMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	meal, err := h.meals.GetByID(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		log.Printf("Error retrieving meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

type updateMealRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	IsOnDiet    *bool      `json:"is_on_diet"`
	Time        *time.Time `json:"time"`
}

// UpdateMeal applies a partial update to one owned meal.
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Name == nil && req.Description == nil && req.IsOnDiet == nil && req.Time == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Meal name is required", "field": "name"})
			return
		}
		req.Name = &trimmed
	}

	patch := store.MealPatch{
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    req.IsOnDiet,
		Time:        req.Time,
	}

	if err := h.meals.Update(c.Param("id"), userID, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		log.Printf("Error updating meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal updated successfully"})
}

// DeleteMeal removes one owned meal. Deleting an already-deleted meal gets a
// clean 404, never an ambiguous failure.
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.meals.Delete(c.Param("id"), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		log.Printf("Error deleting meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
