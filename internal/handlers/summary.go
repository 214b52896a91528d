package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucieneFagundes/daily-diet-api/internal/diet"
)

// Summary reports the caller's diet adherence over their full meal history.
// The store returns the history ascending by meal time, which is the order
// the streak computation is defined over.
func (h *MealHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	meals, err := h.meals.History(userID)
	if err != nil {
		log.Printf("Error retrieving meal history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving meal history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": diet.Summarize(meals)})
}
