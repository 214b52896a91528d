// Package diet computes adherence statistics over a user's meal history.
package diet

import (
	"github.com/LucieneFagundes/daily-diet-api/internal/models"
)

// Summary is the adherence report for one user's full meal log.
type Summary struct {
	TotalMeals          int `json:"total_meals"`
	TotalMealsOnDiet    int `json:"total_meals_on_diet"`
	TotalMealsNotOnDiet int `json:"total_meals_not_on_diet"`
	BestSequence        int `json:"best_sequence"`
}

// Summarize walks the meals once and tallies totals plus the longest
// contiguous on-diet run. The input must already be ordered ascending by
// meal time (the store's History guarantees a stable order), so the result
// is deterministic for a given log. A trailing run is captured because the
// best value is raised as the run grows, not only when it breaks.
func Summarize(meals []models.Meal) Summary {
	var summary Summary
	currentRun := 0

	for _, meal := range meals {
		summary.TotalMeals++
		if meal.IsOnDiet {
			summary.TotalMealsOnDiet++
			currentRun++
			if currentRun > summary.BestSequence {
				summary.BestSequence = currentRun
			}
		} else {
			summary.TotalMealsNotOnDiet++
			currentRun = 0
		}
	}

	return summary
}
