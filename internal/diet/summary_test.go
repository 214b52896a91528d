package diet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LucieneFagundes/daily-diet-api/internal/models"
)

func mealsFromPattern(pattern []bool) []models.Meal {
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	meals := make([]models.Meal, 0, len(pattern))
	for i, onDiet := range pattern {
		meals = append(meals, models.Meal{
			Name:     "meal",
			IsOnDiet: onDiet,
			Time:     base.Add(time.Duration(i) * time.Hour),
		})
	}
	return meals
}

func TestSummarize(t *testing.T) {
	y, n := true, false

	tests := []struct {
		name    string
		pattern []bool
		want    Summary
	}{
		{
			name:    "empty history",
			pattern: nil,
			want:    Summary{},
		},
		{
			name:    "mixed run in the middle",
			pattern: []bool{y, y, n, y, y, y, n, y},
			want: Summary{
				TotalMeals:          8,
				TotalMealsOnDiet:    6,
				TotalMealsNotOnDiet: 2,
				BestSequence:        3,
			},
		},
		{
			name:    "all on diet keeps trailing run",
			pattern: []bool{y, y, y},
			want: Summary{
				TotalMeals:       3,
				TotalMealsOnDiet: 3,
				BestSequence:     3,
			},
		},
		{
			name:    "all off diet",
			pattern: []bool{n, n},
			want: Summary{
				TotalMeals:          2,
				TotalMealsNotOnDiet: 2,
			},
		},
		{
			name:    "single on-diet meal is a run of one",
			pattern: []bool{y},
			want: Summary{
				TotalMeals:       1,
				TotalMealsOnDiet: 1,
				BestSequence:     1,
			},
		},
		{
			name:    "run broken right at the end",
			pattern: []bool{y, y, n},
			want: Summary{
				TotalMeals:          3,
				TotalMealsOnDiet:    2,
				TotalMealsNotOnDiet: 1,
				BestSequence:        2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(mealsFromPattern(tt.pattern))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizeIsPure(t *testing.T) {
	meals := mealsFromPattern([]bool{true, false, true, true})

	first := Summarize(meals)
	second := Summarize(meals)

	require.Equal(t, first, second)
	require.Equal(t, 2, first.BestSequence)
}
