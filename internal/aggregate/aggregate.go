// Package aggregate holds the pure reductions behind every denormalized
// total in the tracking model. Calories and protein are integer units
// (kcal, grams) end to end, so the sums are exact.
package aggregate

import "github.com/cherryapp/cherry-client/internal/api"

// ItemCalories sums the calories of a meal's items.
func ItemCalories(items []api.MealItem) int {
	total := 0
	for _, item := range items {
		total += item.ItemCalories
	}
	return total
}

// ItemProtein sums the protein grams of a meal's items.
func ItemProtein(items []api.MealItem) int {
	total := 0
	for _, item := range items {
		total += item.ItemProtein
	}
	return total
}

// MealCalories sums the denormalized calorie totals of a date's meals.
func MealCalories(meals []api.Meal) int {
	total := 0
	for _, meal := range meals {
		total += meal.MealCalories
	}
	return total
}

// MealProtein sums the denormalized protein totals of a date's meals.
func MealProtein(meals []api.Meal) int {
	total := 0
	for _, meal := range meals {
		total += meal.MealProtein
	}
	return total
}
