package aggregate

import (
	"testing"

	"github.com/cherryapp/cherry-client/internal/api"
)

func TestItemTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []api.MealItem
		wantCalories int
		wantProtein  int
	}{
		{"empty", nil, 0, 0},
		{"single", []api.MealItem{{ItemCalories: 300, ItemProtein: 20}}, 300, 20},
		{
			"several",
			[]api.MealItem{
				{ItemCalories: 300, ItemProtein: 20},
				{ItemCalories: 200, ItemProtein: 10},
				{ItemCalories: 50, ItemProtein: 0},
			},
			550, 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ItemCalories(tt.items); got != tt.wantCalories {
				t.Errorf("ItemCalories = %d, want %d", got, tt.wantCalories)
			}
			if got := ItemProtein(tt.items); got != tt.wantProtein {
				t.Errorf("ItemProtein = %d, want %d", got, tt.wantProtein)
			}
		})
	}
}

func TestMealTotalsMatchItemSums(t *testing.T) {
	// Each meal's denormalized totals are themselves item sums; the date
	// level just adds them up again.
	breakfast := []api.MealItem{{ItemCalories: 250, ItemProtein: 12}, {ItemCalories: 90, ItemProtein: 3}}
	lunch := []api.MealItem{{ItemCalories: 600, ItemProtein: 35}}

	meals := []api.Meal{
		{MealCalories: ItemCalories(breakfast), MealProtein: ItemProtein(breakfast)},
		{MealCalories: ItemCalories(lunch), MealProtein: ItemProtein(lunch)},
	}

	if got := MealCalories(meals); got != 940 {
		t.Errorf("MealCalories = %d, want 940", got)
	}
	if got := MealProtein(meals); got != 50 {
		t.Errorf("MealProtein = %d, want 50", got)
	}
}

func TestTotalsNonNegativeForRealisticItems(t *testing.T) {
	items := []api.MealItem{{ItemCalories: 0, ItemProtein: 0}, {ItemCalories: 1, ItemProtein: 1}}
	if got := ItemCalories(items); got < 0 {
		t.Errorf("ItemCalories = %d, want non-negative", got)
	}
	if got := ItemProtein(items); got < 0 {
		t.Errorf("ItemProtein = %d, want non-negative", got)
	}
}
