package tracking

import (
	"context"

	"github.com/cherryapp/cherry-client/internal/api"
)

// Client is the slice of the remote API the tracking sessions need.
// *api.Client satisfies it; tests substitute mocks.
type Client interface {
	GetOrCreateDate(ctx context.Context, auth api.Auth, date string) (api.DateRecord, error)
	UpdateUserWeight(ctx context.Context, auth api.Auth, weight string) (api.User, error)
	UpdateDateWeight(ctx context.Context, auth api.Auth, dateID, weight string) (api.DateRecord, error)
	UpdateDateNutrition(ctx context.Context, auth api.Auth, dateID string, calories, protein int) (api.DateRecord, error)
	GetMeals(ctx context.Context, auth api.Auth, dateID string) ([]api.Meal, error)
	CreateMeal(ctx context.Context, auth api.Auth, req api.CreateMealRequest) (api.Meal, error)
	DeleteMeal(ctx context.Context, auth api.Auth, mealID string) error
	UpdateMealNutrition(ctx context.Context, auth api.Auth, mealID string, calories, protein int) (api.Meal, error)
	GetMealItems(ctx context.Context, auth api.Auth, mealID string) ([]api.MealItem, error)
	CreateMealItem(ctx context.Context, auth api.Auth, item api.MealItem) (api.MealItem, error)
	DeleteMealItem(ctx context.Context, auth api.Auth, itemID string) error
	GetMealItemRecents(ctx context.Context, auth api.Auth) ([]api.MealItem, error)
	TextNutrition(ctx context.Context, auth api.Auth, foodEntry string) (api.NutritionEstimate, error)
	ImageNutrition(ctx context.Context, auth api.Auth, imageBase64 string) (api.NutritionEstimate, error)
}

var _ Client = (*api.Client)(nil)
