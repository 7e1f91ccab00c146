package tracking

import (
	"context"
	"fmt"

	"github.com/cherryapp/cherry-client/internal/api"
)

// mockClient is a Client with overridable func fields and a per-operation
// call counter. Defaults behave like a well-formed backend.
type mockClient struct {
	calls map[string]int

	date  api.DateRecord
	meals []api.Meal
	items []api.MealItem

	getOrCreateDateFunc     func(ctx context.Context, auth api.Auth, date string) (api.DateRecord, error)
	updateUserWeightFunc    func(ctx context.Context, auth api.Auth, weight string) (api.User, error)
	updateDateWeightFunc    func(ctx context.Context, auth api.Auth, dateID, weight string) (api.DateRecord, error)
	updateDateNutritionFunc func(ctx context.Context, auth api.Auth, dateID string, calories, protein int) (api.DateRecord, error)
	getMealsFunc            func(ctx context.Context, auth api.Auth, dateID string) ([]api.Meal, error)
	createMealFunc          func(ctx context.Context, auth api.Auth, req api.CreateMealRequest) (api.Meal, error)
	deleteMealFunc          func(ctx context.Context, auth api.Auth, mealID string) error
	updateMealNutritionFunc func(ctx context.Context, auth api.Auth, mealID string, calories, protein int) (api.Meal, error)
	getMealItemsFunc        func(ctx context.Context, auth api.Auth, mealID string) ([]api.MealItem, error)
	createMealItemFunc      func(ctx context.Context, auth api.Auth, item api.MealItem) (api.MealItem, error)
	deleteMealItemFunc      func(ctx context.Context, auth api.Auth, itemID string) error
	getMealItemRecentsFunc  func(ctx context.Context, auth api.Auth) ([]api.MealItem, error)
	textNutritionFunc       func(ctx context.Context, auth api.Auth, foodEntry string) (api.NutritionEstimate, error)
	imageNutritionFunc      func(ctx context.Context, auth api.Auth, imageBase64 string) (api.NutritionEstimate, error)
}

func newMockClient() *mockClient {
	return &mockClient{
		calls: make(map[string]int),
		date: api.DateRecord{
			UserID:        "u1",
			DateID:        "d1",
			Date:          "2026-08-30",
			DailyWeight:   "180",
			DailyCalories: "0",
			DailyProtein:  "0",
		},
	}
}

func (m *mockClient) record(op string) { m.calls[op]++ }

func (m *mockClient) GetOrCreateDate(ctx context.Context, auth api.Auth, date string) (api.DateRecord, error) {
	m.record("GetOrCreateDate")
	if m.getOrCreateDateFunc != nil {
		return m.getOrCreateDateFunc(ctx, auth, date)
	}
	rec := m.date
	rec.Date = date
	return rec, nil
}

func (m *mockClient) UpdateUserWeight(ctx context.Context, auth api.Auth, weight string) (api.User, error) {
	m.record("UpdateUserWeight")
	if m.updateUserWeightFunc != nil {
		return m.updateUserWeightFunc(ctx, auth, weight)
	}
	return api.User{UserID: auth.UserID, Weight: weight}, nil
}

func (m *mockClient) UpdateDateWeight(ctx context.Context, auth api.Auth, dateID, weight string) (api.DateRecord, error) {
	m.record("UpdateDateWeight")
	if m.updateDateWeightFunc != nil {
		return m.updateDateWeightFunc(ctx, auth, dateID, weight)
	}
	m.date.DailyWeight = weight
	return m.date, nil
}

func (m *mockClient) UpdateDateNutrition(ctx context.Context, auth api.Auth, dateID string, calories, protein int) (api.DateRecord, error) {
	m.record("UpdateDateNutrition")
	if m.updateDateNutritionFunc != nil {
		return m.updateDateNutritionFunc(ctx, auth, dateID, calories, protein)
	}
	m.date.DailyCalories = fmt.Sprintf("%d", calories)
	m.date.DailyProtein = fmt.Sprintf("%d", protein)
	return m.date, nil
}

func (m *mockClient) GetMeals(ctx context.Context, auth api.Auth, dateID string) ([]api.Meal, error) {
	m.record("GetMeals")
	if m.getMealsFunc != nil {
		return m.getMealsFunc(ctx, auth, dateID)
	}
	return m.meals, nil
}

func (m *mockClient) CreateMeal(ctx context.Context, auth api.Auth, req api.CreateMealRequest) (api.Meal, error) {
	m.record("CreateMeal")
	if m.createMealFunc != nil {
		return m.createMealFunc(ctx, auth, req)
	}
	return api.Meal{
		MealID:   fmt.Sprintf("m%d", m.calls["CreateMeal"]),
		MealName: req.MealName,
		UserID:   req.UserID,
		DateID:   req.DateID,
		Time:     req.Time,
	}, nil
}

func (m *mockClient) DeleteMeal(ctx context.Context, auth api.Auth, mealID string) error {
	m.record("DeleteMeal")
	if m.deleteMealFunc != nil {
		return m.deleteMealFunc(ctx, auth, mealID)
	}
	return nil
}

func (m *mockClient) UpdateMealNutrition(ctx context.Context, auth api.Auth, mealID string, calories, protein int) (api.Meal, error) {
	m.record("UpdateMealNutrition")
	if m.updateMealNutritionFunc != nil {
		return m.updateMealNutritionFunc(ctx, auth, mealID, calories, protein)
	}
	return api.Meal{MealID: mealID, MealCalories: calories, MealProtein: protein}, nil
}

func (m *mockClient) GetMealItems(ctx context.Context, auth api.Auth, mealID string) ([]api.MealItem, error) {
	m.record("GetMealItems")
	if m.getMealItemsFunc != nil {
		return m.getMealItemsFunc(ctx, auth, mealID)
	}
	return m.items, nil
}

func (m *mockClient) CreateMealItem(ctx context.Context, auth api.Auth, item api.MealItem) (api.MealItem, error) {
	m.record("CreateMealItem")
	if m.createMealItemFunc != nil {
		return m.createMealItemFunc(ctx, auth, item)
	}
	item.ItemID = fmt.Sprintf("i%d", m.calls["CreateMealItem"])
	item.CreatedTS = "2026-08-30T12:00:00Z"
	return item, nil
}

func (m *mockClient) DeleteMealItem(ctx context.Context, auth api.Auth, itemID string) error {
	m.record("DeleteMealItem")
	if m.deleteMealItemFunc != nil {
		return m.deleteMealItemFunc(ctx, auth, itemID)
	}
	return nil
}

func (m *mockClient) GetMealItemRecents(ctx context.Context, auth api.Auth) ([]api.MealItem, error) {
	m.record("GetMealItemRecents")
	if m.getMealItemRecentsFunc != nil {
		return m.getMealItemRecentsFunc(ctx, auth)
	}
	return m.items, nil
}

func (m *mockClient) TextNutrition(ctx context.Context, auth api.Auth, foodEntry string) (api.NutritionEstimate, error) {
	m.record("TextNutrition")
	if m.textNutritionFunc != nil {
		return m.textNutritionFunc(ctx, auth, foodEntry)
	}
	return api.NutritionEstimate{IsValidEntry: true, Calories: 100, Protein: 5}, nil
}

func (m *mockClient) ImageNutrition(ctx context.Context, auth api.Auth, imageBase64 string) (api.NutritionEstimate, error) {
	m.record("ImageNutrition")
	if m.imageNutritionFunc != nil {
		return m.imageNutritionFunc(ctx, auth, imageBase64)
	}
	return api.NutritionEstimate{IsValidEntry: true, FoodEntry: "Omelette", Calories: 250, Protein: 18}, nil
}
