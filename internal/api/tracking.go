package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetOrCreateDate resolves the date record for a calendar day, creating it
// on the backend if this is the user's first visit to that day. Idempotent:
// repeat calls return the same dateID.
func (c *Client) GetOrCreateDate(ctx context.Context, auth Auth, date string) (DateRecord, error) {
	var rec DateRecord
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/data/date/from-user-and-date",
		query:  url.Values{"date": {date}},
		auth:   &auth,
		op:     "creating the date",
		shape:  errText,
	}, &rec)
	return rec, err
}

// UpdateUserWeight sets the user's current profile weight, the default for
// future days.
func (c *Client) UpdateUserWeight(ctx context.Context, auth Auth, weight string) (User, error) {
	var user User
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/data/user/update-weight",
		query:  url.Values{"weight": {weight}},
		auth:   &auth,
		op:     "updating the user's weight",
		shape:  errText,
	}, &user)
	return user, err
}

// UpdateDateWeight sets the daily weight on one date record.
func (c *Client) UpdateDateWeight(ctx context.Context, auth Auth, dateID, weight string) (DateRecord, error) {
	var rec DateRecord
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/data/date/update-weight",
		query:  url.Values{"dateid": {dateID}, "weight": {weight}},
		auth:   &auth,
		op:     "updating date weight",
		shape:  errText,
	}, &rec)
	return rec, err
}

// UpdateDateNutrition pushes recomputed daily calorie/protein totals.
func (c *Client) UpdateDateNutrition(ctx context.Context, auth Auth, dateID string, calories, protein int) (DateRecord, error) {
	var rec DateRecord
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/data/date/update-nutrition",
		query: url.Values{
			"dateid":   {dateID},
			"calories": {strconv.Itoa(calories)},
			"protein":  {strconv.Itoa(protein)},
		},
		auth:  &auth,
		op:    "updating date nutrition",
		shape: errText,
	}, &rec)
	return rec, err
}

// GetMeals lists the meals of one date record.
func (c *Client) GetMeals(ctx context.Context, auth Auth, dateID string) ([]Meal, error) {
	var meals []Meal
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/data/meal",
		query:  url.Values{"dateid": {dateID}},
		auth:   &auth,
		op:     "retrieving meals",
		shape:  errText,
	}, &meals)
	return meals, err
}

// CreateMeal creates a named meal at a slot start time on a date.
func (c *Client) CreateMeal(ctx context.Context, auth Auth, req CreateMealRequest) (Meal, error) {
	var meal Meal
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/data/meal",
		auth:   &auth,
		body:   req,
		op:     "creating the meal",
		shape:  errJSON,
	}, &meal)
	return meal, err
}

// DeleteMeal removes a meal and its items.
func (c *Client) DeleteMeal(ctx context.Context, auth Auth, mealID string) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "/data/meal/delete",
		query:  url.Values{"mealid": {mealID}},
		auth:   &auth,
		op:     "deleting the meal",
		shape:  errText,
	}, nil)
}

// UpdateMealNutrition pushes recomputed meal calorie/protein totals.
func (c *Client) UpdateMealNutrition(ctx context.Context, auth Auth, mealID string, calories, protein int) (Meal, error) {
	var meal Meal
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/data/meal/update-nutrition",
		query: url.Values{
			"mealid":   {mealID},
			"calories": {strconv.Itoa(calories)},
			"protein":  {strconv.Itoa(protein)},
		},
		auth:  &auth,
		op:    "updating meal nutrition",
		shape: errText,
	}, &meal)
	return meal, err
}

// GetMealItems lists the items of one meal.
func (c *Client) GetMealItems(ctx context.Context, auth Auth, mealID string) ([]MealItem, error) {
	var items []MealItem
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/data/meal-item",
		query:  url.Values{"mealid": {mealID}},
		auth:   &auth,
		op:     "retrieving meal items",
		shape:  errText,
	}, &items)
	return items, err
}

// CreateMealItem stores a food entry; the response carries the assigned
// itemID and creation timestamp.
func (c *Client) CreateMealItem(ctx context.Context, auth Auth, item MealItem) (MealItem, error) {
	var created MealItem
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/data/meal-item",
		auth:   &auth,
		body:   item,
		op:     "creating the meal item",
		shape:  errJSON,
	}, &created)
	return created, err
}

// DeleteMealItem removes one food entry.
func (c *Client) DeleteMealItem(ctx context.Context, auth Auth, itemID string) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "/data/meal-item/delete",
		query:  url.Values{"mealitemid": {itemID}},
		auth:   &auth,
		op:     "deleting the meal item",
		shape:  errText,
	}, nil)
}

// GetMealItemRecents lists the user's most recent distinct meal items,
// deduplicated server-side.
func (c *Client) GetMealItemRecents(ctx context.Context, auth Auth) ([]MealItem, error) {
	var items []MealItem
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/data/meal-item/recents",
		auth:   &auth,
		op:     "retrieving meal item recents",
		shape:  errText,
	}, &items)
	return items, err
}
