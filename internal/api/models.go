package api

// User is the account as the backend returns it. Weight fields travel as
// decimal strings because the backend stores them that way.
type User struct {
	UserID          string `json:"userID"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	Weight          string `json:"weight"`
	StartingWeight  string `json:"startingWeight"`
	CreatedTS       string `json:"createdTS"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	User User   `json:"user"`
	JWT  string `json:"jwt"`
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Weight   string `json:"weight"`
}

// DateRecord is one user's calendar day of tracking. DailyCalories and
// DailyProtein are denormalized sums over the day's meals; DailyWeight uses
// "0" as the unset sentinel.
type DateRecord struct {
	UserID        string `json:"userID"`
	DateID        string `json:"dateID"`
	Date          string `json:"date"`
	DailyWeight   string `json:"dailyWeight"`
	DailyCalories string `json:"dailyCalories"`
	DailyProtein  string `json:"dailyProtein"`
}

// Meal is a named, time-slotted collection of meal items within a date.
// MealCalories and MealProtein are denormalized sums over its items.
type Meal struct {
	MealID       string `json:"mealID"`
	MealName     string `json:"mealName"`
	UserID       string `json:"userID"`
	DateID       string `json:"dateID"`
	MealCalories int    `json:"mealCalories"`
	MealProtein  int    `json:"mealProtein"`
	Time         string `json:"time"`
}

// CreateMealRequest is the body for POST /data/meal.
type CreateMealRequest struct {
	MealName string `json:"mealName"`
	UserID   string `json:"userID"`
	DateID   string `json:"dateID"`
	Time     string `json:"time"`
}

// MealItem is a single food entry. ItemID and CreatedTS are empty until the
// backend assigns them.
type MealItem struct {
	ItemID       string `json:"itemID,omitempty"`
	MealID       string `json:"mealID"`
	DateID       string `json:"dateID"`
	UserID       string `json:"userID"`
	ItemName     string `json:"itemName"`
	ItemCalories int    `json:"itemCalories"`
	ItemProtein  int    `json:"itemProtein"`
	AIGenerated  bool   `json:"aiGenerated"`
	CreatedTS    string `json:"createdTS,omitempty"`
}

// Heat-map day classifications, as the backend computes them.
const (
	HeatMapNone      = "NONE"
	HeatMapWeight    = "WEIGHT"
	HeatMapNutrition = "NUTRITION"
	HeatMapBoth      = "BOTH"
)

// HeatMapEntry classifies one day's tracking completeness.
type HeatMapEntry struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// AverageData holds the all-time averages the backend computes.
type AverageData struct {
	AverageCalories float64 `json:"averageCalories"`
	AverageProtein  float64 `json:"averageProtein"`
	AverageWeight   float64 `json:"averageWeight"`
}

// NutritionEstimate is the AI inference result for a food description or
// photo. FoodEntry is only populated by the image endpoint.
type NutritionEstimate struct {
	IsValidEntry bool   `json:"isValidEntry"`
	FoodEntry    string `json:"foodEntry,omitempty"`
	Calories     int    `json:"calories"`
	Protein      int    `json:"protein"`
}
