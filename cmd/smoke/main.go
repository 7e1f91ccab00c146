package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/time/rate"

	"github.com/cherryapp/cherry-client/internal/api"
	"github.com/cherryapp/cherry-client/internal/config"
	"github.com/cherryapp/cherry-client/internal/reports"
	"github.com/cherryapp/cherry-client/internal/session"
	"github.com/cherryapp/cherry-client/internal/tracking"
)

var (
	client  *api.Client
	sess    *session.Session
	limiter *rate.Limiter

	testDate string
	day      *tracking.DateSession
	meal     *tracking.MealSession
	mealID   string
)

func main() {
	fmt.Println("=== Cherry Tracking E2E Smoke Test ===")
	fmt.Println()

	cfg := config.Load()
	client = api.NewClient(cfg.APIBaseURL, api.WithHTTPClient(&http.Client{
		Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
	}))
	limiter = rate.NewLimiter(rate.Limit(cfg.SmokeRequestsPerSecond), 1)
	testDate = time.Now().Format("2006-01-02")

	fmt.Printf("API Base: %s\n", orDefault(cfg.APIBaseURL, "(default)"))
	fmt.Printf("Date: %s\n", testDate)
	fmt.Println()

	steps := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{"Register + Login", testLogin},
		{"Validate Token", testValidateToken},
		{"Open Date Session", testOpenDate},
		{"Update Weight", testUpdateWeight},
		{"Create Meal", testCreateMeal},
		{"Open Meal Session", testOpenMeal},
		{"Add Items", testAddItems},
		{"Delete Item", testDeleteItem},
		{"Close Meal Session", testCloseMeal},
		{"Delete Meal", testDeleteMeal},
		{"Close Date Session", testCloseDate},
		{"Heat Map Data", testHeatMap},
		{"Average Data", testAverages},
		{"CSV Report", testCSVReport},
	}

	ctx := context.Background()
	failed := false
	for i, step := range steps {
		if err := limiter.Wait(ctx); err != nil {
			fmt.Printf("limiter: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[%d/%d] %s... ", i+1, len(steps), step.name)
		if err := step.fn(ctx); err != nil {
			fmt.Printf("FAILED\n  Error: %v\n\n", err)
			failed = true
			break
		}
		fmt.Printf("OK\n")
	}

	fmt.Println()
	if failed {
		fmt.Println("SMOKE TEST FAILED")
		os.Exit(1)
	}
	fmt.Println("ALL SMOKE TESTS PASSED")
}

// testLogin signs in with SMOKE_USERNAME/SMOKE_PASSWORD when provided, and
// otherwise registers a throwaway account for this run.
func testLogin(ctx context.Context) error {
	username := os.Getenv("SMOKE_USERNAME")
	password := os.Getenv("SMOKE_PASSWORD")
	if username == "" || password == "" {
		username = "smoke-" + uuid.NewString()[:8]
		password = "smoke-" + uuid.NewString()[:13]
		if _, err := client.Register(ctx, api.RegisterRequest{
			Username: username,
			Password: password,
			Email:    username + "@example.com",
			Weight:   "180",
		}); err != nil {
			return err
		}
	}

	result, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	sess = session.New(result)
	return nil
}

func testValidateToken(ctx context.Context) error {
	return client.ValidateToken(ctx, sess.Auth())
}

func testOpenDate(ctx context.Context) error {
	var err error
	day, err = tracking.OpenDate(ctx, client, sess, testDate)
	if err != nil {
		return err
	}
	if day.Record().DateID == "" {
		return fmt.Errorf("date session opened without a dateID")
	}
	return nil
}

func testUpdateWeight(ctx context.Context) error {
	return day.UpdateWeight(ctx, "179.5")
}

func testCreateMeal(ctx context.Context) error {
	created, err := day.CreateMeal(ctx, 6, "Smoke Lunch")
	if err != nil {
		return err
	}
	if created.MealID == "" {
		return fmt.Errorf("created meal has no mealID")
	}
	mealID = created.MealID
	return nil
}

func testOpenMeal(ctx context.Context) error {
	var err error
	meal, err = day.OpenMeal(ctx, mealID)
	return err
}

func testAddItems(ctx context.Context) error {
	if _, err := meal.AddManual(ctx, "Chicken sandwich", 300, 20); err != nil {
		return err
	}
	if _, err := meal.AddManual(ctx, "Apple", 200, 10); err != nil {
		return err
	}
	got := meal.Meal()
	if got.MealCalories != 500 || got.MealProtein != 30 {
		return fmt.Errorf("meal totals = (%d, %d), want (500, 30)", got.MealCalories, got.MealProtein)
	}
	return nil
}

func testDeleteItem(ctx context.Context) error {
	items := meal.Items()
	if len(items) == 0 {
		return fmt.Errorf("no items to delete")
	}
	if err := meal.DeleteItem(ctx, items[len(items)-1].ItemID); err != nil {
		return err
	}
	got := meal.Meal()
	if got.MealCalories != 300 || got.MealProtein != 20 {
		return fmt.Errorf("meal totals = (%d, %d), want (300, 20)", got.MealCalories, got.MealProtein)
	}
	return nil
}

func testCloseMeal(ctx context.Context) error {
	return meal.Close(ctx)
}

func testDeleteMeal(ctx context.Context) error {
	return day.DeleteMeal(ctx, mealID)
}

func testCloseDate(ctx context.Context) error {
	return day.Close(ctx)
}

func testHeatMap(ctx context.Context) error {
	_, err := client.GetHeatMapData(ctx, sess.Auth(), 252)
	return err
}

func testAverages(ctx context.Context) error {
	_, err := client.GetAverageData(ctx, sess.Auth())
	return err
}

func testCSVReport(ctx context.Context) error {
	gen := reports.NewGenerator(client)
	data, err := gen.Generate(ctx, sess.Auth(), reports.Request{Format: reports.FormatCSV, DaysBack: 30})
	if err != nil {
		return err
	}
	if len(data) < 10 {
		return fmt.Errorf("report is %d bytes (too small)", len(data))
	}
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
