// Command cherry is a terminal client for the Cherry nutrition tracker:
// sign in, open a day, log meals and meal items, and export progress
// reports, against the same backend the mobile app uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/cherryapp/cherry-client/internal/api"
	"github.com/cherryapp/cherry-client/internal/config"
	"github.com/cherryapp/cherry-client/internal/reports"
	"github.com/cherryapp/cherry-client/internal/session"
	"github.com/cherryapp/cherry-client/internal/tracking"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	client := api.NewClient(cfg.APIBaseURL, api.WithHTTPClient(&http.Client{
		Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
	}))
	store := session.NewFileStore(cfg.SessionFile)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "register":
		err = runRegister(ctx, client, store, os.Args[2:])
	case "login":
		err = runLogin(ctx, client, store, os.Args[2:])
	case "logout":
		err = store.Clear()
	case "day":
		err = runDay(ctx, client, store, os.Args[2:])
	case "weight":
		err = runWeight(ctx, client, store, os.Args[2:])
	case "meal":
		err = runMeal(ctx, client, store, os.Args[2:])
	case "log":
		err = runLog(ctx, client, store, os.Args[2:])
	case "report":
		err = runReport(ctx, client, store, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cherry <command> [flags]

commands:
  register  create an account
  login     sign in and store the session
  logout    drop the stored session
  day       show a day's meal slots and totals
  weight    record the daily weight
  meal      create a meal in an empty slot
  log       add a meal item (manual or AI)
  report    export a progress report (pdf/csv)`)
}

func runRegister(ctx context.Context, client *api.Client, store session.Store, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "account name")
	email := fs.String("email", "", "email address")
	confirmEmail := fs.String("confirm-email", "", "email address, again")
	password := fs.String("password", "", "password")
	confirmPassword := fs.String("confirm-password", "", "password, again")
	weight := fs.String("weight", "", "starting body weight")
	fs.Parse(args)

	if *email != *confirmEmail {
		return &tracking.ValidationError{Message: "Emails do not match"}
	}
	if *password != *confirmPassword {
		return &tracking.ValidationError{Message: "Passwords do not match"}
	}

	user, err := client.Register(ctx, api.RegisterRequest{
		Username: *username,
		Password: *password,
		Email:    *email,
		Weight:   *weight,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered %s (%s), now log in\n", user.Username, user.Email)
	return nil
}

func runLogin(ctx context.Context, client *api.Client, store session.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	result, err := client.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	sess := session.New(result)
	if err := store.Save(sess); err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", sess.User.Username)
	return nil
}

func loadSession(ctx context.Context, client *api.Client, store session.Store) (*session.Session, error) {
	sess, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("no stored session, run `cherry login` first")
	}
	if sess.Expired(time.Now()) {
		_ = store.Clear()
		return nil, fmt.Errorf("session expired, run `cherry login` again")
	}
	if err := client.ValidateToken(ctx, sess.Auth()); err != nil {
		_ = store.Clear()
		return nil, fmt.Errorf("session rejected by the backend, run `cherry login` again")
	}
	return sess, nil
}

func dateFlag(fs *flag.FlagSet) *string {
	return fs.String("date", time.Now().Format("2006-01-02"), "calendar day (YYYY-MM-DD)")
}

func runDay(ctx context.Context, client *api.Client, store session.Store, args []string) error {
	fs := flag.NewFlagSet("day", flag.ExitOnError)
	date := dateFlag(fs)
	fs.Parse(args)

	sess, err := loadSession(ctx, client, store)
	if err != nil {
		return err
	}
	day, err := tracking.OpenDate(ctx, client, sess, *date)
	if err != nil {
		return err
	}
	defer day.Close(ctx)

	rec := day.Record()
	fmt.Printf("%s  (weight %s lbs)\n\n", rec.Date, rec.DailyWeight)
	for slot := 0; slot < tracking.SlotCount; slot++ {
		if meal, ok := day.MealAt(slot); ok {
			fmt.Printf("  %-11s %-24s %5d kcal %4dg  [%s]\n",
				tracking.SlotLabel(slot), meal.MealName, meal.MealCalories, meal.MealProtein, meal.MealID)
		} else {
			fmt.Printf("  %-11s -\n", tracking.SlotLabel(slot))
		}
	}
	fmt.Printf("\n  daily totals: %s kcal, %sg protein\n", rec.DailyCalories, rec.DailyProtein)
	return nil
}

func runWeight(ctx context.Context, client *api.Client, store session.Store, args []string) error {
	fs := flag.NewFlagSet("weight", flag.ExitOnError)
	date := dateFlag(fs)
	value := fs.String("value", "", "body weight")
	fs.Parse(args)

	sess, err := loadSession(ctx, client, store)
	if err != nil {
		return err
	}
	day, err := tracking.OpenDate(ctx, client, sess, *date)
	if err != nil {
		return err
	}
	defer day.Close(ctx)

	if err := day.UpdateWeight(ctx, *value); err != nil {
		return err
	}
	fmt.Printf("weight for %s set to %s\n", *date, *value)
	return store.Save(sess)
}

func runMeal(ctx context.Context, client *api.Client, store session.Store, args []string) error {
	fs := flag.NewFlagSet("meal", flag.ExitOnError)
	date := dateFlag(fs)
	slot := fs.Int("slot", -1, "2-hour slot index, 0-11")
	name := fs.String("name", "", "meal name")
	fs.Parse(args)

	sess, err := loadSession(ctx, client, store)
	if err != nil {
		return err
	}
	day, err := tracking.OpenDate(ctx, client, sess, *date)
	if err != nil {
		return err
	}
	defer day.Close(ctx)

	meal, err := day.CreateMeal(ctx, *slot, *name)
	if err != nil {
		return err
	}
	fmt.Printf("created %q in slot %s (mealID %s)\n", meal.MealName, tracking.SlotLabel(*slot), meal.MealID)
	return nil
}

func runLog(ctx context.Context, client *api.Client, store session.Store, args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	date := dateFlag(fs)
	mealID := fs.String("meal", "", "mealID to log into")
	name := fs.String("name", "", "item name (manual entry)")
	calories := fs.Int("calories", 0, "item calories (manual entry)")
	protein := fs.Int("protein", 0, "item protein grams (manual entry)")
	aiEntry := fs.String("ai", "", "free-form food description for AI entry")
	fs.Parse(args)

	sess, err := loadSession(ctx, client, store)
	if err != nil {
		return err
	}
	day, err := tracking.OpenDate(ctx, client, sess, *date)
	if err != nil {
		return err
	}
	defer day.Close(ctx)

	meal, err := day.OpenMeal(ctx, *mealID)
	if err != nil {
		return err
	}
	defer meal.Close(ctx)

	var item api.MealItem
	if *aiEntry != "" {
		item, err = meal.AddFromText(ctx, *aiEntry)
	} else {
		item, err = meal.AddManual(ctx, *name, *calories, *protein)
	}
	if err != nil {
		return err
	}

	totals := meal.Meal()
	fmt.Printf("logged %q (%d kcal, %dg); meal now %d kcal, %dg\n",
		item.ItemName, item.ItemCalories, item.ItemProtein, totals.MealCalories, totals.MealProtein)
	return nil
}

func runReport(ctx context.Context, client *api.Client, store session.Store, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	format := fs.String("format", reports.FormatPDF, "pdf or csv")
	days := fs.Int("days", 30, "days of history to include")
	out := fs.String("out", "", "output file (default report.<format>)")
	fs.Parse(args)

	sess, err := loadSession(ctx, client, store)
	if err != nil {
		return err
	}

	gen := reports.NewGenerator(client)
	data, err := gen.Generate(ctx, sess.Auth(), reports.Request{Format: *format, DaysBack: *days})
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = "report." + *format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
	return nil
}
