// Package tracking implements the client-side tracking core: per-day and
// per-meal sessions that mirror the backend's date/meal/meal-item records
// and keep the denormalized calorie/protein totals on both sides in step
// after every mutation.
//
// The design is deliberately non-transactional. A mutation is a local list
// change followed by one or more remote pushes; if a push fails the local
// change is not rolled back, and the drift heals on the next full reload.
package tracking

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cherryapp/cherry-client/internal/aggregate"
	"github.com/cherryapp/cherry-client/internal/api"
	"github.com/cherryapp/cherry-client/internal/session"
)

// State is the lifecycle position of a session.
type State int

const (
	StateLoading State = iota
	StateReady
	StateClosed
)

// DateSession holds one calendar day: its date record, its meals, and the
// mutations allowed on them. All methods are safe for use from one
// goroutine at a time; an internal mutex enforces the single-writer rule.
type DateSession struct {
	client Client
	sess   *session.Session
	date   string
	now    func() time.Time

	mu     sync.Mutex
	state  State
	rec    api.DateRecord
	meals  []api.Meal
	errMsg string
}

// DateOption configures a DateSession.
type DateOption func(*DateSession)

// WithNow overrides the session's clock, used to decide whether the edited
// date is "today".
func WithNow(now func() time.Time) DateOption {
	return func(s *DateSession) { s.now = now }
}

// OpenDate resolves (or creates) the remote date record for calendarDate,
// seeds the daily weight from the user's profile when the record comes back
// unset, loads the day's meals, and corrects the stored daily totals if
// they disagree with the freshly computed sums.
func OpenDate(ctx context.Context, client Client, sess *session.Session, calendarDate string, opts ...DateOption) (*DateSession, error) {
	s := &DateSession{
		client: client,
		sess:   sess,
		date:   calendarDate,
		now:    time.Now,
		state:  StateLoading,
	}
	for _, opt := range opts {
		opt(s)
	}

	rec, err := client.GetOrCreateDate(ctx, sess.Auth(), calendarDate)
	if err != nil {
		return nil, err
	}
	s.rec = rec

	// Auto-seed: a fresh date record carries the "0" sentinel, so today's
	// default daily weight is the user's current profile weight. Only the
	// as-fetched value triggers this; a nonzero weight is never overwritten.
	if weightValue(rec.DailyWeight) == 0 {
		seeded, err := client.UpdateDateWeight(ctx, sess.Auth(), rec.DateID, sess.User.Weight)
		if err != nil {
			return nil, err
		}
		s.rec.DailyWeight = seeded.DailyWeight
	}

	meals, err := client.GetMeals(ctx, sess.Auth(), rec.DateID)
	if err != nil {
		return nil, err
	}
	s.meals = meals

	calories := aggregate.MealCalories(meals)
	protein := aggregate.MealProtein(meals)
	if calories != totalValue(s.rec.DailyCalories) || protein != totalValue(s.rec.DailyProtein) {
		if err := s.pushDateTotals(ctx); err != nil {
			return nil, err
		}
	}

	s.state = StateReady
	return s, nil
}

// Record returns the current date record.
func (s *DateSession) Record() api.DateRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec
}

// Meals returns a copy of the loaded meal list.
func (s *DateSession) Meals() []api.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	meals := make([]api.Meal, len(s.meals))
	copy(meals, s.meals)
	return meals
}

// MealAt returns the meal occupying a 2-hour slot, if any. Slot membership
// is derived from the meal's time, not stored.
func (s *DateSession) MealAt(slot int) (api.Meal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mealAt(slot)
}

func (s *DateSession) mealAt(slot int) (api.Meal, bool) {
	for _, meal := range s.meals {
		if slotForTime(meal.Time) == slot {
			return meal, true
		}
	}
	return api.Meal{}, false
}

// Err returns the most recent session-level error message, if any.
func (s *DateSession) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// State returns the session's lifecycle state.
func (s *DateSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CreateMeal creates a named meal in an empty slot. The meal is appended
// locally with zero totals once the backend assigns its ID.
func (s *DateSession) CreateMeal(ctx context.Context, slot int, name string) (api.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return api.Meal{}, s.fail(ErrClosed)
	}
	if name == "" {
		return api.Meal{}, s.fail(&ValidationError{Message: "Please enter a meal name."})
	}
	if slot < 0 || slot >= SlotCount {
		return api.Meal{}, s.fail(&ValidationError{Message: "Invalid meal time slot."})
	}
	if _, taken := s.mealAt(slot); taken {
		return api.Meal{}, s.fail(&ValidationError{Message: "A meal already exists in that time slot."})
	}

	created, err := s.client.CreateMeal(ctx, s.sess.Auth(), api.CreateMealRequest{
		MealName: name,
		UserID:   s.sess.User.UserID,
		DateID:   s.rec.DateID,
		Time:     SlotStart(slot),
	})
	if err != nil {
		return api.Meal{}, s.fail(err)
	}

	meal := api.Meal{
		MealID:   created.MealID,
		MealName: name,
		UserID:   s.sess.User.UserID,
		DateID:   s.rec.DateID,
		Time:     SlotStart(slot),
	}
	s.meals = append(s.meals, meal)
	s.errMsg = ""
	return meal, nil
}

// DeleteMeal removes a meal locally, deletes it remotely, then recomputes
// and pushes the date totals.
func (s *DateSession) DeleteMeal(ctx context.Context, mealID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return s.fail(ErrClosed)
	}

	kept := s.meals[:0]
	for _, meal := range s.meals {
		if meal.MealID != mealID {
			kept = append(kept, meal)
		}
	}
	s.meals = kept

	if err := s.client.DeleteMeal(ctx, s.sess.Auth(), mealID); err != nil {
		return s.fail(err)
	}
	if err := s.pushDateTotals(ctx); err != nil {
		return s.fail(err)
	}
	s.errMsg = ""
	return nil
}

// UpdateWeight validates and pushes a new daily weight. When the edited
// date is today's calendar date the user's profile weight is updated too,
// so later days seed from the new value.
func (s *DateSession) UpdateWeight(ctx context.Context, weight string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return s.fail(ErrClosed)
	}
	if weight == "" {
		return s.fail(&ValidationError{Message: "Please enter a valid weight."})
	}
	if _, err := strconv.ParseFloat(weight, 64); err != nil {
		return s.fail(&ValidationError{Message: "Please enter a valid weight."})
	}

	updated, err := s.client.UpdateDateWeight(ctx, s.sess.Auth(), s.rec.DateID, weight)
	if err != nil {
		return s.fail(err)
	}
	s.rec.DailyWeight = updated.DailyWeight

	if s.date == s.now().Format("2006-01-02") {
		user, err := s.client.UpdateUserWeight(ctx, s.sess.Auth(), weight)
		if err != nil {
			return s.fail(err)
		}
		s.sess.SetWeight(user.Weight)
	}

	s.errMsg = ""
	return nil
}

// OpenMeal loads the item list of one of this day's meals and returns a
// MealSession for it. The meal session feeds its recomputed totals back
// into this date session when it closes.
func (s *DateSession) OpenMeal(ctx context.Context, mealID string) (*MealSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil, s.fail(ErrClosed)
	}

	var meal api.Meal
	found := false
	for _, m := range s.meals {
		if m.MealID == mealID {
			meal = m
			found = true
			break
		}
	}
	if !found {
		return nil, s.fail(&ValidationError{Message: "That meal is not part of this day."})
	}

	items, err := s.client.GetMealItems(ctx, s.sess.Auth(), mealID)
	if err != nil {
		return nil, s.fail(err)
	}

	return &MealSession{
		client: s.client,
		sess:   s.sess,
		parent: s,
		meal:   meal,
		items:  items,
		state:  StateReady,
	}, nil
}

// Close pushes the date totals one final time and ends the session.
func (s *DateSession) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	err := s.pushDateTotals(ctx)
	s.state = StateClosed
	if err != nil {
		return s.fail(err)
	}
	return nil
}

// mealClosed re-absorbs a closed meal session's totals and pushes the date
// aggregate.
func (s *DateSession) mealClosed(ctx context.Context, meal api.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meals {
		if s.meals[i].MealID == meal.MealID {
			s.meals[i] = meal
			break
		}
	}
	if s.state == StateClosed {
		return nil
	}
	if err := s.pushDateTotals(ctx); err != nil {
		return s.fail(err)
	}
	return nil
}

// pushDateTotals recomputes the daily sums from the loaded meals and writes
// them to the backend, re-establishing the denormalization invariant.
// Callers hold the mutex.
func (s *DateSession) pushDateTotals(ctx context.Context) error {
	calories := aggregate.MealCalories(s.meals)
	protein := aggregate.MealProtein(s.meals)
	if _, err := s.client.UpdateDateNutrition(ctx, s.sess.Auth(), s.rec.DateID, calories, protein); err != nil {
		return err
	}
	s.rec.DailyCalories = strconv.Itoa(calories)
	s.rec.DailyProtein = strconv.Itoa(protein)
	return nil
}

// fail records the error as the session's displayable message and passes it
// through. Callers hold the mutex.
func (s *DateSession) fail(err error) error {
	s.errMsg = err.Error()
	return err
}

func weightValue(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func totalValue(raw string) int {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(v)
}
