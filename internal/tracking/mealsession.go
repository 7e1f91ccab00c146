package tracking

import (
	"context"
	"log"
	"sync"

	"github.com/cherryapp/cherry-client/internal/aggregate"
	"github.com/cherryapp/cherry-client/internal/api"
	"github.com/cherryapp/cherry-client/internal/session"
)

// maxItemsPerMeal is the hard cap on food entries per meal, enforced
// client-side before any remote call.
const maxItemsPerMeal = 8

// MealSession holds one open meal: its item list and the four ways of
// adding to it (manual, AI text, AI image, recents). Every successful item
// mutation recomputes the meal's totals and pushes them before returning.
type MealSession struct {
	client Client
	sess   *session.Session
	parent *DateSession

	mu     sync.Mutex
	state  State
	meal   api.Meal
	items  []api.MealItem
	errMsg string
}

// Meal returns the meal with its current totals.
func (m *MealSession) Meal() api.Meal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.meal
}

// Items returns a copy of the loaded item list.
func (m *MealSession) Items() []api.MealItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]api.MealItem, len(m.items))
	copy(items, m.items)
	return items
}

// Err returns the most recent session-level error message, if any.
func (m *MealSession) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}

// State returns the session's lifecycle state.
func (m *MealSession) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// AddManual creates an item from user-supplied name and nutrition values.
func (m *MealSession) AddManual(ctx context.Context, name string, calories, protein int) (api.MealItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkAdd(); err != nil {
		return api.MealItem{}, err
	}
	if name == "" {
		return api.MealItem{}, m.fail(&ValidationError{Message: "Please enter an item name."})
	}
	if calories < 0 || protein < 0 {
		return api.MealItem{}, m.fail(&ValidationError{Message: "Calories and protein cannot be negative."})
	}
	return m.createItem(ctx, name, calories, protein, false)
}

// AddFromText sends a free-form food description to the AI endpoint and
// creates an item from the estimate. An estimate flagged invalid creates
// nothing and surfaces an InferenceRejectedError.
func (m *MealSession) AddFromText(ctx context.Context, foodEntry string) (api.MealItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkAdd(); err != nil {
		return api.MealItem{}, err
	}

	estimate, err := m.client.TextNutrition(ctx, m.sess.Auth(), foodEntry)
	if err != nil {
		return api.MealItem{}, m.fail(err)
	}
	if !estimate.IsValidEntry {
		return api.MealItem{}, m.fail(&InferenceRejectedError{
			Message: "AI could not generate a valid meal item. Please try again with a different description.",
		})
	}
	return m.createItem(ctx, foodEntry, estimate.Calories, estimate.Protein, true)
}

// AddFromImage sends a base64-encoded meal photo to the AI endpoint and
// creates an item named after whatever food it recognized.
func (m *MealSession) AddFromImage(ctx context.Context, imageBase64 string) (api.MealItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkAdd(); err != nil {
		return api.MealItem{}, err
	}

	estimate, err := m.client.ImageNutrition(ctx, m.sess.Auth(), imageBase64)
	if err != nil {
		return api.MealItem{}, m.fail(err)
	}
	if !estimate.IsValidEntry {
		return api.MealItem{}, m.fail(&InferenceRejectedError{
			Message: "AI could not generate a valid meal item from the image. Please try again with a different image.",
		})
	}
	name := estimate.FoodEntry
	if name == "" {
		name = "Image Meal"
	}
	return m.createItem(ctx, name, estimate.Calories, estimate.Protein, true)
}

// Recents lists the user's most recent distinct items for one-tap copying.
func (m *MealSession) Recents(ctx context.Context) ([]api.MealItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateClosed {
		return nil, m.fail(ErrClosed)
	}
	items, err := m.client.GetMealItemRecents(ctx, m.sess.Auth())
	if err != nil {
		return nil, m.fail(err)
	}
	return items, nil
}

// AddRecent copies a recent item into this meal.
func (m *MealSession) AddRecent(ctx context.Context, recent api.MealItem) (api.MealItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkAdd(); err != nil {
		return api.MealItem{}, err
	}
	return m.createItem(ctx, recent.ItemName, recent.ItemCalories, recent.ItemProtein, true)
}

// DeleteItem removes an item. The remote delete is best-effort: the local
// removal and the totals push proceed even when it fails.
func (m *MealSession) DeleteItem(ctx context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateClosed {
		return m.fail(ErrClosed)
	}

	remoteErr := m.client.DeleteMealItem(ctx, m.sess.Auth(), itemID)
	if remoteErr != nil {
		log.Printf("failed to delete meal item %s remotely: %v", itemID, remoteErr)
		m.errMsg = remoteErr.Error()
	}

	kept := m.items[:0]
	for _, item := range m.items {
		if item.ItemID != itemID {
			kept = append(kept, item)
		}
	}
	m.items = kept

	if err := m.pushMealTotals(ctx); err != nil {
		return m.fail(err)
	}
	return remoteErr
}

// Close ends the session and hands the meal's current totals back to the
// owning date session, which re-aggregates the daily totals.
func (m *MealSession) Close(ctx context.Context) error {
	m.mu.Lock()
	if m.state == StateClosed {
		m.mu.Unlock()
		return nil
	}
	m.state = StateClosed
	meal := m.meal
	m.mu.Unlock()

	return m.parent.mealClosed(ctx, meal)
}

// checkAdd gates every add mode. Callers hold the mutex.
func (m *MealSession) checkAdd() error {
	if m.state == StateClosed {
		return m.fail(ErrClosed)
	}
	if len(m.items) >= maxItemsPerMeal {
		return m.fail(&CapacityError{Limit: maxItemsPerMeal})
	}
	return nil
}

// createItem stores the item remotely, appends it locally, then recomputes
// and pushes the meal totals. Callers hold the mutex.
func (m *MealSession) createItem(ctx context.Context, name string, calories, protein int, aiGenerated bool) (api.MealItem, error) {
	created, err := m.client.CreateMealItem(ctx, m.sess.Auth(), api.MealItem{
		MealID:       m.meal.MealID,
		DateID:       m.meal.DateID,
		UserID:       m.sess.User.UserID,
		ItemName:     name,
		ItemCalories: calories,
		ItemProtein:  protein,
		AIGenerated:  aiGenerated,
	})
	if err != nil {
		return api.MealItem{}, m.fail(err)
	}

	m.items = append(m.items, created)
	if err := m.pushMealTotals(ctx); err != nil {
		return created, m.fail(err)
	}
	m.errMsg = ""
	return created, nil
}

// pushMealTotals re-establishes the meal's denormalized totals on the
// backend from the current item list. Callers hold the mutex.
func (m *MealSession) pushMealTotals(ctx context.Context) error {
	calories := aggregate.ItemCalories(m.items)
	protein := aggregate.ItemProtein(m.items)
	if _, err := m.client.UpdateMealNutrition(ctx, m.sess.Auth(), m.meal.MealID, calories, protein); err != nil {
		return err
	}
	m.meal.MealCalories = calories
	m.meal.MealProtein = protein
	return nil
}

// fail records the error as the session's displayable message and passes it
// through. Callers hold the mutex.
func (m *MealSession) fail(err error) error {
	m.errMsg = err.Error()
	return err
}

// ItemCount reports how many items the meal currently holds, out of
// maxItemsPerMeal.
func (m *MealSession) ItemCount() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items), maxItemsPerMeal
}
