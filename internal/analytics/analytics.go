// Package analytics derives reporting values from server-shaped day
// records. It is read-only: nothing here feeds back into the tracking
// sessions.
package analytics

import (
	"time"

	"github.com/cherryapp/cherry-client/internal/api"
)

// MonthlyWindowDays is the trailing boundary for the monthly adherence
// counters. Days inside the window are still in progress and do not count.
const MonthlyWindowDays = 30

// MonthlyTracking holds the two adherence counters: completed days on which
// the user tracked weight, and on which they tracked nutrition. A BOTH day
// counts toward both.
type MonthlyTracking struct {
	WeightDays    int
	NutritionDays int
}

// ComputeMonthlyTracking counts adherence over heat-map entries dated on or
// before now minus MonthlyWindowDays. Entries with unparseable dates are
// skipped.
func ComputeMonthlyTracking(entries []api.HeatMapEntry, now time.Time) MonthlyTracking {
	cutoff := now.AddDate(0, 0, -MonthlyWindowDays)

	var tracking MonthlyTracking
	for _, entry := range entries {
		day, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			continue
		}
		if day.After(cutoff) {
			continue
		}
		if entry.Value == api.HeatMapWeight || entry.Value == api.HeatMapBoth {
			tracking.WeightDays++
		}
		if entry.Value == api.HeatMapNutrition || entry.Value == api.HeatMapBoth {
			tracking.NutritionDays++
		}
	}
	return tracking
}
