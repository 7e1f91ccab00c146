// Package reports renders a user's tracking history into a downloadable
// PDF or CSV progress report: all-time averages, monthly adherence, and a
// per-day table of weight, calories, and protein.
package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/cherryapp/cherry-client/internal/analytics"
	"github.com/cherryapp/cherry-client/internal/api"
)

// AnalyticsClient is the slice of the remote API the generator reads from.
type AnalyticsClient interface {
	GetGraphData(ctx context.Context, auth api.Auth, daysBack int) ([]api.DateRecord, error)
	GetHeatMapData(ctx context.Context, auth api.Auth, daysBack int) ([]api.HeatMapEntry, error)
	GetAverageData(ctx context.Context, auth api.Auth) (api.AverageData, error)
}

// Generator builds progress reports.
type Generator struct {
	client AnalyticsClient
	now    func() time.Time
}

// NewGenerator creates a report generator.
func NewGenerator(client AnalyticsClient) *Generator {
	return &Generator{client: client, now: time.Now}
}

// NewGeneratorAt creates a generator with a fixed clock, for tests.
func NewGeneratorAt(client AnalyticsClient, now func() time.Time) *Generator {
	return &Generator{client: client, now: now}
}

// Generate fetches the user's analytics data and renders it in the
// requested format.
func (g *Generator) Generate(ctx context.Context, auth api.Auth, req Request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid report request: %w", err)
	}

	records, err := g.client.GetGraphData(ctx, auth, req.DaysBack)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch graph data: %w", err)
	}
	heatMap, err := g.client.GetHeatMapData(ctx, auth, req.DaysBack)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch heat map data: %w", err)
	}
	averages, err := g.client.GetAverageData(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch average data: %w", err)
	}

	monthly := analytics.ComputeMonthlyTracking(heatMap, g.now())

	switch req.Format {
	case FormatCSV:
		return g.generateCSV(records)
	case FormatPDF:
		return g.generatePDF(req, records, averages, monthly)
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}
}

func (g *Generator) generateCSV(records []api.DateRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "daily_weight", "daily_calories", "daily_protein_g"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := []string{rec.Date, rec.DailyWeight, rec.DailyCalories, rec.DailyProtein}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) generatePDF(req Request, records []api.DateRecord, averages api.AverageData, monthly analytics.MonthlyTracking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Cherry Progress Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Generated %s, covering the last %d days",
		g.now().Format("2006-01-02"), req.DaysBack))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Averages")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Calories: %.0f kcal/day", averages.AverageCalories))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Protein: %.0f g/day", averages.AverageProtein))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Weight: %.1f lbs", averages.AverageWeight))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Monthly Tracking")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Weight tracked: %d of %d completed days", monthly.WeightDays, analytics.MonthlyWindowDays))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Nutrition tracked: %d of %d completed days", monthly.NutritionDays, analytics.MonthlyWindowDays))
	pdf.Ln(10)

	g.drawDayTable(pdf, records)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) drawDayTable(pdf *gofpdf.Fpdf, records []api.DateRecord) {
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Recent Days")
	pdf.Ln(8)

	// Last 14 days at most.
	limit := 14
	if len(records) < limit {
		limit = len(records)
	}

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{35, 35, 40, 40}
	headers := []string{"Date", "Weight", "Calories", "Protein (g)"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, rec := range records[len(records)-limit:] {
		cells := []string{rec.Date, rec.DailyWeight, rec.DailyCalories, rec.DailyProtein}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
