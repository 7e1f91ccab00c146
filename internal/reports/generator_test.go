package reports

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cherryapp/cherry-client/internal/api"
)

type mockAnalyticsClient struct {
	graphFunc   func(ctx context.Context, auth api.Auth, daysBack int) ([]api.DateRecord, error)
	heatMapFunc func(ctx context.Context, auth api.Auth, daysBack int) ([]api.HeatMapEntry, error)
	averageFunc func(ctx context.Context, auth api.Auth) (api.AverageData, error)
}

func (m *mockAnalyticsClient) GetGraphData(ctx context.Context, auth api.Auth, daysBack int) ([]api.DateRecord, error) {
	if m.graphFunc != nil {
		return m.graphFunc(ctx, auth, daysBack)
	}
	return []api.DateRecord{
		{Date: "2026-08-28", DailyWeight: "180", DailyCalories: "2100", DailyProtein: "120"},
		{Date: "2026-08-29", DailyWeight: "179.5", DailyCalories: "1950", DailyProtein: "105"},
	}, nil
}

func (m *mockAnalyticsClient) GetHeatMapData(ctx context.Context, auth api.Auth, daysBack int) ([]api.HeatMapEntry, error) {
	if m.heatMapFunc != nil {
		return m.heatMapFunc(ctx, auth, daysBack)
	}
	return []api.HeatMapEntry{{Date: "2026-07-15", Value: api.HeatMapBoth}}, nil
}

func (m *mockAnalyticsClient) GetAverageData(ctx context.Context, auth api.Auth) (api.AverageData, error) {
	if m.averageFunc != nil {
		return m.averageFunc(ctx, auth)
	}
	return api.AverageData{AverageCalories: 2025, AverageProtein: 112.5, AverageWeight: 179.75}, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

var testAuth = api.Auth{Token: "tok", UserID: "u1"}

func TestGenerate_CSV(t *testing.T) {
	gen := NewGeneratorAt(&mockAnalyticsClient{}, fixedNow)

	out, err := gen.Generate(context.Background(), testAuth, Request{Format: FormatCSV, DaysBack: 30})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	got := string(out)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want header plus 2 rows:\n%s", len(lines), got)
	}
	if lines[0] != "date,daily_weight,daily_calories,daily_protein_g" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "2026-08-29,179.5,1950,105" {
		t.Errorf("last row = %q", lines[2])
	}
}

func TestGenerate_PDF(t *testing.T) {
	gen := NewGeneratorAt(&mockAnalyticsClient{}, fixedNow)

	out, err := gen.Generate(context.Background(), testAuth, Request{Format: FormatPDF, DaysBack: 30})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("pdf output is empty")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not look like a pdf: %q", out[:min(8, len(out))])
	}
}

func TestGenerate_InvalidRequest(t *testing.T) {
	gen := NewGeneratorAt(&mockAnalyticsClient{}, fixedNow)

	tests := []struct {
		name string
		req  Request
	}{
		{"unknown format", Request{Format: "xml", DaysBack: 30}},
		{"zero days", Request{Format: FormatCSV, DaysBack: 0}},
		{"too many days", Request{Format: FormatCSV, DaysBack: 400}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := gen.Generate(context.Background(), testAuth, tt.req); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestGenerate_FetchFailurePropagates(t *testing.T) {
	client := &mockAnalyticsClient{
		heatMapFunc: func(ctx context.Context, auth api.Auth, daysBack int) ([]api.HeatMapEntry, error) {
			return nil, errors.New("backend down")
		},
	}
	gen := NewGeneratorAt(client, fixedNow)

	_, err := gen.Generate(context.Background(), testAuth, Request{Format: FormatCSV, DaysBack: 30})
	if err == nil || !strings.Contains(err.Error(), "heat map") {
		t.Errorf("err = %v, want a heat map fetch failure", err)
	}
}

func TestGenerate_CSVWithNoRecords(t *testing.T) {
	client := &mockAnalyticsClient{
		graphFunc: func(ctx context.Context, auth api.Auth, daysBack int) ([]api.DateRecord, error) {
			return nil, nil
		},
	}
	gen := NewGeneratorAt(client, fixedNow)

	out, err := gen.Generate(context.Background(), testAuth, Request{Format: FormatCSV, DaysBack: 30})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "date,daily_weight,daily_calories,daily_protein_g" {
		t.Errorf("empty report = %q, want header only", got)
	}
}
