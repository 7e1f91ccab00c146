package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetGraphData returns the last daysBack date records for trend graphs.
func (c *Client) GetGraphData(ctx context.Context, auth Auth, daysBack int) ([]DateRecord, error) {
	var records []DateRecord
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/graphs/data",
		query:  url.Values{"daysback": {strconv.Itoa(daysBack)}},
		auth:   &auth,
		op:     "retrieving graph data",
		shape:  errJSON,
	}, &records)
	return records, err
}

// GetHeatMapData returns per-day tracking classifications for the trailing
// daysBack window.
func (c *Client) GetHeatMapData(ctx context.Context, auth Auth, daysBack int) ([]HeatMapEntry, error) {
	var payload struct {
		HeatMapData []HeatMapEntry `json:"heatMapData"`
	}
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/graphs/heatmap",
		query:  url.Values{"daysback": {strconv.Itoa(daysBack)}},
		auth:   &auth,
		op:     "retrieving heat map data",
		shape:  errJSON,
	}, &payload)
	return payload.HeatMapData, err
}

// GetAverageData returns the user's all-time calorie/protein/weight averages.
func (c *Client) GetAverageData(ctx context.Context, auth Auth) (AverageData, error) {
	var payload struct {
		AverageData AverageData `json:"averageData"`
	}
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/graphs/averages",
		auth:   &auth,
		op:     "retrieving average data",
		shape:  errJSON,
	}, &payload)
	return payload.AverageData, err
}
