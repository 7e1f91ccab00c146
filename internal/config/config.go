// Package config loads client configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the runtime settings of the client.
type Config struct {
	Env      string // local | staging | prod
	LogLevel string

	// Backend
	APIBaseURL         string
	HTTPTimeoutSeconds int

	// Session persistence
	SessionFile string

	// Analytics
	HeatMapDaysBack int
	GraphDaysBack   int

	// Smoke test pacing
	SmokeRequestsPerSecond float64
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Config {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}

	apiBaseURL := strings.TrimSpace(os.Getenv("API_BASE_URL"))

	httpTimeout := envInt("HTTP_TIMEOUT_SECONDS", 30)
	if httpTimeout <= 0 {
		httpTimeout = 30
	}

	sessionFile := strings.TrimSpace(os.Getenv("SESSION_FILE"))
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		sessionFile = filepath.Join(home, ".cherry", "session.json")
	}

	// 252 days fills the heat-map grid (36 weeks).
	heatMapDaysBack := envInt("HEATMAP_DAYS_BACK", 252)
	graphDaysBack := envInt("GRAPH_DAYS_BACK", 30)

	smokeRPS := envFloat("SMOKE_REQUESTS_PER_SECOND", 2)
	if smokeRPS <= 0 {
		smokeRPS = 2
	}

	return &Config{
		Env:                    env,
		LogLevel:               logLevel,
		APIBaseURL:             apiBaseURL,
		HTTPTimeoutSeconds:     httpTimeout,
		SessionFile:            sessionFile,
		HeatMapDaysBack:        heatMapDaysBack,
		GraphDaysBack:          graphDaysBack,
		SmokeRequestsPerSecond: smokeRPS,
	}
}

// envInt reads an int env var with a default value.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultVal
	}
	return v
}
