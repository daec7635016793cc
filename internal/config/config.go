package config

import (
	"os"
	"strconv"
)

// Config holds server and pipeline configuration, all env-driven with code
// defaults.
type Config struct {
	Port        string
	DataDir     string
	DataBaseURL string // static host for the snapshot fallback fetch
	RedisURI    string // empty keeps thread state in memory

	// CoverageModel picks the enablement credit model: "completion" or
	// "duration". One model per deployment; the engine never blends them.
	CoverageModel string

	// SummaryWindowDays is the trailing event window the summary endpoint
	// uses for its coverage overlay.
	SummaryWindowDays int

	// MinVisiblePct floors nonzero coverage so real activity never renders as
	// a flat zero ring. 0 disables the floor.
	MinVisiblePct int
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		DataDir:           getEnvOrDefault("DATA_DIR", "data"),
		DataBaseURL:       os.Getenv("DATA_BASE_URL"),
		RedisURI:          os.Getenv("REDIS_URI"),
		CoverageModel:     getEnvOrDefault("COVERAGE_CREDIT_MODEL", "completion"),
		SummaryWindowDays: getEnvIntOrDefault("SUMMARY_WINDOW_DAYS", 120),
		MinVisiblePct:     getEnvIntOrDefault("COVERAGE_MIN_VISIBLE_PCT", 12),
	}
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
