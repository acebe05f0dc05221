package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr     string
	LogLevel string
	NodeID   int64

	// Guest auth
	GuestUsername string
	GuestPassword string
	TokenTTL      time.Duration

	// Per-client admission
	RateLimit  int
	RateWindow time.Duration

	// Generation backend
	AIProvider   string
	AIAPIKey     string
	AIModel      string
	AIBaseURL    string
	AITimeout    time.Duration
	AIRatePerMin int

	// Data collection
	SearchRegion     string
	SearchMaxResults int
	CollectMaxChars  int
	SearchTimeout    time.Duration
	ProxyURL         string
}

func Load() Config {
	return Config{
		Addr:     getEnv("TRADEOPS_ADDR", ":8080"),
		LogLevel: getEnv("TRADEOPS_LOG_LEVEL", "info"),
		NodeID:   getEnvInt64("TRADEOPS_NODE_ID", 0),

		GuestUsername: getEnv("TRADEOPS_GUEST_USERNAME", "guest"),
		GuestPassword: getEnv("TRADEOPS_GUEST_PASSWORD", "appscrip2025"),
		TokenTTL:      getEnvDuration("TRADEOPS_TOKEN_TTL", 24*time.Hour),

		RateLimit:  getEnvInt("TRADEOPS_RATE_LIMIT", 3),
		RateWindow: getEnvDuration("TRADEOPS_RATE_WINDOW", 5*time.Minute),

		AIProvider:   getEnv("TRADEOPS_AI_PROVIDER", "compatible"),
		AIAPIKey:     getEnv("TRADEOPS_AI_API_KEY", os.Getenv("GEMINI_API_KEY")),
		AIModel:      getEnv("TRADEOPS_AI_MODEL", "gemini-1.5-flash"),
		AIBaseURL:    getEnv("TRADEOPS_AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		AITimeout:    getEnvDuration("TRADEOPS_AI_TIMEOUT", 30*time.Second),
		AIRatePerMin: getEnvInt("TRADEOPS_AI_RATE_PER_MIN", 10),

		SearchRegion:     getEnv("TRADEOPS_SEARCH_REGION", "in-en"),
		SearchMaxResults: getEnvInt("TRADEOPS_SEARCH_MAX_RESULTS", 5),
		CollectMaxChars:  getEnvInt("TRADEOPS_COLLECT_MAX_CHARS", 4000),
		SearchTimeout:    getEnvDuration("TRADEOPS_SEARCH_TIMEOUT", 10*time.Second),
		ProxyURL:         getEnv("TRADEOPS_PROXY_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
