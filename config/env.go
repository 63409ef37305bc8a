package config

import (
	"context"
	"os"
	"time"
)

// WithTimeout returns a context with a 10s timeout (generous for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnv is the exported variant for callers outside config.
func GetEnv(key, defaultValue string) string {
	return getEnv(key, defaultValue)
}
