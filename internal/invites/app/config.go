package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	JWTSecret string // Required: shared secret for bearer token verification
	JWTIssuer string // Optional: expected issuer claim (default: lodgeline)

	Backend     string // Optional: backend strategy, comma-separated "local"/"remote" (default: local)
	RemoteURL   string // Required when Backend includes "remote": base URL of the remote deployment
	StoreDriver string // Optional: local store driver (sqlite, memory) (default: sqlite)

	DatabaseFile  string // Optional: path to SQLite database file (default: ./invites.db)
	PublicBaseURL string // Optional: public join-link prefix for QR codes (default: http://localhost:8080)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expiry sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		JWTSecret:            os.Getenv("INVITES_JWT_SECRET"),
		JWTIssuer:            getEnvOrDefault("INVITES_JWT_ISSUER", "lodgeline"),
		Backend:              getEnvOrDefault("INVITES_BACKEND", "local"),
		RemoteURL:            os.Getenv("INVITES_REMOTE_URL"),
		StoreDriver:          getEnvOrDefault("INVITES_STORE_DRIVER", "sqlite"),
		DatabaseFile:         getEnvOrDefault("INVITES_DATABASE_FILE", "invites.db"),
		PublicBaseURL:        getEnvOrDefault("INVITES_PUBLIC_BASE_URL", "http://localhost:8080"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

// UsesLocal reports whether the configured backend chain includes the
// local store.
func (c Config) UsesLocal() bool {
	for _, name := range strings.Split(c.Backend, ",") {
		if strings.TrimSpace(name) == "local" {
			return true
		}
	}
	return false
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
