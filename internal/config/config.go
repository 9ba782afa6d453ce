// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server and CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Defaults to 16 MiB.
	MaxBodyBytes int64

	// MinBookingDays and MaxBookingDays bound the stay length accepted by
	// search and availability. Default to 1 and 365.
	MinBookingDays int
	MaxBookingDays int

	// HotelSearchURL is the API base URL the CLI talks to.
	// Defaults to "http://localhost:8080".
	HotelSearchURL string
}

const defaultMaxBodyBytes = 16 << 20

// LoadDotEnv loads variables from path (".env" when empty) into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config.LoadDotEnv: %w", err)
	}
	return nil
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set or any
// numeric variables that do not parse.
func Load() (Config, error) {
	cfg, err := loadCommon()
	if err != nil {
		return Config{}, err
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadClient is Load without the server-only requirements, for the CLI.
func LoadClient() (Config, error) {
	return loadCommon()
}

func loadCommon() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		HotelSearchURL: getEnv("HOTEL_SEARCH_URL", "http://localhost:8080"),
	}

	var errs []error
	var err error
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", defaultMaxBodyBytes); err != nil {
		errs = append(errs, err)
	}
	if cfg.MinBookingDays, err = getInt("MIN_BOOKING_DAYS", 1); err != nil {
		errs = append(errs, err)
	}
	if cfg.MaxBookingDays, err = getInt("MAX_BOOKING_DAYS", 365); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 && cfg.MinBookingDays > cfg.MaxBookingDays {
		errs = append(errs, fmt.Errorf("MIN_BOOKING_DAYS (%d) exceeds MAX_BOOKING_DAYS (%d)", cfg.MinBookingDays, cfg.MaxBookingDays))
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getInt64 parses the variable named by key as a positive integer.
func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func getInt(key string, fallback int) (int, error) {
	n, err := getInt64(key, int64(fallback))
	return int(n), err
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
