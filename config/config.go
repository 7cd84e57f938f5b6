// Package config provides centralized configuration for clinicbase.
package config

import "os"

// Config holds all application configuration values.
type Config struct {
	DBPath string // Path to the clinic SQLite database file
}

// Load reads configuration from environment variables with sensible
// defaults. Called after the .env file has been loaded so both sources are
// visible.
func Load() Config {
	return Config{
		DBPath: getEnv("DB_PATH", "dental_clinic.db"),
	}
}

// getEnv returns the environment variable value or a default if not set.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
