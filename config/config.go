package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port int
	Host string
	Env  string // "development" or "production"

	// Data directory
	DataDir string

	// Database
	DatabasePath string

	// Engine settings
	TickInterval  time.Duration // reminder/countdown evaluation interval
	SnoozeMinutes int           // deferral applied by the snooze action

	// Feedback settings
	AudioEnabled bool // play the looping alarm chime on the host machine
}

var (
	cfg  *Config
	once sync.Once
)

// Get returns the global configuration (singleton)
func Get() *Config {
	once.Do(func() {
		cfg = load()
	})
	return cfg
}

// load reads configuration from environment variables
func load() *Config {
	dataDir := getEnv("ZENITH_DATA_DIR", "./data")

	return &Config{
		// Server
		Port: getEnvInt("PORT", 12700),
		Host: getEnv("HOST", "0.0.0.0"),
		Env:  getEnv("ENV", "development"),

		// Data
		DataDir:      dataDir,
		DatabasePath: filepath.Join(dataDir, "zenith.sqlite"),

		// Engine
		TickInterval:  time.Duration(getEnvInt("ZENITH_TICK_MS", 1000)) * time.Millisecond,
		SnoozeMinutes: getEnvInt("ZENITH_SNOOZE_MINUTES", 5),

		// Feedback
		AudioEnabled: getEnv("ZENITH_AUDIO", "1") != "0",
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
