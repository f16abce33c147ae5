// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config represents the application configuration
type Config struct {
	// Optional database connections; nil when the corresponding
	// environment is absent
	Snowflake *SnowflakeConfig
	Postgres  *PostgresConfig

	// Classification settings
	WorkerPoolSize int

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables. Database
// configurations are only loaded when their environment is present; file-based
// runs need neither backend.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		WorkerPoolSize: getEnvAsInt("WORKER_POOL_SIZE", 0), // 0 means use runtime.NumCPU()
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	if os.Getenv("SNOWFLAKE_USER") != "" {
		snowConfig, err := LoadSnowflakeConfig()
		if err != nil {
			return nil, errors.New("failed to load Snowflake configuration: " + err.Error())
		}
		cfg.Snowflake = snowConfig
	}

	if os.Getenv("POSTGRES_USER") != "" {
		pgConfig, err := LoadPostgresConfig()
		if err != nil {
			return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
		}
		cfg.Postgres = pgConfig
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.WorkerPoolSize < 0 {
		return errors.New("worker pool size cannot be negative")
	}

	if c.LogLevel == "" {
		return errors.New("log level cannot be empty")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
