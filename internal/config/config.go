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

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	ServerPort string
	GinMode    string
	LogLevel   string
	SeedData   bool
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "trivia"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "warn")),
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	switch cfg.LogLevel {
	case "silent", "error", "warn", "info":
	default:
		return nil, fmt.Errorf("unsupported LOG_LEVEL %q", cfg.LogLevel)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DATA", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DATA: %w", err)
	}
	cfg.SeedData = seed

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
