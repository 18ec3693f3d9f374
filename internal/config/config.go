package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Sessions
	JWTSecret          string
	JWTExpirationDur   time.Duration
	RememberMeDuration time.Duration

	// Credentials
	PasswordScheme string

	// Display
	CurrencySymbol string
}

// Supported values for DBDriver and PasswordScheme.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		// Database
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBPath:     getEnv("DB_PATH", "./data/finance.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "finance"),
		DBPassword: getEnv("DB_PASSWORD", "finance"),
		DBName:     getEnv("DB_NAME", "finance"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Sessions
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Credentials
		PasswordScheme: strings.ToLower(getEnv("PASSWORD_SCHEME", SchemeSHA256)),

		// Display
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
	}

	config.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.RememberMeDuration = getDuration("REMEMBER_ME_EXPIRES_IN", 30*24*time.Hour)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			problems = append(problems, "DB_PATH cannot be empty when DB_DRIVER is sqlite")
		}
	case DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			problems = append(problems, "DB_HOST and DB_NAME are required when DB_DRIVER is postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid DB_DRIVER %q: must be sqlite or postgres", c.DBDriver))
	}

	switch c.PasswordScheme {
	case SchemeSHA256, SchemeBcrypt:
	default:
		problems = append(problems, fmt.Sprintf("invalid PASSWORD_SCHEME %q: must be sha256 or bcrypt", c.PasswordScheme))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET cannot be empty")
	}
	if c.JWTExpirationDur <= 0 {
		problems = append(problems, "JWT_EXPIRES_IN must be positive")
	}
	if c.RememberMeDuration < c.JWTExpirationDur {
		problems = append(problems, "REMEMBER_ME_EXPIRES_IN must not be shorter than JWT_EXPIRES_IN")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// PostgresURL returns the connection URL used by gorm and the migrator.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
