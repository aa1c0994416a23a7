package config

import (
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/money_ledger/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      string
	EnableDBCheck bool

	// Storage
	DataBackend  string
	SQLiteDBPath string
	DatabaseURL  string

	// Sessions
	SessionSecret string
	SessionName   string
	SessionMaxAge time.Duration

	// Owner credential
	AuthUsername     string
	AuthPassword     string
	AuthPasswordHash string

	LoginRateLimit     string
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// The result is not validated; call Validate before using it.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("DATA_BACKEND", BackendSQLite)
	viper.SetDefault("SQLITE_DB_PATH", "./data/ledger.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_NAME", "ledger_session")
	viper.SetDefault("SESSION_MAX_AGE", "24h")
	viper.SetDefault("AUTH_USERNAME", "")
	viper.SetDefault("AUTH_PASSWORD", "")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", utils.DefaultPosthogEndpoint)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		LogLevel:         strings.ToLower(viper.GetString("LOG_LEVEL")),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		DataBackend:      strings.ToLower(viper.GetString("DATA_BACKEND")),
		SQLiteDBPath:     viper.GetString("SQLITE_DB_PATH"),
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		SessionSecret:    viper.GetString("SESSION_SECRET"),
		SessionName:      viper.GetString("SESSION_NAME"),
		AuthUsername:     viper.GetString("AUTH_USERNAME"),
		AuthPassword:     viper.GetString("AUTH_PASSWORD"),
		AuthPasswordHash: viper.GetString("AUTH_PASSWORD_HASH"),
		LoginRateLimit:   viper.GetString("LOGIN_RATE_LIMIT"),
		PosthogAPIKey:    viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  viper.GetString("POSTHOG_ENDPOINT"),
	}

	maxAgeStr := viper.GetString("SESSION_MAX_AGE")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		maxAge = 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_MAX_AGE ('%s'). Defaulting to %s.\n", maxAgeStr, maxAge)
	}
	cfg.SessionMaxAge = maxAge

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.SessionSecret == "" && !cfg.IsProduction {
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		cfg.SessionSecret = secret
		log.Println("Warning: SESSION_SECRET not set. Using a random secret, sessions will not survive a restart.")
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errors = append(errors, "PGSQL_URL is required when using postgres backend")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [%s %s]", c.DataBackend, BackendSQLite, BackendPostgres))
	}

	if c.SessionSecret == "" {
		errors = append(errors, "SESSION_SECRET is required")
	}
	if c.SessionMaxAge <= 0 {
		errors = append(errors, fmt.Sprintf("invalid session max age %v: must be positive", c.SessionMaxAge))
	}

	if c.AuthUsername == "" {
		errors = append(errors, "AUTH_USERNAME is required")
	}
	if c.AuthPassword == "" && c.AuthPasswordHash == "" {
		errors = append(errors, "either AUTH_PASSWORD or AUTH_PASSWORD_HASH must be provided")
	}
	if len(c.AuthPassword) > utils.MaxPasswordBytes {
		errors = append(errors, fmt.Sprintf("AUTH_PASSWORD is too long: at most %d bytes", utils.MaxPasswordBytes))
	}

	if _, err := limiter.NewRateFromFormatted(c.LoginRateLimit); err != nil {
		errors = append(errors, fmt.Sprintf("invalid login rate limit '%s': %v", c.LoginRateLimit, err))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
