package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultJWTSecret          = "a-very-secret-key-should-be-longer-and-random"
	defaultRateLimit          = "300-M"
	defaultOverheadMultiplier = "1.15"
	defaultAnnualHours        = "2080"
	defaultAnalyticsTopN      = 5
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	JWTIssuer       string
	MigrationsPath  string
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// RateLimit is a ulule formatted rate such as "300-M".
	RateLimit     string
	PosthogAPIKey string

	// Costing defaults
	DefaultOverheadMultiplier decimal.Decimal
	DefaultAnnualHours        decimal.Decimal
	AnalyticsTopN             int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("DEFAULT_OVERHEAD_MULTIPLIER", defaultOverheadMultiplier)
	viper.SetDefault("DEFAULT_ANNUAL_HOURS", defaultAnnualHours)
	viper.SetDefault("ANALYTICS_TOP_N", defaultAnalyticsTopN)

	// Environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// An empty issuer disables the iss check.
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	cfg.DefaultOverheadMultiplier = positiveDecimal("DEFAULT_OVERHEAD_MULTIPLIER", defaultOverheadMultiplier)
	cfg.DefaultAnnualHours = positiveDecimal("DEFAULT_ANNUAL_HOURS", defaultAnnualHours)

	cfg.AnalyticsTopN = viper.GetInt("ANALYTICS_TOP_N")
	if cfg.AnalyticsTopN <= 0 {
		log.Printf("Warning: Invalid value for ANALYTICS_TOP_N (%d). Defaulting to %d.\n", cfg.AnalyticsTopN, defaultAnalyticsTopN)
		cfg.AnalyticsTopN = defaultAnalyticsTopN
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

// positiveDecimal reads key as a decimal and falls back to def when it is
// missing, malformed or not greater than zero.
func positiveDecimal(key, def string) decimal.Decimal {
	fallback := decimal.RequireFromString(def)
	raw := viper.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		return fallback
	}
	return d
}
