package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Rate feed / sync tuning. The defaults encode product heuristics
	// observed in production; override them only deliberately.
	RateFeedURL        string        // oracle endpoint serving the rate snapshot
	RateFeedTimeout    time.Duration // whole-fetch timeout
	RateSyncMaxEntries int           // valid-entry ceiling per payload
	RateSyncCooldown   time.Duration // minimum gap between manual syncs
	SyncTriggerRate    string        // limiter format, e.g. "5-M"
	APIRateLimit       string        // per-IP limit for the whole v1 API

	// RepairFlagFactor is the multiplier over the estimated USD value above
	// which a stored snapshot balance is considered corrupted.
	RepairFlagFactor int64

	MigrationsPath string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_FEED_URL", "https://rates.centavo.app/v1/latest")
	viper.SetDefault("RATE_FEED_TIMEOUT", "8s")
	viper.SetDefault("RATE_SYNC_MAX_ENTRIES", 2000)
	viper.SetDefault("RATE_SYNC_COOLDOWN", "10m")
	viper.SetDefault("SYNC_TRIGGER_RATE", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "100-M")
	viper.SetDefault("REPAIR_FLAG_FACTOR", 10)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RateFeedURL = viper.GetString("RATE_FEED_URL")

	feedTimeout, err := time.ParseDuration(viper.GetString("RATE_FEED_TIMEOUT"))
	if err != nil {
		feedTimeout = 8 * time.Second
		log.Printf("Warning: Invalid value for RATE_FEED_TIMEOUT. Defaulting to %s.\n", feedTimeout)
	}
	cfg.RateFeedTimeout = feedTimeout

	cfg.RateSyncMaxEntries = viper.GetInt("RATE_SYNC_MAX_ENTRIES")
	if cfg.RateSyncMaxEntries <= 0 {
		cfg.RateSyncMaxEntries = 2000
	}

	cooldown, err := time.ParseDuration(viper.GetString("RATE_SYNC_COOLDOWN"))
	if err != nil {
		cooldown = 10 * time.Minute
		log.Printf("Warning: Invalid value for RATE_SYNC_COOLDOWN. Defaulting to %s.\n", cooldown)
	}
	cfg.RateSyncCooldown = cooldown

	cfg.SyncTriggerRate = viper.GetString("SYNC_TRIGGER_RATE")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")

	cfg.RepairFlagFactor = viper.GetInt64("REPAIR_FLAG_FACTOR")
	if cfg.RepairFlagFactor <= 0 {
		cfg.RepairFlagFactor = 10
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}
