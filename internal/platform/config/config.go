package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	JWTSecret      string
	AllowedOrigins []string
	RateLimit      string // limiter format, e.g. "100-M"

	// PriceAdminUsers are the token subjects allowed to write the price table.
	PriceAdminUsers []string

	RedisURL string

	MarketFeedURL             string
	MarketRefreshInterval     time.Duration
	PriceTableRefreshInterval time.Duration
	FallbackFiatRates         map[string]decimal.Decimal

	SettlementBaseURL string
	SettlementTimeout time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		PriceAdminUsers:   splitList(v.GetString("PRICE_ADMIN_USERS")),
		AllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:         v.GetString("RATE_LIMIT"),
		RedisURL:          v.GetString("REDIS_URL"),
		MarketFeedURL:     strings.TrimRight(v.GetString("MARKET_FEED_URL"), "/"),
		SettlementBaseURL: strings.TrimRight(v.GetString("SETTLEMENT_BASE_URL"), "/"),
		KafkaBrokers:      splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:        v.GetString("KAFKA_TOPIC"),
		PosthogAPIKey:     v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:   v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if len(cfg.PriceAdminUsers) == 0 {
		log.Println("Warning: PRICE_ADMIN_USERS not set. The price table is read-only over the API.")
	}
	if cfg.SettlementBaseURL == "" {
		log.Println("Warning: SETTLEMENT_BASE_URL not set. Orders and closures of funded wallets will fail.")
	}

	cfg.MarketRefreshInterval = durationOrDefault(v, "MARKET_REFRESH_INTERVAL", 60*time.Second)
	cfg.PriceTableRefreshInterval = durationOrDefault(v, "PRICE_TABLE_REFRESH_INTERVAL", 30*time.Second)
	cfg.SettlementTimeout = durationOrDefault(v, "SETTLEMENT_TIMEOUT", 10*time.Second)

	rates, err := ParseFallbackRates(v.GetString("FALLBACK_FIAT_RATES"))
	if err != nil {
		return nil, err
	}
	cfg.FallbackFiatRates = rates

	return cfg, nil
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("PRICE_ADMIN_USERS", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("MARKET_FEED_URL", "https://api.coingecko.com/api/v3")
	v.SetDefault("MARKET_REFRESH_INTERVAL", "60s")
	v.SetDefault("PRICE_TABLE_REFRESH_INTERVAL", "30s")
	v.SetDefault("SETTLEMENT_BASE_URL", "")
	v.SetDefault("SETTLEMENT_TIMEOUT", "10s")
	v.SetDefault("FALLBACK_FIAT_RATES", "EUR:1,USD:0.92")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "wallet-events")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}

// ParseFallbackRates parses "EUR:1,USD:0.92" into a code -> rate map. Rates must be positive.
func ParseFallbackRates(raw string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	for _, pair := range splitList(raw) {
		code, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid FALLBACK_FIAT_RATES entry %q, want CODE:RATE", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("invalid FALLBACK_FIAT_RATES rate for %s: %q", code, value)
		}
		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return rates, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
