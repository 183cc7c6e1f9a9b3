package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	MigrationsPath string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string

	// ServerURL is the base URL of the node API, e.g. "http://localhost:4002/".
	ServerURL      string
	Testnet        bool
	UseTor         bool
	ServerCurrency domain.ServerCurrency

	DisplayLocale string
	BitcoinUnit   domain.BitcoinUnit

	ExchangeRateSyncInterval time.Duration
	HTTPClientTimeout        time.Duration
	RateLimit                string
	CORSAllowedOrigins       []string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("SERVER_URL", "http://localhost:4002/")
	viper.SetDefault("TESTNET", false)
	viper.SetDefault("USE_TOR", false)
	viper.SetDefault("SERVER_CURRENCY", "BTC")
	viper.SetDefault("SERVER_TESTNET_CURRENCY", "TBTC")
	viper.SetDefault("DISPLAY_LOCALE", domain.DefaultLocale)
	viper.SetDefault("BITCOIN_UNIT", string(domain.BitcoinUnitBTC))
	viper.SetDefault("EXCHANGE_RATE_SYNC_INTERVAL", "15m")
	viper.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		ServerURL:      viper.GetString("SERVER_URL"),
		Testnet:        viper.GetBool("TESTNET"),
		UseTor:         viper.GetBool("USE_TOR"),
		ServerCurrency: domain.ServerCurrency{
			Code:        strings.ToUpper(viper.GetString("SERVER_CURRENCY")),
			TestnetCode: strings.ToUpper(viper.GetString("SERVER_TESTNET_CURRENCY")),
		},
		DisplayLocale:            viper.GetString("DISPLAY_LOCALE"),
		ExchangeRateSyncInterval: viper.GetDuration("EXCHANGE_RATE_SYNC_INTERVAL"),
		HTTPClientTimeout:        viper.GetDuration("HTTP_CLIENT_TIMEOUT"),
		RateLimit:                viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:       splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL not set, search providers are kept in memory")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == defaultJWTSecret {
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}

	unit, ok := domain.ParseBitcoinUnit(viper.GetString("BITCOIN_UNIT"))
	if !ok {
		return nil, fmt.Errorf("invalid BITCOIN_UNIT %q: must be one of BTC, MBTC, UBTC, SATOSHI", viper.GetString("BITCOIN_UNIT"))
	}
	cfg.BitcoinUnit = unit

	if _, err := language.Parse(cfg.DisplayLocale); err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_LOCALE %q: %w", cfg.DisplayLocale, err)
	}
	if cfg.ServerCurrency.Code == "" {
		return nil, fmt.Errorf("SERVER_CURRENCY must not be empty")
	}
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("SERVER_URL must not be empty")
	}
	if cfg.ExchangeRateSyncInterval <= 0 {
		return nil, fmt.Errorf("EXCHANGE_RATE_SYNC_INTERVAL must be a positive duration")
	}
	if cfg.HTTPClientTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_CLIENT_TIMEOUT must be a positive duration")
	}

	return cfg, nil
}

// CurrencySettings returns the display settings used when a request does not
// override them.
func (c *Config) CurrencySettings() domain.CurrencySettings {
	return domain.CurrencySettings{Locale: c.DisplayLocale, BitcoinUnit: c.BitcoinUnit}
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
