package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Identity IdentityConfig
	Pricing  PricingConfig
	LowStock LowStockConfig
	Sheets   SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the aggregate document store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// IdentityConfig contains settings for the external identity provider.
type IdentityConfig struct {
	BaseURL        string
	EmailDomain    string
	TimeoutSeconds int
}

// PricingConfig holds defaults for derived-price calculations.
type PricingConfig struct {
	DefaultMargin float64
}

// LowStockConfig holds scheduler-related settings for the low-stock sweep.
type LowStockConfig struct {
	CronSchedule string
	Timezone     string
}

// SheetsConfig contains configuration for the optional summary export. Both
// fields empty means the export is disabled.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	margin, err := parseFloat(getenvWithDefault("PRICING_DEFAULT_MARGIN", "0.3"))
	if err != nil {
		return nil, fmt.Errorf("PRICING_DEFAULT_MARGIN must be a number: %w", err)
	}

	timeout, err := strconv.Atoi(getenvWithDefault("IDENTITY_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("IDENTITY_TIMEOUT_SECONDS must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "obrador"),
		},
		Identity: IdentityConfig{
			BaseURL:        os.Getenv("IDENTITY_BASE_URL"),
			EmailDomain:    getenvWithDefault("IDENTITY_EMAIL_DOMAIN", "obrador.app"),
			TimeoutSeconds: timeout,
		},
		Pricing: PricingConfig{
			DefaultMargin: margin,
		},
		LowStock: LowStockConfig{
			CronSchedule: getenvWithDefault("LOW_STOCK_CRON_SCHEDULE", "0 7 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Europe/Madrid"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_EXPORT_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Identity.BaseURL == "" {
		return errors.New("IDENTITY_BASE_URL must be provided")
	}

	if c.Identity.EmailDomain == "" {
		return errors.New("IDENTITY_EMAIL_DOMAIN must not be empty")
	}

	if c.Identity.TimeoutSeconds <= 0 {
		return errors.New("IDENTITY_TIMEOUT_SECONDS must be positive")
	}

	if c.Pricing.DefaultMargin < 0 {
		return errors.New("PRICING_DEFAULT_MARGIN must not be negative")
	}

	if c.LowStock.CronSchedule == "" {
		return errors.New("LOW_STOCK_CRON_SCHEDULE must be provided")
	}

	if c.LowStock.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	// The sheet export is optional, but half a configuration is a mistake.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_EXPORT_ID must be provided together")
	}

	return nil
}

// SheetsEnabled reports whether the summary export target is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
