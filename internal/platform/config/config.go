package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	IsProduction bool

	// CurrencyPrecision is the number of decimal places ledger amounts carry.
	CurrencyPrecision int32

	// Allowance policy for the doubtful-accounts adjustment.
	AllowanceRate          decimal.Decimal
	ReceivableAccountNames []string
	AllowanceAccountName   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CURRENCY_PRECISION", 2)
	viper.SetDefault("ALLOWANCE_RATE", "0.02")
	viper.SetDefault("RECEIVABLE_ACCOUNT_NAMES", "Accounts Receivable,Notes Receivable,Accrued Income")
	viper.SetDefault("ALLOWANCE_ACCOUNT_NAME", "Allowance for Doubtful Accounts")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CurrencyPrecision = viper.GetInt32("CURRENCY_PRECISION")

	rateStr := viper.GetString("ALLOWANCE_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ALLOWANCE_RATE %q: %w", rateStr, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("ALLOWANCE_RATE %s must be between 0 and 1", rate)
	}
	cfg.AllowanceRate = rate

	names := strings.Split(viper.GetString("RECEIVABLE_ACCOUNT_NAMES"), ",")
	cfg.ReceivableAccountNames = make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.ReceivableAccountNames = append(cfg.ReceivableAccountNames, trimmed)
		}
	}

	cfg.AllowanceAccountName = viper.GetString("ALLOWANCE_ACCOUNT_NAME")

	return cfg, nil
}
