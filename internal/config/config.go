package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Tax      TaxConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds the signing secret used to verify tenant-scoped tokens
type JWTConfig struct {
	Secret string
}

// TaxConfig holds statutory rates. Defaults follow the Ugandan regime;
// override per deployment through the environment.
type TaxConfig struct {
	VATRate          decimal.Decimal
	NSSFEmployeeRate decimal.Decimal
	NSSFEmployerRate decimal.Decimal
	CorporateRate    decimal.Decimal
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments; the
	// environment is expected to be populated there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "kazi-ledger"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Tax configuration
	vatRate, err := getEnvDecimal("TAX_VAT_RATE", "0.18")
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_VAT_RATE: %w", err)
	}
	nssfEmployee, err := getEnvDecimal("TAX_NSSF_EMPLOYEE_RATE", "0.05")
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_NSSF_EMPLOYEE_RATE: %w", err)
	}
	nssfEmployer, err := getEnvDecimal("TAX_NSSF_EMPLOYER_RATE", "0.10")
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_NSSF_EMPLOYER_RATE: %w", err)
	}
	corporateRate, err := getEnvDecimal("TAX_CORPORATE_RATE", "0.30")
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_CORPORATE_RATE: %w", err)
	}

	config.Tax = TaxConfig{
		VATRate:          vatRate,
		NSSFEmployeeRate: nssfEmployee,
		NSSFEmployerRate: nssfEmployer,
		CorporateRate:    corporateRate,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Tax.VATRate.IsNegative() || c.Tax.VATRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("TAX_VAT_RATE must be in [0, 1)")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	return decimal.NewFromString(getEnv(key, fallback))
}
