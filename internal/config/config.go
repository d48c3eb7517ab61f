// Package config provides environment-driven configuration for the engine.
package config

import (
	"os"
	"strconv"
)

// CompanyProfile holds the issuing company block used to seed new documents.
type CompanyProfile struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
}

// Config is the engine configuration.
type Config struct {
	Company CompanyProfile

	// NumberPrefix is the document number prefix (INV-yyyyMMdd-HHmm).
	NumberPrefix string

	LogLevel    string
	Development bool
}

// Load reads configuration from the environment with sensible defaults.
// The company defaults are the placeholder letterhead the UI shows until the
// installation sets its own.
func Load() *Config {
	return &Config{
		Company: CompanyProfile{
			Name:    getEnv("COMPANY_NAME", "Εταιρεία Μου ΑΕ"),
			Address: getEnv("COMPANY_ADDRESS", "Διεύθυνση Εταιρείας 123\n12345 Αθήνα"),
			Phone:   getEnv("COMPANY_PHONE", "210-1234567"),
			Email:   getEnv("COMPANY_EMAIL", "info@company.gr"),
			TaxID:   getEnv("COMPANY_TAX_ID", "123456789"),
		},
		NumberPrefix: getEnv("DOC_NUMBER_PREFIX", "INV"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Development:  getEnvBool("APP_DEV", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
