package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	ServiceName string
	HTTPPort    int
	Session     SessionConfig
	Billing     BillingConfig
	Latency     LatencyConfig
	RabbitMQ    RabbitMQConfig
	PDF         PDFConfig
}

// SessionConfig holds session token settings
type SessionConfig struct {
	Secret   string
	Issuer   string
	TTLHours int
}

// BillingConfig holds tariff and seeding settings
type BillingConfig struct {
	UnitRate       string
	UsageDays      int
	BillMonths     int
	SeedExtraUsers int
}

// LatencyConfig holds the simulated network latency applied to login,
// registration and payment calls
type LatencyConfig struct {
	SimulatedDelayMS int
}

// RabbitMQConfig holds the optional payment-event broker settings.
// Publishing is disabled when URL is empty.
type RabbitMQConfig struct {
	URL               string
	PaymentExchange   string
	PaymentRoutingKey string
}

// PDFConfig holds the bill/receipt renderer settings
type PDFConfig struct {
	Disabled       bool
	RemoteURL      string
	TimeoutSeconds int
	NoSandbox      bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", "energy-billing-service"),
		HTTPPort:    getEnvAsInt("HTTP_PORT", 8080),
		Session: SessionConfig{
			Secret:   getEnv("SESSION_SECRET", ""),
			Issuer:   getEnv("SESSION_ISSUER", "energy-billing-service"),
			TTLHours: getEnvAsInt("SESSION_TTL_HOURS", 24),
		},
		Billing: BillingConfig{
			UnitRate:       getEnv("BILLING_UNIT_RATE", "0.12"),
			UsageDays:      getEnvAsInt("BILLING_USAGE_DAYS", 30),
			BillMonths:     getEnvAsInt("BILLING_BILL_MONTHS", 6),
			SeedExtraUsers: getEnvAsInt("SEED_EXTRA_USERS", 0),
		},
		Latency: LatencyConfig{
			SimulatedDelayMS: getEnvAsInt("SIMULATED_LATENCY_MS", 0),
		},
		RabbitMQ: RabbitMQConfig{
			URL:               getEnv("RABBITMQ_URL", ""),
			PaymentExchange:   getEnv("RABBITMQ_PAYMENT_EXCHANGE", "energy-billing.payments.exchange"),
			PaymentRoutingKey: getEnv("RABBITMQ_PAYMENT_ROUTING_KEY", "bill.payment.completed"),
		},
		PDF: PDFConfig{
			Disabled:       getEnvAsBool("PDF_DISABLE", false),
			RemoteURL:      getEnv("CHROME_REMOTE_URL", ""),
			TimeoutSeconds: getEnvAsInt("PDF_RENDER_TIMEOUT_S", 30),
			NoSandbox:      getEnvAsBool("PDF_CHROME_NO_SANDBOX", false),
		},
	}

	// Validate required fields
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required but not set in environment variables")
	}
	if cfg.Billing.UsageDays <= 0 || cfg.Billing.BillMonths <= 0 {
		return nil, fmt.Errorf("BILLING_USAGE_DAYS and BILLING_BILL_MONTHS must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
