package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderSumUp       = "sumup"
	ProviderMercadoPago = "mercadopago"
)

// Config holds the application configuration.
type Config struct {
	Port            int
	PaymentProvider string
	GatewayMock     bool

	SumUpAPIKey            string
	SumUpAPIKeySecretID    string
	SumUpAPIBaseURL        string
	SumUpCheckoutPageURL   string
	SumUpMerchantCode      string
	SumUpResolveMerchant   bool
	SumUpHTTPTimeout       time.Duration
	MercadoPagoAccessToken string

	Checkout CheckoutConfig

	AWSRegion string
}

// CheckoutConfig carries the fixed fields of every checkout we create.
type CheckoutConfig struct {
	Currency    string
	Description string
	ReturnURL   string
}

// Load loads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:                   getEnvAsInt("PORT", 8080),
		PaymentProvider:        strings.ToLower(getEnv("PAYMENT_PROVIDER", ProviderSumUp)),
		GatewayMock:            isMockFlag(os.Getenv("PAYMENT_GATEWAY_MOCK")),
		SumUpAPIKey:            strings.TrimSpace(os.Getenv("SUMUP_API_KEY")),
		SumUpAPIKeySecretID:    strings.TrimSpace(os.Getenv("SUMUP_API_KEY_SECRET_ID")),
		SumUpAPIBaseURL:        strings.TrimRight(getEnv("SUMUP_API_BASE_URL", "https://api.sumup.com"), "/"),
		SumUpCheckoutPageURL:   strings.TrimRight(getEnv("SUMUP_CHECKOUT_PAGE_BASE_URL", "https://pay.sumup.com/checkout"), "/"),
		SumUpMerchantCode:      strings.TrimSpace(os.Getenv("SUMUP_MERCHANT_CODE")),
		SumUpResolveMerchant:   getEnvAsBool("SUMUP_RESOLVE_MERCHANT", true),
		SumUpHTTPTimeout:       getEnvAsDuration("SUMUP_HTTP_TIMEOUT", 10*time.Second),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		Checkout: CheckoutConfig{
			Currency:    getEnv("CHECKOUT_CURRENCY", "EUR"),
			Description: getEnv("CHECKOUT_DESCRIPTION", "Ordine N'Farinati Delivery"),
			ReturnURL:   getEnv("CHECKOUT_RETURN_URL", "https://nfarinati.pages.dev/successo.html"),
		},
		AWSRegion: getEnv("AWS_REGION", "eu-south-1"),
	}
}

// ResolveMerchant reports whether the account-info call must precede checkout creation.
func (c *Config) ResolveMerchant() bool {
	if c.PaymentProvider != ProviderSumUp {
		return false
	}
	return c.SumUpResolveMerchant && c.SumUpMerchantCode == ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "t", "true", "yes", "on":
			return true
		case "0", "f", "false", "no", "off":
			return false
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func isMockFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
