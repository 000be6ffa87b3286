package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Upload limits
	MaxUploadMB int

	// Conversion
	TemplateDir       string
	DefaultCurrency   string
	StorefrontBaseURL string

	// eBay listing defaults
	EbayLocation        string
	EbayDispatchTime    string
	EbayShippingService string
	EbayShippingCost    string
	EbayPaymentProfile  string
	EbayReturnProfile   string
	EbayShippingProfile string
}

func Load() *Config {
	maxUploadMB, _ := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "10"))

	return &Config{
		// Server
		Port:        getEnv("PORT", "8093"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Upload limits
		MaxUploadMB: maxUploadMB,

		// Conversion
		TemplateDir:       getEnv("TEMPLATE_DIR", "templates"),
		DefaultCurrency:   getEnv("DEFAULT_CURRENCY", "GBP"),
		StorefrontBaseURL: getEnv("STOREFRONT_BASE_URL", "https://ecokartuk.com"),

		// eBay listing defaults
		EbayLocation:        getEnv("EBAY_LOCATION", "Chhindwara"),
		EbayDispatchTime:    getEnv("EBAY_DISPATCH_TIME", "3"),
		EbayShippingService: getEnv("EBAY_SHIPPING_SERVICE", "UK_RoyalMail48"),
		EbayShippingCost:    getEnv("EBAY_SHIPPING_COST", "3.99"),
		EbayPaymentProfile:  getEnv("EBAY_PAYMENT_PROFILE", "ManagedPayments"),
		EbayReturnProfile:   getEnv("EBAY_RETURN_PROFILE", "30DayReturns"),
		EbayShippingProfile: getEnv("EBAY_SHIPPING_PROFILE", "DefaultShipping"),
	}
}

// MaxUploadBytes is the configured upload size cap in bytes. The whole file
// is materialized in memory for parsing, so oversized uploads are rejected
// before any parse work.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) * 1024 * 1024
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
