package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Stripe configuration.
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`

	// Base URL the customer is sent back to after checkout.
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// Microsoft Graph (calendar + mail) configuration.
	MSTenantID     string `mapstructure:"MS_TENANT_ID"`
	MSClientID     string `mapstructure:"MS_CLIENT_ID"`
	MSClientSecret string `mapstructure:"MS_CLIENT_SECRET"`
	AdminMailbox   string `mapstructure:"ADMIN_MAILBOX"`

	// Timezone bookings are scheduled in.
	BookingTimezone string `mapstructure:"BOOKING_TIMEZONE"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDedupDB  int    `mapstructure:"REDIS_DEDUP_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Hours before the appointment the reminder email fires.
	ReminderLeadHours int `mapstructure:"REMINDER_LEAD_HOURS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("BOOKING_TIMEZONE", "America/New_York")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DEDUP_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("REMINDER_LEAD_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if missing := missingRequired(); len(missing) > 0 {
		log.Fatalf("Missing required configuration: %s", strings.Join(missing, ", "))
	}
}

// missingRequired lists required keys that are still empty after loading.
// Secrets have no sensible defaults; the process must not come up without them.
func missingRequired() []string {
	required := map[string]string{
		"STRIPE_SECRET_KEY":     AppConfig.StripeSecretKey,
		"STRIPE_WEBHOOK_SECRET": AppConfig.StripeWebhookSecret,
		"MS_TENANT_ID":          AppConfig.MSTenantID,
		"MS_CLIENT_ID":          AppConfig.MSClientID,
		"MS_CLIENT_SECRET":      AppConfig.MSClientSecret,
		"ADMIN_MAILBOX":         AppConfig.AdminMailbox,
	}
	var missing []string
	for key, val := range required {
		if val == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
