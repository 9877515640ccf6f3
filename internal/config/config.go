package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port           uint16   `env:"PORT" envDefault:"8080"`
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	TimeZone       string   `env:"TIME_ZONE" envDefault:"Local"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	RedisURL       string `env:"REDIS_URL,required"`

	RabbitmqURL               string `env:"RABBITMQ_URL,required"`
	RabbitmqRemindersExchange string `env:"RABBITMQ_REMINDERS_EXCHANGE" envDefault:"reminders"`

	NutritionAPIBaseURL url.URL       `env:"NUTRITION_API_BASE_URL,required"`
	NutritionAPITimeout time.Duration `env:"NUTRITION_API_TIMEOUT" envDefault:"10s"`

	SettingsKey               string `env:"SETTINGS_KEY" envDefault:"notification-settings"`
	DailySummaryTime          string `env:"DAILY_SUMMARY_TIME" envDefault:"21:00"`
	SummaryRateLimitPerMinute uint16 `env:"SUMMARY_RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	NotificationsStream       string `env:"NOTIFICATIONS_STREAM" envDefault:"notifications"`

	AwsRegion                string `env:"AWS_REGION" envDefault:"eu-central-1"`
	AwsAccessKey             string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey             string `env:"AWS_SECRET_KEY"`
	AwsEmailSender           string `env:"AWS_EMAIL_SENDER"`
	AwsEmailReminderTemplate string `env:"AWS_EMAIL_REMINDER_TEMPLATE" envDefault:"daily-summary"`
	SummaryEmailRecipient    string `env:"SUMMARY_EMAIL_RECIPIENT"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE value: %w", err)
	}
	return cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

// IsSummaryEmailEnabled reports whether daily summaries are also sent by email.
func (c *Config) IsSummaryEmailEnabled() bool {
	return c.SummaryEmailRecipient != "" && c.AwsEmailSender != ""
}
