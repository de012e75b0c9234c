package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the whole runtime configuration, built once at startup and
// handed to constructors. Nothing in the service reads the environment
// after Load returns.
type Config struct {
	Addr        string
	PostgresDSN string

	TelegramBotToken   string
	TelegramChatIDs    []string
	TelegramAPIBaseURL string

	CounterAPIBaseURL string
	CounterAPIKey     string

	Location       *time.Location
	ReportInterval time.Duration

	SignupCaptureEnabled    bool
	CheckoutTrackingEnabled bool
	SchedulerEnabled        bool
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, errors.New("POSTGRES_DSN is not set")
	}

	loc, err := time.LoadLocation(getString("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return &Config{
		Addr:        getString("ADDR", ":8080"),
		PostgresDSN: dsn,

		TelegramBotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatIDs:    splitList(os.Getenv("TELEGRAM_CHAT_IDS")),
		TelegramAPIBaseURL: getString("TELEGRAM_API_BASE_URL", ""),

		CounterAPIBaseURL: os.Getenv("COUNTER_API_BASE_URL"),
		CounterAPIKey:     os.Getenv("COUNTER_API_KEY"),

		Location:       loc,
		ReportInterval: getDuration("REPORT_INTERVAL", time.Hour),

		SignupCaptureEnabled:    getBool("SIGNUP_CAPTURE_ENABLED", true),
		CheckoutTrackingEnabled: getBool("CHECKOUT_TRACKING_ENABLED", true),
		SchedulerEnabled:        getBool("SCHEDULER_ENABLED", true),
	}, nil
}

func getString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
