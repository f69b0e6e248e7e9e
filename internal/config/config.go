// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	DatabaseURL     string
	RateWindow      time.Duration
	RateMax         int
	ResendAPIKey    string
	SenderEmail     string
	AdminEmail      string
	AMQPURL         string
	NotifyQueueSize int
	Production      bool
}

func Parse() Config {
	return Config{
		Port:            getString("PORT", "8080"),
		DatabaseURL:     databaseURL(),
		RateWindow:      time.Duration(getInt("CALLBACK_RATE_WINDOW_SEC", 60)) * time.Second,
		RateMax:         getInt("CALLBACK_RATE_MAX", 5),
		ResendAPIKey:    getString("RESEND_API_KEY", ""),
		SenderEmail:     getString("RESEND_SENDER_EMAIL", "no-reply@creditsaathi.in"),
		AdminEmail:      getString("ADMIN_EMAIL", ""),
		AMQPURL:         getString("AMQP_URL", ""),
		NotifyQueueSize: getInt("NOTIFY_QUEUE_SIZE", 256),
		Production:      getString("APP_ENV", "development") == "production",
	}
}

// databaseURL prefers a full DATABASE_URL and otherwise assembles a DSN
// from the individual DB_* variables.
func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getString("DB_USER", "postgres"),
		getString("DB_PASSWORD", "postgres"),
		getString("DB_HOST", "localhost"),
		getString("DB_PORT", "5432"),
		getString("DB_NAME", "crsaathi"),
	)
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
