package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBConn   string
	LogLevel string

	JWTSecret   string
	JWTTTLHours int

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	// ReminderEmail is the single recipient for loan EMI reminders. It also
	// acts as the override address for login OTP delivery.
	ReminderEmail string
	// OTPToReminderOnly restricts OTP delivery exclusively to ReminderEmail.
	OTPToReminderOnly bool

	// ReminderCron is the schedule for the loan reminder job (standard
	// 5-field cron expression).
	ReminderCron string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBConn:            getEnv("DB_CONN", "host=localhost port=5432 user=test password=test dbname=books sslmode=disable"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SMTPUsername:      getEnv("SMTP_USER", ""),
		SMTPPassword:      getEnv("SMTP_PASS", ""),
		SenderEmail:       getEnv("MAIL_FROM", "noreply@localhost"),
		ReminderEmail:     getEnv("REMINDER_EMAIL", ""),
		OTPToReminderOnly: getEnv("OTP_TO_REMINDER_ONLY", "false") == "true",
		ReminderCron:      getEnv("LOAN_REMINDER_CRON", "0 8 * * *"),
	}

	ttl, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("JWT_TTL_HOURS must be a positive integer")
	}
	cfg.JWTTTLHours = ttl

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// MailConfigured reports whether outbound mail can be sent at all.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
