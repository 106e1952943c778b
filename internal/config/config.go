package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is built once in main and handed to the constructors that need it.
type Config struct {
	Port string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	SMTPHost     string
	SMTPPort     string
	SMTPEmail    string
	SMTPPassword string
	MailFrom     string

	AllowedOrigins []string
}

// Load reads configuration from the environment with the same defaults the
// service has always shipped with.
func Load() Config {
	cfg := Config{
		Port: getEnv("PORT", "3000"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getEnv("POSTGRES_DB", "postgres"),

		SMTPHost:     os.Getenv("MAIL_HOST"),
		SMTPPort:     getEnv("MAIL_PORT", "25"),
		SMTPEmail:    os.Getenv("MAIL_EMAIL"),
		SMTPPassword: os.Getenv("MAIL_PASSWORD"),
		MailFrom:     getEnv("MAIL_FROM", "Book catalog"),

		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}

	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	return cfg
}

// DSN renders the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
