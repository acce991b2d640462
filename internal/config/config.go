package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Mail transport configuration
	SendgridAPIKey     string `mapstructure:"SENDGRID_API_KEY"`
	MailFromName       string `mapstructure:"MAIL_FROM_NAME"`
	MailFromAddress    string `mapstructure:"MAIL_FROM_ADDRESS"`
	MailSendTimeoutSec int    `mapstructure:"MAIL_SEND_TIMEOUT_SEC"`

	// AI chat proxy configuration
	ChatAPIURL     string `mapstructure:"CHAT_API_URL"`
	ChatAPIKey     string `mapstructure:"CHAT_API_KEY"`
	ChatModel      string `mapstructure:"CHAT_MODEL"`
	ChatTimeoutSec int    `mapstructure:"CHAT_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "effi_track")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Mail defaults. An empty API key leaves the transport unconfigured;
	// the notifier reports that as a configuration error on invocation.
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("MAIL_FROM_NAME", "EFFI-TRACK")
	viper.SetDefault("MAIL_FROM_ADDRESS", "noreply@effi-track.local")
	viper.SetDefault("MAIL_SEND_TIMEOUT_SEC", 10)

	// Chat proxy defaults
	viper.SetDefault("CHAT_API_URL", "")
	viper.SetDefault("CHAT_API_KEY", "")
	viper.SetDefault("CHAT_MODEL", "gpt-4o-mini")
	viper.SetDefault("CHAT_TIMEOUT_SEC", 30)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.MailSendTimeoutSec <= 0 {
		return fmt.Errorf("MAIL_SEND_TIMEOUT_SEC must be positive")
	}

	return nil
}

// MailSendTimeout returns the per-message send timeout
func (c *Config) MailSendTimeout() time.Duration {
	return time.Duration(c.MailSendTimeoutSec) * time.Second
}

// ChatTimeout returns the chat proxy request timeout
func (c *Config) ChatTimeout() time.Duration {
	return time.Duration(c.ChatTimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
