// Package config provides configuration management for the pool model service.
package config

import (
	"fmt"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Model     ModelConfig     `mapstructure:"model" validate:"required"`
	Feeds     FeedsConfig     `mapstructure:"feeds"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
	Secrets   SecretsConfig   `mapstructure:"secrets"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host" validate:"required"`
	Port           int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name           string `mapstructure:"name" validate:"required"`
	User           string `mapstructure:"user" validate:"required"`
	Password       string `mapstructure:"password" validate:"required"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"required,gt=0"`
}

// ModelConfig carries the active weight set. Weights are data, not code:
// deployments and experiments swap them here without a rebuild.
type ModelConfig struct {
	Weights models.ModelWeights `mapstructure:"weights" validate:"required"`
}

// FeedsConfig represents the external data feed endpoints
type FeedsConfig struct {
	Odds    FeedConfig `mapstructure:"odds"`
	Weather FeedConfig `mapstructure:"weather"`
	Injury  FeedConfig `mapstructure:"injury"`
}

// FeedConfig represents a single feed endpoint
type FeedConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	BaseURL        string  `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey         string  `mapstructure:"api_key"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"omitempty,gt=0"`
	MaxRetries     int     `mapstructure:"max_retries" validate:"omitempty,gte=0"`
	RateLimit      float64 `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
}

// SchedulerConfig represents cron schedules for background jobs
type SchedulerConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	ResultsSync        string `mapstructure:"results_sync"`
	SeasonalRegression string `mapstructure:"seasonal_regression"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// SecretsConfig represents the AWS Secrets Manager overlay
type SecretsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Region     string `mapstructure:"region"`
	SecretName string `mapstructure:"secret_name"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// ActiveWeights returns the configured weight set, falling back to the
// baseline defaults when the section is absent.
func (c *Config) ActiveWeights() models.ModelWeights {
	if c.Model.Weights.IsZero() {
		return models.DefaultWeights()
	}
	return c.Model.Weights
}
