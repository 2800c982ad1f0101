package config

import (
	"strings"
	"testing"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

const (
	validConfigPath   = "testdata/valid_config.yaml"
	invalidEnvPath    = "testdata/invalid_environment.yaml"
	missingConfigPath = "testdata/does_not_exist.yaml"

	expectedNoErrorMsg = "expected no error, got %v"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != "pool-model" {
		t.Errorf("expected app name pool-model, got %s", cfg.App.Name)
	}
	if cfg.Database.Password != "hunter2" {
		t.Errorf("expected expanded password, got %q", cfg.Database.Password)
	}
	if cfg.Model.Weights.MarketProb != 0.30 {
		t.Errorf("expected market weight 0.30, got %f", cfg.Model.Weights.MarketProb)
	}
	if !cfg.Feeds.Odds.Enabled || cfg.Feeds.Odds.BaseURL != "https://odds.example.com" {
		t.Errorf("odds feed not loaded: %+v", cfg.Feeds.Odds)
	}
}

// TestLoadConfigMissingFile tests that Load fails on an absent file
func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := Load(missingConfigPath); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadWithDefaultsMissingFile tests the defaults-only path
func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults(missingConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}
	if cfg.App.Name != "pool-model" || cfg.App.Environment != "development" {
		t.Errorf("expected default app section, got %+v", cfg.App)
	}
	if cfg.Metrics.Port != 9090 || cfg.Metrics.Path != "/metrics" {
		t.Errorf("expected default metrics section, got %+v", cfg.Metrics)
	}
	if cfg.Scheduler.ResultsSync != "0 4 * * *" {
		t.Errorf("expected default results sync schedule, got %q", cfg.Scheduler.ResultsSync)
	}
}

// TestValidateSuccess tests validation of a complete configuration
func TestValidateSuccess(t *testing.T) {
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf(expectedNoErrorMsg, err)
	}
}

// TestValidateInvalidEnvironment tests the custom environment rule
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, err := Load(invalidEnvPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for bad environment")
	}
	if !strings.Contains(err.Error(), "environment") {
		t.Errorf("expected environment failure, got %v", err)
	}
}

// TestValidateSecretsCompleteness tests the secrets cross-field rule
func TestValidateSecretsCompleteness(t *testing.T) {
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}
	cfg.Secrets.Enabled = true
	cfg.Secrets.Region = "us-east-1"

	err = Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "secret_name") {
		t.Errorf("expected secrets completeness failure, got %v", err)
	}
}

// TestValidateWeightsNeedPositiveTotal tests the weight cross-field rule
func TestValidateWeightsNeedPositiveTotal(t *testing.T) {
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}
	cfg.Model.Weights = models.ModelWeights{Name: "empty", Version: "v0", KFactor: 24}

	err = Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "positive factor weight") {
		t.Errorf("expected weight total failure, got %v", err)
	}
}

// TestValidateFeedNeedsBaseURL tests the feed cross-field rule
func TestValidateFeedNeedsBaseURL(t *testing.T) {
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}
	cfg.Feeds.Weather.Enabled = true

	err = Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Errorf("expected feed base_url failure, got %v", err)
	}
}

// TestGetDatabaseDSN tests DSN assembly
func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, Name: "pool", User: "u", Password: "p", SSLMode: "disable",
	}}
	want := "postgres://u:p@db:5432/pool?sslmode=disable"
	if got := cfg.GetDatabaseDSN(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// TestActiveWeightsFallback tests the default weight fallback
func TestActiveWeightsFallback(t *testing.T) {
	cfg := &Config{}
	if w := cfg.ActiveWeights(); w.Name != "baseline" {
		t.Errorf("expected baseline fallback, got %s", w.Name)
	}

	cfg.Model.Weights = models.ModelWeights{Name: "custom", Version: "v2", MarketProb: 1}
	if w := cfg.ActiveWeights(); w.Name != "custom" {
		t.Errorf("expected configured weights, got %s", w.Name)
	}
}
