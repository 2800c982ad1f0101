// Package config provides configuration management for the pool model service.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() (*CustomValidator, error) {
	v := validator.New()

	if err := v.RegisterValidation("environment", validateEnvironment); err != nil {
		return nil, fmt.Errorf("failed to register environment rule: %w", err)
	}
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return nil, fmt.Errorf("failed to register loglevel rule: %w", err)
	}

	return &CustomValidator{validator: v}, nil
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv, err := NewValidator()
	if err != nil {
		return err
	}
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	if err := cv.validator.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	}
	return false
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// validateCrossField enforces constraints spanning multiple sections
func validateCrossField(cfg *Config) error {
	if cfg.Secrets.Enabled {
		if cfg.Secrets.Region == "" || cfg.Secrets.SecretName == "" {
			return fmt.Errorf("secrets overlay enabled but region or secret_name missing")
		}
	}

	w := cfg.Model.Weights
	if !w.IsZero() {
		total := w.MarketProb + w.Elo + w.LineValue + w.HomeAdvantage +
			w.Rest + w.Divisional + w.WeatherPenalty + w.InjuryPenalty
		if total <= 0 {
			return fmt.Errorf("model weights %q/%q have no positive factor weight", w.Name, w.Version)
		}
		if w.KFactor <= 0 {
			return fmt.Errorf("model weights %q/%q require a positive k_factor", w.Name, w.Version)
		}
	}

	for name, feed := range map[string]FeedConfig{
		"odds": cfg.Feeds.Odds, "weather": cfg.Feeds.Weather, "injury": cfg.Feeds.Injury,
	} {
		if feed.Enabled && feed.BaseURL == "" {
			return fmt.Errorf("feed %s enabled without a base_url", name)
		}
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, fmt.Sprintf("%s failed %s validation", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("configuration invalid: %s", strings.Join(messages, "; "))
}
