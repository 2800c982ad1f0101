// Package config provides configuration management for the pool model service.
package config

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsOverlay represents the structure of secrets stored in AWS Secrets
// Manager. Only the fields present in the secret overwrite config values.
type SecretsOverlay struct {
	DatabasePassword string `json:"database_password"`
	OddsFeedAPIKey   string `json:"odds_feed_api_key"`
	WeatherAPIKey    string `json:"weather_api_key"`
	InjuryFeedAPIKey string `json:"injury_feed_api_key"`
}

// ApplySecrets overlays secret values from AWS Secrets Manager onto the
// loaded configuration. A disabled overlay is a no-op.
func ApplySecrets(ctx context.Context, cfg *Config) error {
	if !cfg.Secrets.Enabled {
		return nil
	}

	overlay, err := fetchSecretsFromAWS(ctx, cfg.Secrets.Region, cfg.Secrets.SecretName)
	if err != nil {
		return err
	}

	if overlay.DatabasePassword != "" {
		cfg.Database.Password = overlay.DatabasePassword
	}
	if overlay.OddsFeedAPIKey != "" {
		cfg.Feeds.Odds.APIKey = overlay.OddsFeedAPIKey
	}
	if overlay.WeatherAPIKey != "" {
		cfg.Feeds.Weather.APIKey = overlay.WeatherAPIKey
	}
	if overlay.InjuryFeedAPIKey != "" {
		cfg.Feeds.Injury.APIKey = overlay.InjuryFeedAPIKey
	}

	return nil
}

func fetchSecretsFromAWS(ctx context.Context, region, secretName string) (*SecretsOverlay, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := secretsmanager.NewFromConfig(awsCfg)
	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret from AWS Secrets Manager: %w", err)
	}

	overlay := &SecretsOverlay{}
	switch {
	case result.SecretString != nil:
		if err := json.Unmarshal([]byte(*result.SecretString), overlay); err != nil {
			return nil, fmt.Errorf("failed to parse secret JSON: %w", err)
		}
	case result.SecretBinary != nil:
		if err := json.Unmarshal(result.SecretBinary, overlay); err != nil {
			return nil, fmt.Errorf("failed to parse secret binary: %w", err)
		}
	default:
		return nil, fmt.Errorf("no secret data found in AWS Secrets Manager")
	}

	return overlay, nil
}
