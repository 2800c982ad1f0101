package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jnew00/pool-manager-sub000/internal/metrics"
	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// WeatherFeedClient fetches kickoff-hour forecasts for stadium locations
type WeatherFeedClient struct {
	baseURL string
	apiKey  string
	http    *RateLimitedHTTPClient
	logger  *logrus.Logger
}

// NewWeatherFeedClient creates a weather feed client
func NewWeatherFeedClient(baseURL, apiKey string, httpClient *RateLimitedHTTPClient, logger *logrus.Logger) *WeatherFeedClient {
	return &WeatherFeedClient{baseURL: baseURL, apiKey: apiKey, http: httpClient, logger: logger}
}

type weatherFeedResponse struct {
	WindSpeedMPH float64 `json:"wind_speed_mph"`
	PrecipProb   float64 `json:"precip_prob"`
	TemperatureF float64 `json:"temperature_f"`
	IsDome       bool    `json:"is_dome"`
}

// FetchWeather retrieves the forecast for a venue at kickoff
func (c *WeatherFeedClient) FetchWeather(ctx context.Context, venue string, kickoff time.Time) (*models.WeatherData, error) {
	endpoint := fmt.Sprintf("%s/v1/forecast?venue=%s&at=%s",
		c.baseURL, url.QueryEscape(venue), url.QueryEscape(kickoff.UTC().Format(time.RFC3339)))
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		metrics.FeedRequestsTotal.WithLabelValues("weather", "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.FeedRequestsTotal.WithLabelValues("weather", "error").Inc()
		return nil, fmt.Errorf("weather feed returned status %d", resp.StatusCode)
	}

	var payload weatherFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.FeedRequestsTotal.WithLabelValues("weather", "error").Inc()
		return nil, fmt.Errorf("failed to decode weather feed response: %w", err)
	}
	metrics.FeedRequestsTotal.WithLabelValues("weather", "success").Inc()

	return &models.WeatherData{
		WindSpeedMPH: payload.WindSpeedMPH,
		PrecipProb:   payload.PrecipProb,
		TemperatureF: payload.TemperatureF,
		IsDome:       payload.IsDome,
	}, nil
}
