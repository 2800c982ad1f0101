package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jnew00/pool-manager-sub000/internal/metrics"
	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// OddsFeedClient fetches market prices from the configured odds feed. Feed
// prices arrive as strings and are parsed through decimal so half-point
// spreads survive the trip exactly.
type OddsFeedClient struct {
	baseURL string
	apiKey  string
	http    *RateLimitedHTTPClient
	logger  *logrus.Logger
}

// NewOddsFeedClient creates an odds feed client
func NewOddsFeedClient(baseURL, apiKey string, httpClient *RateLimitedHTTPClient, logger *logrus.Logger) *OddsFeedClient {
	return &OddsFeedClient{baseURL: baseURL, apiKey: apiKey, http: httpClient, logger: logger}
}

// oddsFeedLine is the wire shape of one game's prices
type oddsFeedLine struct {
	Home          string `json:"home"`
	Away          string `json:"away"`
	Spread        string `json:"spread"`
	Total         string `json:"total"`
	MoneylineHome *int   `json:"moneyline_home"`
	MoneylineAway *int   `json:"moneyline_away"`
}

type oddsFeedResponse struct {
	Lines []oddsFeedLine `json:"lines"`
}

// FetchMarketData retrieves the current line for one matchup. A matchup the
// feed does not carry resolves to ErrNotFound.
func (c *OddsFeedClient) FetchMarketData(ctx context.Context, homeTeamID, awayTeamID string) (*models.MarketData, error) {
	url := fmt.Sprintf("%s/v1/lines?home=%s&away=%s", c.baseURL, homeTeamID, awayTeamID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build odds request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		metrics.FeedRequestsTotal.WithLabelValues("odds", "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.FeedRequestsTotal.WithLabelValues("odds", "error").Inc()
		return nil, fmt.Errorf("odds feed returned status %d", resp.StatusCode)
	}

	var payload oddsFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.FeedRequestsTotal.WithLabelValues("odds", "error").Inc()
		return nil, fmt.Errorf("failed to decode odds feed response: %w", err)
	}
	metrics.FeedRequestsTotal.WithLabelValues("odds", "success").Inc()

	for _, line := range payload.Lines {
		if line.Home == homeTeamID && line.Away == awayTeamID {
			return c.toMarketData(line), nil
		}
	}
	return nil, models.ErrNotFound
}

func (c *OddsFeedClient) toMarketData(line oddsFeedLine) *models.MarketData {
	data := &models.MarketData{
		MoneylineHome: line.MoneylineHome,
		MoneylineAway: line.MoneylineAway,
	}
	data.Spread = c.parsePrice(line.Spread, "spread")
	data.Total = c.parsePrice(line.Total, "total")
	return data
}

// parsePrice converts a feed price string to a float, returning nil for
// absent or malformed values rather than failing the whole line.
func (c *OddsFeedClient) parsePrice(raw, field string) *float64 {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		c.logger.WithField(field, raw).Warn("Unparseable price in odds feed, dropping field")
		return nil
	}
	v := d.InexactFloat64()
	return &v
}
