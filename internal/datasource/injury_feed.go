package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jnew00/pool-manager-sub000/internal/metrics"
	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// InjuryFeedClient fetches league injury reports
type InjuryFeedClient struct {
	baseURL string
	apiKey  string
	http    *RateLimitedHTTPClient
	logger  *logrus.Logger
}

// NewInjuryFeedClient creates an injury feed client
func NewInjuryFeedClient(baseURL, apiKey string, httpClient *RateLimitedHTTPClient, logger *logrus.Logger) *InjuryFeedClient {
	return &InjuryFeedClient{baseURL: baseURL, apiKey: apiKey, http: httpClient, logger: logger}
}

type injuryFeedEntry struct {
	Team       string `json:"team"`
	PlayerName string `json:"player_name"`
	Position   string `json:"position"`
	Status     string `json:"status"`
}

type injuryFeedResponse struct {
	Entries []injuryFeedEntry `json:"entries"`
}

// FetchInjuries retrieves both teams' current reports for one matchup.
// Unknown status strings are dropped with a warning rather than guessed at.
func (c *InjuryFeedClient) FetchInjuries(ctx context.Context, homeTeamID, awayTeamID string) (*models.InjuryData, error) {
	url := fmt.Sprintf("%s/v1/injuries?teams=%s,%s", c.baseURL, homeTeamID, awayTeamID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build injury request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		metrics.FeedRequestsTotal.WithLabelValues("injury", "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.FeedRequestsTotal.WithLabelValues("injury", "error").Inc()
		return nil, fmt.Errorf("injury feed returned status %d", resp.StatusCode)
	}

	var payload injuryFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.FeedRequestsTotal.WithLabelValues("injury", "error").Inc()
		return nil, fmt.Errorf("failed to decode injury feed response: %w", err)
	}
	metrics.FeedRequestsTotal.WithLabelValues("injury", "success").Inc()

	data := &models.InjuryData{}
	for _, entry := range payload.Entries {
		status, ok := parseInjuryStatus(entry.Status)
		if !ok {
			c.logger.WithField("status", entry.Status).WithField("player", entry.PlayerName).
				Warn("Unknown injury status in feed, dropping entry")
			continue
		}
		injury := models.PlayerInjury{
			PlayerName: entry.PlayerName,
			Position:   entry.Position,
			Status:     status,
		}
		switch entry.Team {
		case homeTeamID:
			data.Home = append(data.Home, injury)
		case awayTeamID:
			data.Away = append(data.Away, injury)
		}
	}
	return data, nil
}

func parseInjuryStatus(raw string) (models.InjuryStatus, bool) {
	switch models.InjuryStatus(raw) {
	case models.InjuryQuestionable, models.InjuryDoubtful, models.InjuryOut, models.InjuryInjuredReserve:
		return models.InjuryStatus(raw), true
	}
	return "", false
}
