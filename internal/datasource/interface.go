package datasource

import (
	"context"
	"time"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// MarketDataSource resolves current market prices for one matchup
type MarketDataSource interface {
	FetchMarketData(ctx context.Context, homeTeamID, awayTeamID string) (*models.MarketData, error)
}

// WeatherDataSource resolves a forecast for one venue and kickoff
type WeatherDataSource interface {
	FetchWeather(ctx context.Context, venue string, kickoff time.Time) (*models.WeatherData, error)
}

// InjuryDataSource resolves the current injury reports for one matchup
type InjuryDataSource interface {
	FetchInjuries(ctx context.Context, homeTeamID, awayTeamID string) (*models.InjuryData, error)
}
