package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnew00/pool-manager-sub000/internal/elo"
	"github.com/jnew00/pool-manager-sub000/internal/engine"
	"github.com/jnew00/pool-manager-sub000/internal/models"
	"github.com/jnew00/pool-manager-sub000/internal/repository"
)

func newSlateService(t *testing.T) *SlateService {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	ratings := elo.NewService(repository.NewMemoryTeamRatingRepository(), log)
	eng := engine.New(ratings, log)
	return NewSlateService(eng, ratings, models.DefaultWeights(), log)
}

// stubMarketSource serves one canned line or an error
type stubMarketSource struct {
	data *models.MarketData
	err  error
}

func (s *stubMarketSource) FetchMarketData(ctx context.Context, homeTeamID, awayTeamID string) (*models.MarketData, error) {
	return s.data, s.err
}

type stubWeatherSource struct {
	data *models.WeatherData
	err  error
}

func (s *stubWeatherSource) FetchWeather(ctx context.Context, venue string, kickoff time.Time) (*models.WeatherData, error) {
	return s.data, s.err
}

type stubInjurySource struct {
	data *models.InjuryData
	err  error
}

func (s *stubInjurySource) FetchInjuries(ctx context.Context, homeTeamID, awayTeamID string) (*models.InjuryData, error) {
	return s.data, s.err
}

func TestBuildInputResolvesDivision(t *testing.T) {
	svc := newSlateService(t)

	input := svc.BuildInput(context.Background(), GameDescriptor{HomeTeamID: "GB", AwayTeamID: "CHI"})
	require.NotNil(t, input.Division)
	assert.True(t, input.Division.SameDivision)
	assert.Equal(t, 2.0, input.Division.RivalryIntensity)

	input = svc.BuildInput(context.Background(), GameDescriptor{HomeTeamID: "GB", AwayTeamID: "KC"})
	require.NotNil(t, input.Division)
	assert.False(t, input.Division.SameDivision)
}

func TestBuildInputAttachesFeedData(t *testing.T) {
	svc := newSlateService(t)
	spread := -3.0
	poolSpread := -2.5

	svc.WithFeeds(
		&stubMarketSource{data: &models.MarketData{Spread: &spread}},
		&stubWeatherSource{data: &models.WeatherData{WindSpeedMPH: 20}},
		&stubInjurySource{data: &models.InjuryData{}},
	)

	input := svc.BuildInput(context.Background(), GameDescriptor{
		HomeTeamID: "KC", AwayTeamID: "DEN", PoolSpread: &poolSpread,
	})
	require.NotNil(t, input.Market)
	assert.Equal(t, &spread, input.Market.Spread)
	assert.Equal(t, &poolSpread, input.Market.PoolSpread)
	require.NotNil(t, input.Weather)
	assert.Equal(t, 20.0, input.Weather.WindSpeedMPH)
	assert.NotNil(t, input.Injuries)
}

func TestBuildInputFeedFailureDegrades(t *testing.T) {
	svc := newSlateService(t)
	svc.WithFeeds(
		&stubMarketSource{err: errors.New("timeout")},
		&stubWeatherSource{err: errors.New("timeout")},
		&stubInjurySource{err: errors.New("timeout")},
	)

	input := svc.BuildInput(context.Background(), GameDescriptor{HomeTeamID: "KC", AwayTeamID: "DEN"})
	assert.Nil(t, input.Market)
	assert.Nil(t, input.Weather)
	assert.Nil(t, input.Injuries)
}

func TestBuildInputPoolSpreadWithoutFeed(t *testing.T) {
	svc := newSlateService(t)
	poolSpread := -4.5

	input := svc.BuildInput(context.Background(), GameDescriptor{
		HomeTeamID: "KC", AwayTeamID: "DEN", PoolSpread: &poolSpread,
	})
	require.NotNil(t, input.Market)
	assert.Equal(t, &poolSpread, input.Market.PoolSpread)
	assert.Nil(t, input.Market.Spread)
}

func TestAnalyzeSlate(t *testing.T) {
	svc := newSlateService(t)

	games := []GameDescriptor{
		{HomeTeamID: "KC", AwayTeamID: "DEN", Venue: "Arrowhead Stadium"},
		{HomeTeamID: "GB", AwayTeamID: "CHI", Venue: "Lambeau Field"},
	}

	outputs, err := svc.AnalyzeSlate(context.Background(), games)
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	for _, out := range outputs {
		assert.GreaterOrEqual(t, out.Confidence, 0.0)
		assert.LessOrEqual(t, out.Confidence, 100.0)
		assert.NotEmpty(t, out.Breakdown)
	}
}
