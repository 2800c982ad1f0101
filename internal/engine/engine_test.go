package engine

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jnew00/pool-manager-sub000/internal/elo"
	"github.com/jnew00/pool-manager-sub000/internal/models"
	"github.com/jnew00/pool-manager-sub000/internal/repository"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *repository.MemoryTeamRatingRepository) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := repository.NewMemoryTeamRatingRepository()
	return New(elo.NewService(repo, log), log, opts...), repo
}

func baseInput() *models.ModelInput {
	return &models.ModelInput{
		GameID:     uuid.New(),
		HomeTeamID: "KC",
		AwayTeamID: "DEN",
		Weights:    models.DefaultWeights(),
	}
}

func TestCalculateConfidenceNilInput(t *testing.T) {
	eng, _ := newTestEngine(t)
	if _, err := eng.CalculateConfidence(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil input")
	}
}

func TestConfidenceStaysInRange(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	inputs := []*models.ModelInput{
		baseInput(),
		func() *models.ModelInput {
			in := baseInput()
			in.Market = &models.MarketData{Spread: floatPtr(-20)}
			return in
		}(),
		func() *models.ModelInput {
			in := baseInput()
			in.Market = &models.MarketData{Spread: floatPtr(20)}
			in.Injuries = &models.InjuryData{Home: []models.PlayerInjury{
				{Position: "QB", Status: models.InjuryOut},
			}}
			in.Weather = &models.WeatherData{WindSpeedMPH: 45, PrecipProb: 1.0, TemperatureF: -10}
			return in
		}(),
	}

	for _, in := range inputs {
		out, err := eng.CalculateConfidence(ctx, in)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Confidence < 0 || out.Confidence > 100 {
			t.Errorf("confidence out of range: %.2f", out.Confidence)
		}
		if out.RecommendedPick != models.PickHome && out.RecommendedPick != models.PickAway {
			t.Errorf("unexpected pick %q", out.RecommendedPick)
		}
	}
}

func TestCalculateConfidenceDeterministic(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	in := baseInput()
	in.Market = &models.MarketData{Spread: floatPtr(-3), MoneylineHome: intPtr(-150), MoneylineAway: intPtr(130)}
	in.Venue = "Arrowhead Stadium"

	first, err := eng.CalculateConfidence(ctx, in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := eng.CalculateConfidence(ctx, in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first.RawProbability != second.RawProbability || first.Confidence != second.Confidence {
		t.Errorf("same input produced different output: %.6f vs %.6f",
			first.RawProbability, second.RawProbability)
	}
}

func TestBreakdownNormalization(t *testing.T) {
	eng, _ := newTestEngine(t)

	in := baseInput()
	in.Market = &models.MarketData{
		Spread:     floatPtr(-3),
		PoolSpread: floatPtr(-2.5),
	}
	in.Rest = &models.RestData{HomeDaysRest: 7, AwayDaysRest: 6}
	in.Division = &models.DivisionContext{SameDivision: true, RivalryIntensity: 1.7}
	in.Weather = &models.WeatherData{WindSpeedMPH: 18, TemperatureF: 40}
	in.Injuries = &models.InjuryData{}

	out, err := eng.CalculateConfidence(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var weightSum, contributionSum float64
	for _, c := range out.Breakdown {
		weightSum += c.Weight
		contributionSum += c.Contribution
	}
	if math.Abs(weightSum-1.0) > 0.01 {
		t.Errorf("normalized weights should sum to 1, got %.4f", weightSum)
	}
	if math.Abs(contributionSum-out.RawProbability) > 1e-9 {
		t.Errorf("contributions should sum to raw probability %.6f, got %.6f",
			out.RawProbability, contributionSum)
	}
	if len(out.Breakdown) != 8 {
		t.Errorf("all eight factors supplied, expected 8 entries, got %d", len(out.Breakdown))
	}
}

func TestMissingDataShrinksBreakdown(t *testing.T) {
	eng, _ := newTestEngine(t)

	out, err := eng.CalculateConfidence(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Market, Elo, and home advantage are always present; the optional
	// factors drop out with their data.
	if len(out.Breakdown) != 3 {
		t.Errorf("expected 3 entries without optional data, got %d", len(out.Breakdown))
	}
	for _, c := range out.Breakdown {
		switch c.Factor {
		case models.FactorMarketProb, models.FactorElo, models.FactorHomeAdvantage:
		default:
			t.Errorf("unexpected factor %q without input data", c.Factor)
		}
	}
}

func TestExactTossUpPicksAway(t *testing.T) {
	eng, _ := newTestEngine(t)

	in := baseInput()
	in.Weights = models.ModelWeights{Name: "market-only", Version: "test", MarketProb: 1.0}

	out, err := eng.CalculateConfidence(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.RawProbability != 0.5 {
		t.Fatalf("expected exact 0.5 with no market data, got %.6f", out.RawProbability)
	}
	if out.RecommendedPick != models.PickAway {
		t.Errorf("exact toss-up should recommend AWAY, got %q", out.RecommendedPick)
	}
	if out.Confidence != 50 {
		t.Errorf("expected confidence 50, got %.2f", out.Confidence)
	}
}

func TestZeroWeightsFallBackToNeutral(t *testing.T) {
	eng, _ := newTestEngine(t)

	in := baseInput()
	in.Weights = models.ModelWeights{Name: "broken", Version: "test"}

	out, err := eng.CalculateConfidence(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.RawProbability != 0.5 {
		t.Errorf("expected neutral fallback 0.5, got %.6f", out.RawProbability)
	}
	if out.RecommendedPick != models.PickAway {
		t.Errorf("neutral fallback should recommend AWAY, got %q", out.RecommendedPick)
	}
}

func TestUnpopulatedWeightsUseDefaults(t *testing.T) {
	eng, _ := newTestEngine(t)

	in := baseInput()
	in.Weights = models.ModelWeights{}

	out, err := eng.CalculateConfidence(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.WeightsName != "baseline" || out.WeightsVersion != "v1" {
		t.Errorf("expected baseline defaults, got %s/%s", out.WeightsName, out.WeightsVersion)
	}
}

func TestStrongHomeFavorite(t *testing.T) {
	eng, repo := newTestEngine(t)
	ctx := context.Background()

	if err := repo.Upsert(ctx, &models.TeamRating{TeamID: "KC", Rating: 1620, GamesPlayed: 10}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := repo.Upsert(ctx, &models.TeamRating{TeamID: "DEN", Rating: 1430, GamesPlayed: 10}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	favored := baseInput()
	favored.Venue = "Arrowhead Stadium"
	favored.Market = &models.MarketData{
		Spread:        floatPtr(-3),
		MoneylineHome: intPtr(-150),
		MoneylineAway: intPtr(130),
	}

	out, err := eng.CalculateConfidence(ctx, favored)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.RecommendedPick != models.PickHome {
		t.Errorf("expected HOME pick, got %q", out.RecommendedPick)
	}

	neutral := baseInput()
	neutral.GameID = favored.GameID
	neutral.Venue = favored.Venue
	neutral.Market = &models.MarketData{Spread: floatPtr(0)}

	neutralOut, err := eng.CalculateConfidence(ctx, neutral)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Confidence <= neutralOut.Confidence {
		t.Errorf("favored line should raise confidence: %.2f vs %.2f",
			out.Confidence, neutralOut.Confidence)
	}
}

func TestDomeWeatherIsNeutralFactor(t *testing.T) {
	eng, _ := newTestEngine(t)

	in := baseInput()
	in.Weather = &models.WeatherData{WindSpeedMPH: 50, PrecipProb: 1.0, TemperatureF: -20, IsDome: true}

	out, err := eng.CalculateConfidence(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Factors.WeatherPenaltyPts != 0 {
		t.Errorf("dome game should carry no weather penalty, got %.2f", out.Factors.WeatherPenaltyPts)
	}
	for _, c := range out.Breakdown {
		if c.Factor == models.FactorWeather && c.Value != 0.5 {
			t.Errorf("dome weather factor should sit at 0.5, got %.4f", c.Value)
		}
	}
}

// erroringRatingRepository fails every read
type erroringRatingRepository struct{}

func (erroringRatingRepository) Get(ctx context.Context, teamID string) (*models.TeamRating, error) {
	return nil, errors.New("connection refused")
}

func (erroringRatingRepository) GetMany(ctx context.Context, teamIDs []string) (map[string]*models.TeamRating, error) {
	return nil, errors.New("connection refused")
}

func (erroringRatingRepository) Upsert(ctx context.Context, rating *models.TeamRating) error {
	return errors.New("connection refused")
}

func (erroringRatingRepository) ListAll(ctx context.Context) ([]*models.TeamRating, error) {
	return nil, errors.New("connection refused")
}

func TestRatingStoreFailureExcludesElo(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	eng := New(elo.NewService(erroringRatingRepository{}, log), log)

	in := baseInput()
	in.Market = &models.MarketData{Spread: floatPtr(-3)}

	out, err := eng.CalculateConfidence(context.Background(), in)
	if err != nil {
		t.Fatalf("store failure should degrade, not fail: %v", err)
	}
	for _, c := range out.Breakdown {
		if c.Factor == models.FactorElo {
			t.Error("Elo factor should be excluded when the store is down")
		}
	}
	if out.Confidence < 0 || out.Confidence > 100 {
		t.Errorf("confidence out of range: %.2f", out.Confidence)
	}
}

func TestTraceHookReceivesUsedFactors(t *testing.T) {
	var events int
	trace := func(gameID, factor string, value, weight float64) { events++ }

	eng, _ := newTestEngine(t, WithTrace(trace))
	if _, err := eng.CalculateConfidence(context.Background(), baseInput()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if events != 3 {
		t.Errorf("expected one event per used factor, got %d", events)
	}
}

func TestPointsToProbabilityClamps(t *testing.T) {
	if got := pointsToProbability(0); got != 0.5 {
		t.Errorf("expected 0.5 at zero points, got %f", got)
	}
	if got := pointsToProbability(3); got != 1.0 {
		t.Errorf("expected saturation at 1.0, got %f", got)
	}
	if got := pointsToProbability(-10); got != 0 {
		t.Errorf("expected floor at 0, got %f", got)
	}
}
