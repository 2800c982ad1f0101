package models

import (
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestMarketDataPresence(t *testing.T) {
	var m MarketData
	if m.HasSpread() || m.HasTotal() || m.HasMoneyline() {
		t.Error("empty market data should report nothing present")
	}

	home, away := -150, 130
	m = MarketData{Spread: floatPtr(-3), Total: floatPtr(47.5), MoneylineHome: &home, MoneylineAway: &away}
	if !m.HasSpread() || !m.HasTotal() || !m.HasMoneyline() {
		t.Error("populated market data should report everything present")
	}

	// A single moneyline side is not a usable pair.
	m = MarketData{MoneylineHome: &home}
	if m.HasMoneyline() {
		t.Error("one-sided moneyline should not count")
	}
}

func TestMarketDataLineValue(t *testing.T) {
	m := MarketData{Spread: floatPtr(-3), PoolSpread: floatPtr(-1.5)}
	if got := m.LineValue(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("expected +1.5 points of line value, got %.2f", got)
	}

	m = MarketData{Spread: floatPtr(-3)}
	if got := m.LineValue(); got != 0 {
		t.Errorf("missing pool spread should yield 0, got %.2f", got)
	}
}

func TestNewDefaultRating(t *testing.T) {
	r := NewDefaultRating("KC")
	if r.Rating != DefaultRating {
		t.Errorf("expected %.1f, got %.1f", DefaultRating, r.Rating)
	}
	if !r.IsProvisional() {
		t.Error("fresh rating should be provisional")
	}
}

func TestRatingChangeDelta(t *testing.T) {
	c := RatingChange{OldRating: 1500, NewRating: 1512.5}
	if got := c.Delta(); got != 12.5 {
		t.Errorf("expected 12.5, got %.2f", got)
	}
}

func TestDefaultWeightsAreUsable(t *testing.T) {
	w := DefaultWeights()
	if w.IsZero() {
		t.Fatal("defaults must not be zero-valued")
	}
	total := w.MarketProb + w.Elo + w.LineValue + w.HomeAdvantage +
		w.Rest + w.Divisional + w.WeatherPenalty + w.InjuryPenalty
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("baseline factor weights should sum to 1, got %.4f", total)
	}
	if w.KFactor <= 0 {
		t.Errorf("K-factor must be positive, got %.1f", w.KFactor)
	}
}

func TestGameResultHelpers(t *testing.T) {
	g := GameResult{HomeScore: 27, AwayScore: 13}
	if !g.HomeWon() {
		t.Error("home should have won")
	}
	if g.Margin() != 14 {
		t.Errorf("expected margin 14, got %d", g.Margin())
	}
}

func TestTeamSeasonRecordWinRate(t *testing.T) {
	r := TeamSeasonRecord{Wins: 10, Losses: 6, Ties: 1}
	want := 10.5 / 17.0
	if got := r.WinRate(); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %.4f, got %.4f", want, got)
	}

	empty := TeamSeasonRecord{}
	if got := empty.WinRate(); got != 0.5 {
		t.Errorf("no games should be a neutral 0.5, got %.2f", got)
	}
}
