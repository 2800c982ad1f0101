package models

import "math"

// MarketData holds the betting-market prices known for one game. All fields
// are optional; missing values degrade to documented defaults downstream.
// Spread and PoolSpread follow sportsbook convention: negative means the home
// team is favored.
type MarketData struct {
	Spread        *float64 `db:"spread" json:"spread"`
	Total         *float64 `db:"total" json:"total"`
	MoneylineHome *int     `db:"moneyline_home" json:"moneyline_home"`
	MoneylineAway *int     `db:"moneyline_away" json:"moneyline_away"`

	// PoolSpread is the line the pool itself posted, which may lag the
	// market. The engine treats the gap as an arbitrage signal.
	PoolSpread *float64 `db:"pool_spread" json:"pool_spread"`
}

// HasMoneyline reports whether both sides of the moneyline are present
func (m *MarketData) HasMoneyline() bool {
	return m != nil && m.MoneylineHome != nil && m.MoneylineAway != nil
}

// HasSpread reports whether a point spread is present
func (m *MarketData) HasSpread() bool {
	return m != nil && m.Spread != nil
}

// HasTotal reports whether an over/under total is present
func (m *MarketData) HasTotal() bool {
	return m != nil && m.Total != nil
}

// LineValue returns the points the market has moved toward the home side
// relative to the pool's posted spread, or 0 if either line is missing.
func (m *MarketData) LineValue() float64 {
	if m == nil || m.Spread == nil || m.PoolSpread == nil {
		return 0
	}
	v := *m.PoolSpread - *m.Spread
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
