package models

import (
	"time"

	"github.com/google/uuid"
)

// GameResult is a final score consumed by the rating updater and the
// historical seeder. ClosingSpread, when present, switches the Elo update to
// against-the-spread grading.
type GameResult struct {
	ID            uuid.UUID `db:"id" json:"id" validate:"required,uuid4"`
	Season        int       `db:"season" json:"season" validate:"required,gt=1900"`
	Week          int       `db:"week" json:"week" validate:"gte=0"`
	HomeTeamID    string    `db:"home_team_id" json:"home_team_id" validate:"required"`
	AwayTeamID    string    `db:"away_team_id" json:"away_team_id" validate:"required"`
	HomeScore     int       `db:"home_score" json:"home_score" validate:"gte=0"`
	AwayScore     int       `db:"away_score" json:"away_score" validate:"gte=0"`
	ClosingSpread *float64  `db:"closing_spread" json:"closing_spread"`
	PlayedAt      time.Time `db:"played_at" json:"played_at"`
	Processed     bool      `db:"processed" json:"processed"`
}

// HomeWon reports a straight-up home win
func (g *GameResult) HomeWon() bool {
	return g.HomeScore > g.AwayScore
}

// Margin returns home score minus away score
func (g *GameResult) Margin() int {
	return g.HomeScore - g.AwayScore
}

// TeamSeasonRecord is an aggregate win rate used for historical seeding
type TeamSeasonRecord struct {
	TeamID string  `db:"team_id" json:"team_id"`
	Season int     `db:"season" json:"season"`
	Wins   int     `db:"wins" json:"wins"`
	Losses int     `db:"losses" json:"losses"`
	Ties   int     `db:"ties" json:"ties"`
}

// WinRate counts a tie as half a win
func (r *TeamSeasonRecord) WinRate() float64 {
	games := r.Wins + r.Losses + r.Ties
	if games == 0 {
		return 0.5
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(games)
}
