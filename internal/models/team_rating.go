package models

import (
	"time"
)

// DefaultRating is the rating assigned to a team with no history.
const DefaultRating = 1500.0

// TeamRating represents a team's current Elo-style skill rating
type TeamRating struct {
	TeamID      string    `db:"team_id" json:"team_id" validate:"required"`
	Rating      float64   `db:"rating" json:"rating" validate:"required"`
	GamesPlayed int       `db:"games_played" json:"games_played" validate:"gte=0"`
	LastUpdated time.Time `db:"last_updated" json:"last_updated"`
}

// NewDefaultRating creates a fresh rating record for an unseen team
func NewDefaultRating(teamID string) *TeamRating {
	return &TeamRating{
		TeamID:      teamID,
		Rating:      DefaultRating,
		GamesPlayed: 0,
		LastUpdated: time.Now().UTC(),
	}
}

// IsProvisional reports whether the rating is still based on few games
func (t *TeamRating) IsProvisional() bool {
	return t.GamesPlayed < 4
}

// RatingChange captures the delta applied to one team by a game update
type RatingChange struct {
	TeamID    string  `json:"team_id"`
	OldRating float64 `json:"old_rating"`
	NewRating float64 `json:"new_rating"`
	Expected  float64 `json:"expected"`
	Actual    float64 `json:"actual"`
}

// Delta returns the signed rating movement
func (c RatingChange) Delta() float64 {
	return c.NewRating - c.OldRating
}
