package models

import (
	"time"

	"github.com/google/uuid"
)

// InjuryStatus is the league-reported availability designation for a player
type InjuryStatus string

const (
	InjuryQuestionable   InjuryStatus = "QUESTIONABLE"
	InjuryDoubtful       InjuryStatus = "DOUBTFUL"
	InjuryOut            InjuryStatus = "OUT"
	InjuryInjuredReserve InjuryStatus = "INJURED_RESERVE"
)

// PlayerInjury is one entry on a team's injury report
type PlayerInjury struct {
	PlayerName string       `json:"player_name"`
	Position   string       `json:"position" validate:"required"`
	Status     InjuryStatus `json:"status" validate:"oneof=QUESTIONABLE DOUBTFUL OUT INJURED_RESERVE"`
}

// InjuryData carries both teams' injury reports for a game
type InjuryData struct {
	Home []PlayerInjury `json:"home"`
	Away []PlayerInjury `json:"away"`
}

// WeatherData is a resolved forecast snapshot for the game site
type WeatherData struct {
	WindSpeedMPH  float64 `json:"wind_speed_mph" validate:"gte=0"`
	PrecipProb    float64 `json:"precip_prob" validate:"gte=0,lte=1"`
	TemperatureF  float64 `json:"temperature_f"`
	IsDome        bool    `json:"is_dome"`
}

// RestData carries days of rest since each side's previous game
type RestData struct {
	HomeDaysRest int `json:"home_days_rest" validate:"gte=0"`
	AwayDaysRest int `json:"away_days_rest" validate:"gte=0"`
}

// DivisionContext is the league-membership data resolved once at input
// construction so the scoring path never touches a lookup service.
type DivisionContext struct {
	SameDivision     bool    `json:"same_division"`
	RivalryIntensity float64 `json:"rivalry_intensity"`
}

// ModelInput is the complete, immutable description of one game handed to the
// confidence engine. Optional sections left nil degrade to neutral defaults.
type ModelInput struct {
	GameID     uuid.UUID `json:"game_id" validate:"required"`
	HomeTeamID string    `json:"home_team_id" validate:"required"`
	AwayTeamID string    `json:"away_team_id" validate:"required"`
	Kickoff    time.Time `json:"kickoff" validate:"required"`
	Venue      string    `json:"venue"`
	IsPlayoff  bool      `json:"is_playoff"`

	Market   *MarketData      `json:"market"`
	Weather  *WeatherData     `json:"weather"`
	Injuries *InjuryData      `json:"injuries"`
	Rest     *RestData        `json:"rest"`
	Division *DivisionContext `json:"division"`

	Weights ModelWeights `json:"weights" validate:"required"`
}
