package models

import "errors"

// Custom errors
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateKey    = errors.New("duplicate key violation")
	ErrInvalidTeamID   = errors.New("invalid team identifier")
	ErrWeightsRequired = errors.New("model weights are required")
	ErrUnknownTeam     = errors.New("team not present in league table")
	ErrFeedUnavailable = errors.New("data feed unavailable")
	ErrCircuitOpen     = errors.New("feed circuit breaker open")
	ErrNoSeasonHistory = errors.New("no historical records for season")
)
