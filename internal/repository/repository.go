package repository

import (
	"fmt"

	"github.com/jnew00/pool-manager-sub000/internal/database"
)

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		TeamRating: NewPostgresTeamRatingRepository(db),
		GameResult: NewPostgresGameResultRepository(db),
	}, nil
}
