package repository

import (
	"context"
	"testing"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

func TestMemoryRepositoryGetMissing(t *testing.T) {
	repo := NewMemoryTeamRatingRepository()
	if _, err := repo.Get(context.Background(), "KC"); err != models.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepositoryUpsertAndGet(t *testing.T) {
	repo := NewMemoryTeamRatingRepository()
	ctx := context.Background()

	if err := repo.Upsert(ctx, &models.TeamRating{TeamID: "KC", Rating: 1600, GamesPlayed: 5}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.Get(ctx, "KC")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Rating != 1600 || got.GamesPlayed != 5 {
		t.Errorf("unexpected stored rating: %+v", got)
	}

	// Mutating the returned copy must not leak into the store.
	got.Rating = 0
	again, _ := repo.Get(ctx, "KC")
	if again.Rating != 1600 {
		t.Error("returned rating should be a copy")
	}
}

func TestMemoryRepositoryGetMany(t *testing.T) {
	repo := NewMemoryTeamRatingRepository()
	ctx := context.Background()

	_ = repo.Upsert(ctx, &models.TeamRating{TeamID: "KC", Rating: 1600})
	_ = repo.Upsert(ctx, &models.TeamRating{TeamID: "DEN", Rating: 1450})

	out, err := repo.GetMany(ctx, []string{"KC", "DEN", "LV"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 2 {
		t.Errorf("expected 2 stored ratings, got %d", len(out))
	}
	if _, ok := out["LV"]; ok {
		t.Error("unseen team should be absent, not defaulted")
	}
}

func TestMemoryRepositoryListAll(t *testing.T) {
	repo := NewMemoryTeamRatingRepository()
	ctx := context.Background()

	_ = repo.Upsert(ctx, &models.TeamRating{TeamID: "KC", Rating: 1600})
	_ = repo.Upsert(ctx, &models.TeamRating{TeamID: "DEN", Rating: 1450})

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 ratings, got %d", len(all))
	}
}
