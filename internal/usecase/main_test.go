package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"review-listing/internal/data/entity"
	"review-listing/internal/data/repository"
	"review-listing/pkg/database"
	"review-listing/pkg/utils"

	"go.uber.org/zap"
)

var testReviewConfig = utils.ReviewConfig{MinRating: 3, ListLimit: 10, MaxRating: 5}

func setupTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	db, closer, err := database.InitSQLite(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(closer)

	if err := repository.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return repository.NewRepository(db, zap.NewNop())
}

func setupTestService(t *testing.T, cfg utils.ReviewConfig) (*reviewService, *repository.Repository) {
	t.Helper()

	repo := setupTestRepository(t)
	svc := NewReviewService(repo, cfg, zap.NewNop()).(*reviewService)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }
	return svc, repo
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// insertReviews stores one review per rating, each posted a day after the previous
func insertReviews(t *testing.T, repo *repository.Repository, ratings ...int) []*entity.Review {
	t.Helper()

	reviews := make([]*entity.Review, len(ratings))
	for i, rating := range ratings {
		reviews[i] = &entity.Review{
			PostedOn: baseTime.AddDate(0, 0, i),
			Rating:   rating,
			Username: []string{"alice", "bob", "carol"}[i%3],
			Title:    "Review number " + string(rune('A'+i)),
			Comments: "",
		}
	}
	if err := repo.Review.CreateBatch(context.Background(), reviews); err != nil {
		t.Fatalf("setup: CreateBatch() error = %v", err)
	}
	return reviews
}
