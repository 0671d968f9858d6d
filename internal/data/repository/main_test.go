package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"review-listing/internal/data/entity"
	"review-listing/pkg/database"

	"go.uber.org/zap"
)

// setupTestRepo opens a migrated SQLite database in the test's temp dir.
func setupTestRepo(t *testing.T) ReviewRepository {
	t.Helper()

	db, closer, err := database.InitSQLite(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(closer)

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewReviewRepository(db, zap.NewNop())
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// seedReviews inserts ratings in order, each posted one hour after the previous.
func seedReviews(t *testing.T, repo ReviewRepository, ratings ...int) []*entity.Review {
	t.Helper()

	reviews := make([]*entity.Review, len(ratings))
	for i, rating := range ratings {
		reviews[i] = &entity.Review{
			PostedOn: baseTime.Add(time.Duration(i) * time.Hour),
			Rating:   rating,
			Username: "user" + string(rune('a'+i)),
			Title:    "title " + string(rune('a'+i)),
			Comments: "comments",
		}
	}

	if err := repo.CreateBatch(context.Background(), reviews); err != nil {
		t.Fatalf("setup: CreateBatch() error = %v", err)
	}
	return reviews
}
