package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestSeedService_SeedReviews(t *testing.T) {
	repo := setupTestRepository(t)
	svc := NewSeedService(repo, testReviewConfig, zap.NewNop())
	ctx := context.Background()

	n, err := svc.SeedReviews(ctx, 25, 30, 1)
	if err != nil {
		t.Fatalf("SeedReviews() error = %v", err)
	}
	if n != 25 {
		t.Errorf("SeedReviews() = %d, want 25", n)
	}

	count, err := repo.Review.Query().Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 25 {
		t.Errorf("stored %d reviews, want 25", count)
	}

	if _, err := svc.SeedReviews(ctx, 0, 30, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("SeedReviews(0) error = %v, want ErrInvalidInput", err)
	}
}
