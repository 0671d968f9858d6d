package usecase

import (
	"context"
	"fmt"

	"review-listing/internal/data/repository"
	"review-listing/internal/seed"
	"review-listing/pkg/utils"

	"go.uber.org/zap"
)

type SeedService interface {
	SeedReviews(ctx context.Context, count, days int, randSeed int64) (int, error)
}

type seedService struct {
	repo *repository.Repository
	cfg  utils.ReviewConfig
	log  *zap.Logger
}

func NewSeedService(repo *repository.Repository, cfg utils.ReviewConfig, log *zap.Logger) SeedService {
	return &seedService{
		repo: repo,
		cfg:  cfg,
		log:  log.With(zap.String("service", "seed")),
	}
}

// SeedReviews inserts count generated reviews posted within the last days days
func (s *seedService) SeedReviews(ctx context.Context, count, days int, randSeed int64) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidInput, count)
	}

	factory := seed.NewReviewFactory(randSeed, s.cfg.MaxRating, days)
	reviews := factory.CreateReviews(count)

	if err := s.repo.Review.CreateBatch(ctx, reviews); err != nil {
		return 0, fmt.Errorf("seed reviews: %w", err)
	}

	s.log.Info("Reviews seeded",
		zap.Int("count", len(reviews)),
		zap.Int("days", days),
		zap.Int64("seed", randSeed),
	)

	return len(reviews), nil
}
