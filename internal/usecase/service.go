package usecase

import (
	"review-listing/internal/data/repository"
	"review-listing/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Review ReviewService
	Seed   SeedService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Review: NewReviewService(repo, config.Review, log),
		Seed:   NewSeedService(repo, config.Review, log),
	}
}
