package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"review-listing/internal/data/entity"
	"review-listing/internal/data/repository"
	"review-listing/internal/dto/request"
	"review-listing/internal/dto/response"
	"review-listing/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	// Listing
	ListTopReviews(ctx context.Context) ([]response.ReviewResponse, error)
	ListReviews(ctx context.Context, req *request.ListReviewsRequest) (*response.PaginatedResponse[response.ReviewResponse], error)

	// Single review
	GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error

	// Stats
	GetReviewStats(ctx context.Context) (*response.ReviewStats, error)
}

type reviewService struct {
	repo *repository.Repository
	cfg  utils.ReviewConfig
	log  *zap.Logger
	now  func() time.Time
}

func NewReviewService(repo *repository.Repository, cfg utils.ReviewConfig, log *zap.Logger) ReviewService {
	if cfg.MaxRating < 1 {
		cfg.MaxRating = 5
	}
	if cfg.ListLimit < 1 {
		cfg.ListLimit = 10
	}

	return &reviewService{
		repo: repo,
		cfg:  cfg,
		log:  log.With(zap.String("service", "review")),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// ListTopReviews returns the newest reviews rated above the configured
// threshold, capped at the configured list size.
func (s *reviewService) ListTopReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.Query().
		Where(entity.ReviewColumnRating, ">", s.cfg.MinRating).
		OrderBy(entity.ReviewColumnPostedOn, repository.DirectionDesc).
		Limit(s.cfg.ListLimit).
		FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list top reviews",
			zap.Error(err),
			zap.Int("min_rating", s.cfg.MinRating),
			zap.Int("limit", s.cfg.ListLimit),
		)
		return nil, fmt.Errorf("list top reviews: %w", err)
	}

	s.log.Debug("Top reviews retrieved", zap.Int("count", len(reviews)))

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) ListReviews(ctx context.Context, req *request.ListReviewsRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List reviews validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	query := s.repo.Review.Query()
	if req.MinRating > 0 {
		query.Where(entity.ReviewColumnRating, ">=", req.MinRating)
	}
	if username := strings.TrimSpace(req.Username); username != "" {
		query.Where(entity.ReviewColumnUsername, "=", username)
	}
	if q := strings.TrimSpace(req.Query); q != "" {
		query.Where(entity.ReviewColumnTitle, "like", "%"+q+"%")
	}

	total, err := query.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	sortColumn := req.Sort
	if sortColumn == "" {
		sortColumn = entity.ReviewColumnPostedOn
	}
	order := req.Order
	if order == "" {
		order = repository.DirectionDesc
	}

	limit := req.Limit()
	reviews, err := query.
		OrderBy(sortColumn, order).
		OrderBy(entity.ReviewColumnID, order).
		Limit(limit).
		Offset(req.Offset()).
		FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", limit),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	s.log.Info("Reviews retrieved",
		zap.Int("count", len(reviews)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", limit),
	)

	return response.NewPaginatedResponse(response.ReviewsToResponse(reviews), req.Page, limit, total), nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	req.Normalize()
	if errs := s.validate(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	review := &entity.Review{
		PostedOn: s.now(),
		Rating:   req.Rating,
		Username: req.Username,
		Title:    req.Title,
		Comments: req.Comments,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("username", review.Username),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Uint("review_id", review.ID),
		zap.String("username", review.Username),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	req.Normalize()
	if errs := s.validate(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	// Update fields if provided
	updated := false

	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		updated = true
	}

	if req.Title != nil && *req.Title != review.Title {
		review.Title = *req.Title
		updated = true
	}

	if req.Comments != nil && *req.Comments != review.Comments {
		review.Comments = *req.Comments
		updated = true
	}

	if !updated {
		resp := response.ReviewToResponse(review)
		return &resp, nil
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, fmt.Errorf("review %d: %w", review.ID, ErrNotFound)
		}
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Uint("review_id", review.ID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated", zap.Uint("review_id", review.ID))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return err
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		// removed concurrently after the lookup
		if errors.Is(err, repository.ErrReviewNotFound) {
			return fmt.Errorf("review %d: %w", review.ID, ErrNotFound)
		}
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Uint("review_id", review.ID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Uint("review_id", review.ID))
	return nil
}

func (s *reviewService) GetReviewStats(ctx context.Context) (*response.ReviewStats, error) {
	stats, err := s.repo.Review.GetStats(ctx)
	if err != nil {
		s.log.Error("Failed to get review stats", zap.Error(err))
		return nil, fmt.Errorf("get review stats: %w", err)
	}

	histogram := make([]response.RatingBucket, 0, s.cfg.MaxRating)
	for rating := 1; rating <= s.cfg.MaxRating; rating++ {
		histogram = append(histogram, response.RatingBucket{Rating: rating, Count: stats.Histogram[rating]})
	}

	return &response.ReviewStats{
		AverageRating: utils.Round2(stats.AverageRating),
		ReviewCount:   stats.Count,
		Histogram:     histogram,
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) findReview(ctx context.Context, reviewID string) (*entity.Review, error) {
	id, ok := utils.ParseID(reviewID)
	if !ok {
		return nil, fmt.Errorf("%w: invalid review ID %q", ErrInvalidInput, reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %d: %w", id, ErrNotFound)
	}

	return review, nil
}

// validate runs struct validation plus the configured rating ceiling.
// Requests must be normalized first.
func (s *reviewService) validate(req any) map[string]string {
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}

	var rating *int
	switch r := req.(type) {
	case *request.CreateReviewRequest:
		rating = &r.Rating
	case *request.UpdateReviewRequest:
		rating = r.Rating
		// a title can be changed but not cleared
		if r.Title != nil && *r.Title == "" {
			errs["title"] = "This field is required"
		}
	}

	if rating != nil && *rating > s.cfg.MaxRating {
		errs["rating"] = fmt.Sprintf("Maximum value is %d", s.cfg.MaxRating)
	}

	return errs
}
