package repository

import (
	"context"
	"errors"
	"fmt"

	"review-listing/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const createBatchSize = 100

// ErrReviewNotFound is returned by writes that matched no row
var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Query() *ReviewQuery
	Create(ctx context.Context, review *entity.Review) error
	CreateBatch(ctx context.Context, reviews []*entity.Review) error
	FindByID(ctx context.Context, id uint) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uint) error

	// Business queries
	GetStats(ctx context.Context) (ReviewStats, error)
}

// ReviewStats aggregates every stored review
type ReviewStats struct {
	AverageRating float64
	Count         int64
	Histogram     map[int]int64 // rating -> count
}

type reviewRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewReviewRepository(db *gorm.DB, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Query() *ReviewQuery {
	return newReviewQuery(r.db, r.log)
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("username", review.Username),
			zap.Int("rating", review.Rating),
		)
		return fmt.Errorf("create review by %s: %w", review.Username, err)
	}

	return nil
}

func (r *reviewRepository) CreateBatch(ctx context.Context, reviews []*entity.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(reviews, createBatchSize).Error; err != nil {
		r.log.Error("Failed to create review batch",
			zap.Error(err),
			zap.Int("count", len(reviews)),
		)
		return fmt.Errorf("create %d reviews: %w", len(reviews), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*entity.Review, error) {
	var review entity.Review
	err := r.db.WithContext(ctx).First(&review, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Uint("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			entity.ReviewColumnRating:   review.Rating,
			entity.ReviewColumnTitle:    review.Title,
			entity.ReviewColumnComments: review.Comments,
		})

	if result.Error != nil {
		r.log.Error("Failed to update review",
			zap.Error(result.Error),
			zap.Uint("review_id", review.ID),
		)
		return fmt.Errorf("update review %d: %w", review.ID, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("update review %d: %w", review.ID, ErrReviewNotFound)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Review{}, id)
	if result.Error != nil {
		r.log.Error("Failed to delete review",
			zap.Error(result.Error),
			zap.Uint("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("delete review %d: %w", id, ErrReviewNotFound)
	}

	r.log.Info("Review deleted", zap.Uint("review_id", id))
	return nil
}

func (r *reviewRepository) GetStats(ctx context.Context) (ReviewStats, error) {
	stats := ReviewStats{Histogram: make(map[int]int64)}

	var totals struct {
		AvgRating   float64
		ReviewCount int64
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Scan(&totals).Error
	if err != nil {
		r.log.Error("Failed to get review stats", zap.Error(err))
		return stats, fmt.Errorf("get review stats: %w", err)
	}

	var buckets []struct {
		Rating int
		Total  int64
	}
	err = r.db.WithContext(ctx).
		Model(&entity.Review{}).
		Select("rating, COUNT(*) AS total").
		Group("rating").
		Scan(&buckets).Error
	if err != nil {
		r.log.Error("Failed to get rating histogram", zap.Error(err))
		return stats, fmt.Errorf("get rating histogram: %w", err)
	}

	stats.AverageRating = totals.AvgRating
	stats.Count = totals.ReviewCount
	for _, b := range buckets {
		stats.Histogram[b.Rating] = b.Total
	}

	return stats, nil
}
