package repository

import (
	"fmt"

	"review-listing/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repository struct {
	Review ReviewRepository
}

func NewRepository(db *gorm.DB, log *zap.Logger) *Repository {
	return &Repository{
		Review: NewReviewRepository(db, log),
	}
}

// Migrate creates or alters the tables of every entity
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(entity.Entities()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
