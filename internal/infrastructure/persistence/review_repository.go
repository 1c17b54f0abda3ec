package persistence

import (
	"context"
	"errors"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const defaultReviewListLimit = 10

// Ensure GormReviewRepository implements social.ReviewRepository
var _ social.ReviewRepository = (*GormReviewRepository)(nil)

// GormReviewRepository implements social.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Upsert inserts or updates a review keyed by its external ID
func (r *GormReviewRepository) Upsert(ctx context.Context, review *social.Review) (*social.Review, error) {
	if review.ExternalID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Google review ID is required")
	}

	db := r.db.WithContext(ctx)

	var existing models.ReviewModel
	err := db.Where("google_review_id = ?", review.ExternalID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		var model models.ReviewModel
		model.FromDomain(review)
		if err := db.Create(&model).Error; err != nil {
			return nil, err
		}
		return model.ToDomain(), nil

	case err != nil:
		return nil, err

	default:
		existing.FromDomain(review)
		if err := db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return existing.ToDomain(), nil
	}
}

// List returns up to limit reviews, most recently reviewed first
func (r *GormReviewRepository) List(ctx context.Context, limit int) ([]social.Review, error) {
	if limit <= 0 {
		limit = defaultReviewListLimit
	}

	var reviewModels []models.ReviewModel
	if err := r.db.WithContext(ctx).
		Order("reviewed_at DESC").
		Limit(limit).
		Find(&reviewModels).Error; err != nil {
		return nil, err
	}

	reviews := make([]social.Review, len(reviewModels))
	for i, model := range reviewModels {
		reviews[i] = *model.ToDomain()
	}
	return reviews, nil
}

// Delete removes a cached review by external ID
func (r *GormReviewRepository) Delete(ctx context.Context, externalID string) error {
	if externalID == "" {
		return shared.NewDomainError("INVALID_INPUT", "Google review ID is required")
	}
	result := r.db.WithContext(ctx).
		Where("google_review_id = ?", externalID).
		Delete(&models.ReviewModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
