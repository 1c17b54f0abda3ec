package persistence

import (
	"context"
	"errors"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const defaultPostListLimit = 12

// Ensure GormPostRepository implements social.PostRepository
var _ social.PostRepository = (*GormPostRepository)(nil)

// GormPostRepository implements social.PostRepository using GORM
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Upsert inserts or updates a post keyed by its external ID
func (r *GormPostRepository) Upsert(ctx context.Context, post *social.Post) (*social.Post, error) {
	if post.ExternalID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Instagram media ID is required")
	}

	db := r.db.WithContext(ctx)

	var existing models.PostModel
	err := db.Where("instagram_id = ?", post.ExternalID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		var model models.PostModel
		model.FromDomain(post)
		if err := db.Create(&model).Error; err != nil {
			return nil, err
		}
		return model.ToDomain(), nil

	case err != nil:
		return nil, err

	default:
		existing.FromDomain(post)
		if err := db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return existing.ToDomain(), nil
	}
}

// List returns up to limit posts, most recently posted first
func (r *GormPostRepository) List(ctx context.Context, limit int) ([]social.Post, error) {
	if limit <= 0 {
		limit = defaultPostListLimit
	}

	var postModels []models.PostModel
	if err := r.db.WithContext(ctx).
		Order("posted_at DESC").
		Limit(limit).
		Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]social.Post, len(postModels))
	for i, model := range postModels {
		posts[i] = *model.ToDomain()
	}
	return posts, nil
}

// Delete removes a cached post by external ID
func (r *GormPostRepository) Delete(ctx context.Context, externalID string) error {
	if externalID == "" {
		return shared.NewDomainError("INVALID_INPUT", "Instagram media ID is required")
	}
	result := r.db.WithContext(ctx).
		Where("instagram_id = ?", externalID).
		Delete(&models.PostModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
