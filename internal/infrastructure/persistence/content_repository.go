package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/content"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// Ensure GormContentRepository implements content.Repository
var _ content.Repository = (*GormContentRepository)(nil)

// GormContentRepository implements content.Repository using GORM
type GormContentRepository struct {
	db *gorm.DB
}

// NewGormContentRepository creates a new GormContentRepository
func NewGormContentRepository(db *gorm.DB) *GormContentRepository {
	return &GormContentRepository{db: db}
}

// GetByKey returns the entry for a key, or shared.ErrNotFound
func (r *GormContentRepository) GetByKey(ctx context.Context, key string) (*content.Entry, error) {
	var model models.ContentModel
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// All returns every content entry ordered by key
func (r *GormContentRepository) All(ctx context.Context) ([]content.Entry, error) {
	var contentModels []models.ContentModel
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&contentModels).Error; err != nil {
		return nil, err
	}

	entries := make([]content.Entry, len(contentModels))
	for i, model := range contentModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// Upsert inserts or updates the entry for update.Key with merge semantics:
// nil fields leave the stored value untouched.
func (r *GormContentRepository) Upsert(ctx context.Context, update content.EntryUpdate) (*content.Entry, error) {
	if update.Key == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Content key is required")
	}

	db := r.db.WithContext(ctx)

	var model models.ContentModel
	err := db.Where("key = ?", update.Key).First(&model).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model = models.ContentModel{Key: update.Key}
		applyContentUpdate(&model, update)
		if err := db.Create(&model).Error; err != nil {
			return nil, err
		}
		return model.ToDomain(), nil

	case err != nil:
		return nil, err

	default:
		applyContentUpdate(&model, update)
		if err := db.Save(&model).Error; err != nil {
			return nil, err
		}
		return model.ToDomain(), nil
	}
}

// Delete removes the entry for a key
func (r *GormContentRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return shared.NewDomainError("INVALID_INPUT", "Content key is required")
	}
	result := r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.ContentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func applyContentUpdate(model *models.ContentModel, update content.EntryUpdate) {
	if update.TitleEn != nil {
		model.TitleEn = *update.TitleEn
	}
	if update.TitleEs != nil {
		model.TitleEs = *update.TitleEs
	}
	if update.DescriptionEn != nil {
		model.DescriptionEn = *update.DescriptionEn
	}
	if update.DescriptionEs != nil {
		model.DescriptionEs = *update.DescriptionEs
	}
	if update.ImageURL != nil {
		model.ImageURL = *update.ImageURL
	}
	if update.VideoURL != nil {
		model.VideoURL = *update.VideoURL
	}
	if update.Metadata != nil {
		if raw, err := json.Marshal(update.Metadata); err == nil {
			model.MetadataJSON = string(raw)
		}
	}
}
