package persistence

import (
	"context"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/contact"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const defaultSubmissionListLimit = 50

// Ensure GormContactRepository implements contact.Repository
var _ contact.Repository = (*GormContactRepository)(nil)

// GormContactRepository implements contact.Repository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Create stores a new submission and returns it with its ID set
func (r *GormContactRepository) Create(ctx context.Context, submission *contact.Submission) (*contact.Submission, error) {
	var model models.ContactSubmissionModel
	model.FromDomain(submission)
	if model.Status == "" {
		model.Status = contact.StatusNew.String()
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns up to limit submissions, newest first
func (r *GormContactRepository) List(ctx context.Context, limit int) ([]contact.Submission, error) {
	if limit <= 0 {
		limit = defaultSubmissionListLimit
	}

	var submissionModels []models.ContactSubmissionModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&submissionModels).Error; err != nil {
		return nil, err
	}

	submissions := make([]contact.Submission, len(submissionModels))
	for i, model := range submissionModels {
		submissions[i] = *model.ToDomain()
	}
	return submissions, nil
}

// UpdateStatus moves a submission to a new status
func (r *GormContactRepository) UpdateStatus(ctx context.Context, id uint, status contact.Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid submission status")
	}

	result := r.db.WithContext(ctx).
		Model(&models.ContactSubmissionModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
