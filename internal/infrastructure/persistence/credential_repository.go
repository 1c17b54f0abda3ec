package persistence

import (
	"context"
	"errors"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// Ensure GormCredentialRepository implements social.CredentialRepository
var _ social.CredentialRepository = (*GormCredentialRepository)(nil)

// GormCredentialRepository implements social.CredentialRepository using GORM
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewGormCredentialRepository creates a new GormCredentialRepository
func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// Get returns the credential for a service, or shared.ErrNotFound
func (r *GormCredentialRepository) Get(ctx context.Context, service social.Service) (*social.Credential, error) {
	var model models.CredentialModel
	if err := r.db.WithContext(ctx).
		Where("service = ?", service.String()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Upsert inserts or updates the credential for update.Service. Only the
// fields set on the update are written; everything else keeps its stored
// value. A fresh record defaults to active unless the update says otherwise.
func (r *GormCredentialRepository) Upsert(ctx context.Context, update social.CredentialUpdate) (*social.Credential, error) {
	if !update.Service.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown integration service")
	}

	db := r.db.WithContext(ctx)

	var existing models.CredentialModel
	err := db.Where("service = ?", update.Service.String()).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model := models.CredentialModel{
			Service:  update.Service.String(),
			IsActive: true,
		}
		applyCredentialUpdate(&model, update)
		if err := db.Create(&model).Error; err != nil {
			return nil, err
		}
		return model.ToDomain(), nil

	case err != nil:
		return nil, err

	default:
		updates := credentialUpdateColumns(update)
		if len(updates) > 0 {
			if err := db.Model(&existing).Updates(updates).Error; err != nil {
				return nil, err
			}
		}
		return r.Get(ctx, update.Service)
	}
}

func applyCredentialUpdate(model *models.CredentialModel, update social.CredentialUpdate) {
	if update.AccessToken != nil {
		model.AccessToken = *update.AccessToken
	}
	if update.RefreshToken != nil {
		model.RefreshToken = *update.RefreshToken
	}
	if update.BusinessID != nil {
		model.BusinessID = *update.BusinessID
	}
	if update.InstagramBusinessAccountID != nil {
		model.InstagramBusinessAccountID = *update.InstagramBusinessAccountID
	}
	if update.GoogleLocationName != nil {
		model.GoogleLocationName = *update.GoogleLocationName
	}
	if update.LastSyncedAt != nil {
		model.LastSyncedAt = update.LastSyncedAt
	}
	if update.IsActive != nil {
		model.IsActive = *update.IsActive
	}
}

func credentialUpdateColumns(update social.CredentialUpdate) map[string]any {
	updates := make(map[string]any)
	if update.AccessToken != nil {
		updates["access_token"] = *update.AccessToken
	}
	if update.RefreshToken != nil {
		updates["refresh_token"] = *update.RefreshToken
	}
	if update.BusinessID != nil {
		updates["business_id"] = *update.BusinessID
	}
	if update.InstagramBusinessAccountID != nil {
		updates["instagram_business_account_id"] = *update.InstagramBusinessAccountID
	}
	if update.GoogleLocationName != nil {
		updates["google_location_name"] = *update.GoogleLocationName
	}
	if update.LastSyncedAt != nil {
		updates["last_synced_at"] = *update.LastSyncedAt
	}
	if update.IsActive != nil {
		updates["is_active"] = *update.IsActive
	}
	return updates
}
