// Package content holds the bilingual editable content blocks rendered by
// the public site: hero sections, service descriptions, gallery entries.
package content

import (
	"context"
	"time"
)

// Entry is one editable content block, addressed by a stable key such as
// "hero_image" or "service_plumbing_description". Text fields come in an
// English and a Spanish variant.
type Entry struct {
	ID            uint
	Key           string
	TitleEn       string
	TitleEs       string
	DescriptionEn string
	DescriptionEs string
	// ImageURL and VideoURL point at uploaded media in object storage
	ImageURL string
	VideoURL string
	// Metadata is free-form JSON for block-specific extras
	Metadata  map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryUpdate is a partial content write with merge semantics: nil fields
// leave the stored value untouched.
type EntryUpdate struct {
	Key           string
	TitleEn       *string
	TitleEs       *string
	DescriptionEn *string
	DescriptionEs *string
	ImageURL      *string
	VideoURL      *string
	Metadata      map[string]any
}

// Repository stores content entries keyed by their content key.
type Repository interface {
	// GetByKey returns the entry for a key, or shared.ErrNotFound
	GetByKey(ctx context.Context, key string) (*Entry, error)

	// All returns every content entry
	All(ctx context.Context) ([]Entry, error)

	// Upsert inserts or updates the entry for update.Key and returns the
	// stored record
	Upsert(ctx context.Context, update EntryUpdate) (*Entry, error)

	// Delete removes the entry for a key
	Delete(ctx context.Context, key string) error
}
