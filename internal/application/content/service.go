// Package content holds the application service for editable site content.
package content

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/content"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
)

// EntryDTO is the wire shape of a content block.
type EntryDTO struct {
	ID            uint           `json:"id"`
	Key           string         `json:"key"`
	TitleEn       string         `json:"titleEn,omitempty"`
	TitleEs       string         `json:"titleEs,omitempty"`
	DescriptionEn string         `json:"descriptionEn,omitempty"`
	DescriptionEs string         `json:"descriptionEs,omitempty"`
	ImageURL      string         `json:"imageUrl,omitempty"`
	VideoURL      string         `json:"videoUrl,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func entryToDTO(e *content.Entry) *EntryDTO {
	return &EntryDTO{
		ID:            e.ID,
		Key:           e.Key,
		TitleEn:       e.TitleEn,
		TitleEs:       e.TitleEs,
		DescriptionEn: e.DescriptionEn,
		DescriptionEs: e.DescriptionEs,
		ImageURL:      e.ImageURL,
		VideoURL:      e.VideoURL,
		Metadata:      e.Metadata,
		UpdatedAt:     e.UpdatedAt,
	}
}

// UpsertInput is a partial content write; nil fields are left untouched.
type UpsertInput struct {
	Key           string
	TitleEn       *string
	TitleEs       *string
	DescriptionEn *string
	DescriptionEs *string
	ImageURL      *string
	VideoURL      *string
	Metadata      map[string]any
}

// Service exposes content reads for the public site and writes for the
// admin panel.
type Service struct {
	entries content.Repository
	logger  *zap.Logger
}

// NewService creates a new content Service
func NewService(entries content.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{entries: entries, logger: logger}
}

// Get returns one content block by key
func (s *Service) Get(ctx context.Context, key string) (*EntryDTO, error) {
	entry, err := s.entries.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	return entryToDTO(entry), nil
}

// All returns every content block
func (s *Service) All(ctx context.Context) ([]EntryDTO, error) {
	entries, err := s.entries.All(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]EntryDTO, len(entries))
	for i := range entries {
		dtos[i] = *entryToDTO(&entries[i])
	}
	return dtos, nil
}

// Upsert creates or updates a content block with merge semantics
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*EntryDTO, error) {
	if input.Key == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Content key is required")
	}

	entry, err := s.entries.Upsert(ctx, content.EntryUpdate{
		Key:           input.Key,
		TitleEn:       input.TitleEn,
		TitleEs:       input.TitleEs,
		DescriptionEn: input.DescriptionEn,
		DescriptionEs: input.DescriptionEs,
		ImageURL:      input.ImageURL,
		VideoURL:      input.VideoURL,
		Metadata:      input.Metadata,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("content updated", zap.String("key", input.Key))
	return entryToDTO(entry), nil
}

// Delete removes a content block
func (s *Service) Delete(ctx context.Context, key string) error {
	return s.entries.Delete(ctx, key)
}
