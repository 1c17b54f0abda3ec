// Package media holds the admin upload service for site imagery and video.
package media

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/content"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
)

// Upload limits. Images are kept small enough for gallery use; videos get
// headroom for short hero clips.
const (
	MaxImageSize = 10 << 20  // 10MB
	MaxVideoSize = 100 << 20 // 100MB
)

var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var videoContentTypes = map[string]string{
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
}

// ObjectStorage is the port to the S3-compatible media store.
type ObjectStorage interface {
	// Upload stores a media object under the given key
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error

	// PublicURL returns the browser-facing URL of an uploaded object
	PublicURL(ctx context.Context, storageKey string) (string, error)

	// Delete removes an object from storage
	Delete(ctx context.Context, storageKey string) error

	// Exists checks whether an object is present in storage
	Exists(ctx context.Context, storageKey string) (bool, error)
}

// UploadInput is one media upload from the admin panel. ContentKey, when
// set, attaches the resulting URL to that content block.
type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
	ContentKey  string
}

// UploadResult reports where an upload landed.
type UploadResult struct {
	StorageKey string `json:"storageKey"`
	URL        string `json:"url"`
	ContentKey string `json:"contentKey,omitempty"`
}

// Service validates and stores media uploads.
type Service struct {
	storage ObjectStorage
	entries content.Repository
	logger  *zap.Logger
}

// NewService creates a new media Service
func NewService(storage ObjectStorage, entries content.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, entries: entries, logger: logger}
}

// UploadImage validates and stores an image under images/, optionally
// attaching its URL to a content block.
func (s *Service) UploadImage(ctx context.Context, input UploadInput) (*UploadResult, error) {
	ext, ok := imageContentTypes[normalizeContentType(input.ContentType)]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("Unsupported image type %q; allowed: jpeg, png, webp, gif", input.ContentType))
	}
	if len(input.Data) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Uploaded file is empty")
	}
	if len(input.Data) > MaxImageSize {
		return nil, shared.NewDomainError("PAYLOAD_TOO_LARGE", "Image exceeds the 10MB limit")
	}

	key := "images/" + uuid.New().String() + extensionFor(input.FileName, ext)
	return s.store(ctx, key, input, func(url string) *string { return &url }, nil)
}

// UploadVideo validates and stores a video under videos/, optionally
// attaching its URL to a content block.
func (s *Service) UploadVideo(ctx context.Context, input UploadInput) (*UploadResult, error) {
	ext, ok := videoContentTypes[normalizeContentType(input.ContentType)]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("Unsupported video type %q; allowed: mp4, webm, quicktime", input.ContentType))
	}
	if len(input.Data) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Uploaded file is empty")
	}
	if len(input.Data) > MaxVideoSize {
		return nil, shared.NewDomainError("PAYLOAD_TOO_LARGE", "Video exceeds the 100MB limit")
	}

	key := "videos/" + uuid.New().String() + extensionFor(input.FileName, ext)
	return s.store(ctx, key, input, nil, func(url string) *string { return &url })
}

func (s *Service) store(
	ctx context.Context,
	key string,
	input UploadInput,
	asImage func(string) *string,
	asVideo func(string) *string,
) (*UploadResult, error) {
	if err := s.storage.Upload(ctx, key, input.Data, normalizeContentType(input.ContentType)); err != nil {
		return nil, err
	}

	url, err := s.storage.PublicURL(ctx, key)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{StorageKey: key, URL: url}

	if input.ContentKey != "" {
		update := content.EntryUpdate{Key: input.ContentKey}
		if asImage != nil {
			update.ImageURL = asImage(url)
		}
		if asVideo != nil {
			update.VideoURL = asVideo(url)
		}
		if _, err := s.entries.Upsert(ctx, update); err != nil {
			return nil, err
		}
		result.ContentKey = input.ContentKey
	}

	s.logger.Info("media uploaded",
		zap.String("key", key),
		zap.Int("size", len(input.Data)))
	return result, nil
}

// Delete removes an uploaded object
func (s *Service) Delete(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return shared.NewDomainError("INVALID_INPUT", "Storage key is required")
	}
	return s.storage.Delete(ctx, storageKey)
}

func normalizeContentType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// extensionFor keeps the original file extension when it is plausible,
// falling back to the canonical one for the content type.
func extensionFor(fileName, fallback string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if ext != "" && len(ext) <= 5 {
		return ext
	}
	return fallback
}
