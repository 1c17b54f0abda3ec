package social

import "context"

// CredentialRepository stores per-service integration credentials.
type CredentialRepository interface {
	// Get returns the credential for a service, or shared.ErrNotFound
	Get(ctx context.Context, service Service) (*Credential, error)

	// Upsert inserts or updates the credential for update.Service with
	// merge semantics and returns the stored record
	Upsert(ctx context.Context, update CredentialUpdate) (*Credential, error)
}

// ReviewRepository is the local cache of Google Business reviews.
type ReviewRepository interface {
	// Upsert inserts or updates a review keyed by its external ID
	Upsert(ctx context.Context, review *Review) (*Review, error)

	// List returns up to limit reviews, most recently reviewed first
	List(ctx context.Context, limit int) ([]Review, error)

	// Delete removes a cached review by external ID
	Delete(ctx context.Context, externalID string) error
}

// PostRepository is the local cache of Instagram posts.
type PostRepository interface {
	// Upsert inserts or updates a post keyed by its external ID
	Upsert(ctx context.Context, post *Post) (*Post, error)

	// List returns up to limit posts, most recently posted first
	List(ctx context.Context, limit int) ([]Post, error)

	// Delete removes a cached post by external ID
	Delete(ctx context.Context, externalID string) error
}
