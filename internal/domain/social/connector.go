package social

import "context"

// GoogleLocation describes one business location under a Google account.
type GoogleLocation struct {
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	PrimaryPhone      string `json:"primary_phone"`
	PrimaryWebsiteURL string `json:"primary_website_url"`
}

// GoogleAccountInfo is the first account on the credential plus its locations.
// Multi-account credentials are not supported; only the first account is
// ever inspected.
type GoogleAccountInfo struct {
	AccountID   string           `json:"account_id"`
	AccountName string           `json:"account_name"`
	Locations   []GoogleLocation `json:"locations"`
}

// GoogleConnector is the port to the Google Business Profile API.
// Fetch methods never fail: transport and API errors are logged by the
// adapter and degrade to empty results.
type GoogleConnector interface {
	// ValidateToken returns true iff the accounts listing succeeds and the
	// response carries the accounts field, even as an empty array
	ValidateToken(ctx context.Context, token string) bool

	// AccountInfo resolves the first account and its locations, or nil
	// when the credential has no accounts or the call fails
	AccountInfo(ctx context.Context, token string) *GoogleAccountInfo

	// FetchReviews returns up to limit reviews for a location ordered by
	// update time descending, normalized to the local model. Any failure
	// yields an empty slice.
	FetchReviews(ctx context.Context, token, locationName string, limit int) []Review
}

// InstagramAccountInfo is the profile behind an Instagram access token.
type InstagramAccountInfo struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name,omitempty"`
	Biography         string `json:"biography,omitempty"`
	Website           string `json:"website,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

// InstagramConnector is the port to the Instagram Graph API.
type InstagramConnector interface {
	// ValidateToken returns true iff the identity endpoint returns an id
	ValidateToken(ctx context.Context, token string) bool

	// BusinessAccountID returns the business account id behind the token,
	// or "" on any error
	BusinessAccountID(ctx context.Context, token string) string

	// AccountInfo returns the full account profile, or nil on any error
	AccountInfo(ctx context.Context, token string) *InstagramAccountInfo

	// FetchPosts returns up to limit media posts normalized to the local
	// model. Any failure yields an empty slice.
	FetchPosts(ctx context.Context, token, accountID string, limit int) []Post

	// ResolveMediaURL queries a single media item for its URL, preferring
	// the first video variant. Returns "" when nothing can be resolved.
	ResolveMediaURL(ctx context.Context, token, mediaID string) string

	// RefreshAccessToken exchanges a long-lived token for a fresh one, or
	// returns "" on any error
	RefreshAccessToken(ctx context.Context, refreshToken string) string
}
