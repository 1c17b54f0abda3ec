// Package connector holds the HTTP adapters for the external platforms the
// site syncs from: Google Business Profile and the Instagram Graph API.
package connector

import "errors"

const (
	// GoogleBusinessAPIBaseURL is the production Business Information endpoint
	GoogleBusinessAPIBaseURL = "https://mybusinessbusinessinformation.googleapis.com/v1"
	// GoogleReviewsAPIBaseURL is the production Reviews endpoint
	GoogleReviewsAPIBaseURL = "https://mybusinessreviews.googleapis.com/v1"
)

// Errors for Google connector configuration
var (
	ErrGoogleConfigMissingBusinessURL = errors.New("google: business API base URL is required")
	ErrGoogleConfigMissingReviewsURL  = errors.New("google: reviews API base URL is required")
)

// GoogleConfig holds configuration for the Google Business Profile API.
type GoogleConfig struct {
	// BusinessAPIBaseURL serves account and location listings
	BusinessAPIBaseURL string
	// ReviewsAPIBaseURL serves per-location review listings
	ReviewsAPIBaseURL string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// NewGoogleConfig creates a Google connector configuration with defaults
func NewGoogleConfig() *GoogleConfig {
	return &GoogleConfig{
		BusinessAPIBaseURL: GoogleBusinessAPIBaseURL,
		ReviewsAPIBaseURL:  GoogleReviewsAPIBaseURL,
		TimeoutSeconds:     15,
	}
}

// Validate validates the configuration and fills defaults
func (c *GoogleConfig) Validate() error {
	if c.BusinessAPIBaseURL == "" {
		return ErrGoogleConfigMissingBusinessURL
	}
	if c.ReviewsAPIBaseURL == "" {
		return ErrGoogleConfigMissingReviewsURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 15
	}
	return nil
}
