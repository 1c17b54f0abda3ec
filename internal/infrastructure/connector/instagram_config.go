package connector

import "errors"

// InstagramAPIBaseURL is the production Instagram Graph API endpoint
const InstagramAPIBaseURL = "https://graph.instagram.com/v18.0"

// ErrInstagramConfigMissingBaseURL indicates a missing API base URL
var ErrInstagramConfigMissingBaseURL = errors.New("instagram: API base URL is required")

// InstagramConfig holds configuration for the Instagram Graph API.
type InstagramConfig struct {
	// APIBaseURL is the versioned Graph API root
	APIBaseURL string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// NewInstagramConfig creates an Instagram connector configuration with defaults
func NewInstagramConfig() *InstagramConfig {
	return &InstagramConfig{
		APIBaseURL:     InstagramAPIBaseURL,
		TimeoutSeconds: 15,
	}
}

// Validate validates the configuration and fills defaults
func (c *InstagramConfig) Validate() error {
	if c.APIBaseURL == "" {
		return ErrInstagramConfigMissingBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 15
	}
	return nil
}
