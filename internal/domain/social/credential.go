package social

import "time"

// Service identifies an external service a credential belongs to.
type Service string

const (
	// ServiceGoogleBusiness is the Google Business Profile integration
	ServiceGoogleBusiness Service = "google-business"
	// ServiceInstagram is the Instagram Graph API integration
	ServiceInstagram Service = "instagram"
)

// IsValid returns true if the service name is one we integrate with
func (s Service) IsValid() bool {
	switch s {
	case ServiceGoogleBusiness, ServiceInstagram:
		return true
	default:
		return false
	}
}

// String returns the string representation of Service
func (s Service) String() string {
	return string(s)
}

// Credential is the stored configuration for one external service.
// There is at most one record per service name.
type Credential struct {
	ID      uint
	Service Service
	// AccessToken is the opaque bearer token used against the service API
	AccessToken string
	// RefreshToken is only used by the Instagram token refresh flow
	RefreshToken string
	// BusinessID is the service-side business identifier, when known
	BusinessID string
	// InstagramBusinessAccountID is required for the Instagram media endpoint
	InstagramBusinessAccountID string
	// GoogleLocationName is the resource name of the reviewed location,
	// e.g. "accounts/123/locations/456"
	GoogleLocationName string
	// LastSyncedAt records when a sync pass last ran for this service,
	// regardless of how many items it brought in
	LastSyncedAt *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CredentialUpdate is a partial credential write with merge semantics:
// nil fields leave the stored value untouched.
type CredentialUpdate struct {
	Service                    Service
	AccessToken                *string
	RefreshToken               *string
	BusinessID                 *string
	InstagramBusinessAccountID *string
	GoogleLocationName         *string
	LastSyncedAt               *time.Time
	IsActive                   *bool
}
