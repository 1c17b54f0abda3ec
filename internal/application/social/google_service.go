package social

import (
	"context"

	"go.uber.org/zap"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

// GoogleService drives the Google Business Profile integration: credential
// management, the review sync pass, and the public reviews feed.
type GoogleService struct {
	credentials social.CredentialRepository
	reviews     social.ReviewRepository
	connector   social.GoogleConnector
	logger      *zap.Logger
}

// NewGoogleService creates a new GoogleService
func NewGoogleService(
	credentials social.CredentialRepository,
	reviews social.ReviewRepository,
	connector social.GoogleConnector,
	logger *zap.Logger,
) *GoogleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoogleService{
		credentials: credentials,
		reviews:     reviews,
		connector:   connector,
		logger:      logger,
	}
}

// Configure validates the token upstream and stores the credential. A
// rejected token persists nothing.
func (s *GoogleService) Configure(ctx context.Context, input ConfigureGoogleInput) (*SettingsDTO, error) {
	if input.AccessToken == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Google access token is required")
	}
	if !s.connector.ValidateToken(ctx, input.AccessToken) {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid Google access token")
	}

	active := true
	update := social.CredentialUpdate{
		Service:     social.ServiceGoogleBusiness,
		AccessToken: &input.AccessToken,
		IsActive:    &active,
	}
	if input.RefreshToken != "" {
		update.RefreshToken = &input.RefreshToken
	}
	if input.LocationName != "" {
		update.GoogleLocationName = &input.LocationName
	}

	cred, err := s.credentials.Upsert(ctx, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("google business integration configured",
		zap.String("location", cred.GoogleLocationName))
	return settingsFromCredential(cred), nil
}

// Settings returns the sanitized credential view, or shared.ErrNotFound
func (s *GoogleService) Settings(ctx context.Context) (*SettingsDTO, error) {
	cred, err := s.credentials.Get(ctx, social.ServiceGoogleBusiness)
	if err != nil {
		return nil, err
	}
	return settingsFromCredential(cred), nil
}

// Disable turns the integration off without discarding its tokens
func (s *GoogleService) Disable(ctx context.Context) (*SettingsDTO, error) {
	inactive := false
	cred, err := s.credentials.Upsert(ctx, social.CredentialUpdate{
		Service:  social.ServiceGoogleBusiness,
		IsActive: &inactive,
	})
	if err != nil {
		return nil, err
	}
	return settingsFromCredential(cred), nil
}

// AccountInfo resolves the stored credential's first account and locations
func (s *GoogleService) AccountInfo(ctx context.Context) (*social.GoogleAccountInfo, error) {
	cred, err := s.credentials.Get(ctx, social.ServiceGoogleBusiness)
	if err != nil {
		return nil, err
	}
	if cred.AccessToken == "" {
		return nil, shared.NewDomainError("NOT_CONFIGURED", "Google Business integration not configured or inactive")
	}

	info := s.connector.AccountInfo(ctx, cred.AccessToken)
	if info == nil {
		return nil, shared.NewDomainError("UPSTREAM_UNAVAILABLE", "Could not load Google Business account info")
	}
	return info, nil
}

// Sync runs one review sync pass and reports its outcome
func (s *GoogleService) Sync(ctx context.Context) social.Outcome {
	return runSync(ctx, s.credentials, s.logger, syncJob[social.Review]{
		service:       social.ServiceGoogleBusiness,
		notConfigured: "Google Business integration not configured or inactive",
		missingFields: "Missing Google Business access token or location name",
		emptyNote:     "No reviews found on Google Business profile",
		ready: func(cred *social.Credential) bool {
			return cred.AccessToken != "" && cred.GoogleLocationName != ""
		},
		fetch: func(ctx context.Context, cred *social.Credential) []social.Review {
			return s.connector.FetchReviews(ctx, cred.AccessToken, cred.GoogleLocationName, social.ReviewSyncPageSize)
		},
		store: func(ctx context.Context, _ *social.Credential, review social.Review) error {
			_, err := s.reviews.Upsert(ctx, &review)
			return err
		},
		itemID: func(review social.Review) string {
			return review.ExternalID
		},
	})
}

// Reviews returns the public feed: cached reviews plus their aggregates
func (s *GoogleService) Reviews(ctx context.Context, limit int) (*ReviewsFeed, error) {
	reviews, err := s.reviews.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]ReviewDTO, len(reviews))
	for i, review := range reviews {
		dtos[i] = reviewToDTO(review)
	}

	return &ReviewsFeed{
		Reviews:            dtos,
		AverageRating:      social.AverageRating(reviews),
		RatingDistribution: social.RatingDistribution(reviews),
	}, nil
}

// DeleteReview removes a cached review by its Google review ID
func (s *GoogleService) DeleteReview(ctx context.Context, externalID string) error {
	return s.reviews.Delete(ctx, externalID)
}
