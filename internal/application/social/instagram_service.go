package social

import (
	"context"

	"go.uber.org/zap"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

// InstagramService drives the Instagram integration: credential management,
// the post sync pass, token refresh, and the public posts feed.
type InstagramService struct {
	credentials social.CredentialRepository
	posts       social.PostRepository
	connector   social.InstagramConnector
	logger      *zap.Logger
}

// NewInstagramService creates a new InstagramService
func NewInstagramService(
	credentials social.CredentialRepository,
	posts social.PostRepository,
	connector social.InstagramConnector,
	logger *zap.Logger,
) *InstagramService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstagramService{
		credentials: credentials,
		posts:       posts,
		connector:   connector,
		logger:      logger,
	}
}

// Configure validates the token upstream and stores the credential. When no
// business account ID is supplied it is resolved from the token.
func (s *InstagramService) Configure(ctx context.Context, input ConfigureInstagramInput) (*SettingsDTO, error) {
	if input.AccessToken == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Instagram access token is required")
	}
	if !s.connector.ValidateToken(ctx, input.AccessToken) {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid Instagram access token")
	}

	accountID := input.BusinessAccountID
	if accountID == "" {
		accountID = s.connector.BusinessAccountID(ctx, input.AccessToken)
		if accountID == "" {
			return nil, shared.NewDomainError("INVALID_TOKEN", "Could not resolve Instagram business account ID")
		}
	}

	active := true
	update := social.CredentialUpdate{
		Service:                    social.ServiceInstagram,
		AccessToken:                &input.AccessToken,
		InstagramBusinessAccountID: &accountID,
		IsActive:                   &active,
	}
	if input.RefreshToken != "" {
		update.RefreshToken = &input.RefreshToken
	}

	cred, err := s.credentials.Upsert(ctx, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("instagram integration configured",
		zap.String("business_account_id", cred.InstagramBusinessAccountID))
	return settingsFromCredential(cred), nil
}

// Settings returns the sanitized credential view, or shared.ErrNotFound
func (s *InstagramService) Settings(ctx context.Context) (*SettingsDTO, error) {
	cred, err := s.credentials.Get(ctx, social.ServiceInstagram)
	if err != nil {
		return nil, err
	}
	return settingsFromCredential(cred), nil
}

// Disable turns the integration off without discarding its tokens
func (s *InstagramService) Disable(ctx context.Context) (*SettingsDTO, error) {
	inactive := false
	cred, err := s.credentials.Upsert(ctx, social.CredentialUpdate{
		Service:  social.ServiceInstagram,
		IsActive: &inactive,
	})
	if err != nil {
		return nil, err
	}
	return settingsFromCredential(cred), nil
}

// AccountInfo returns the profile behind the stored token
func (s *InstagramService) AccountInfo(ctx context.Context) (*social.InstagramAccountInfo, error) {
	cred, err := s.credentials.Get(ctx, social.ServiceInstagram)
	if err != nil {
		return nil, err
	}
	if cred.AccessToken == "" {
		return nil, shared.NewDomainError("NOT_CONFIGURED", "Instagram integration not configured or inactive")
	}

	info := s.connector.AccountInfo(ctx, cred.AccessToken)
	if info == nil {
		return nil, shared.NewDomainError("UPSTREAM_UNAVAILABLE", "Could not load Instagram account info")
	}
	return info, nil
}

// RefreshToken exchanges the stored refresh token for a fresh access token
// and persists it.
func (s *InstagramService) RefreshToken(ctx context.Context) (*SettingsDTO, error) {
	cred, err := s.credentials.Get(ctx, social.ServiceInstagram)
	if err != nil {
		return nil, err
	}
	if cred.RefreshToken == "" {
		return nil, shared.NewDomainError("NOT_CONFIGURED", "Missing Instagram refresh token")
	}

	token := s.connector.RefreshAccessToken(ctx, cred.RefreshToken)
	if token == "" {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Could not refresh Instagram access token")
	}

	updated, err := s.credentials.Upsert(ctx, social.CredentialUpdate{
		Service:     social.ServiceInstagram,
		AccessToken: &token,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("instagram access token refreshed")
	return settingsFromCredential(updated), nil
}

// Sync runs one post sync pass and reports its outcome. Video and carousel
// posts whose listing omitted media_url get a second lookup per item.
func (s *InstagramService) Sync(ctx context.Context) social.Outcome {
	return runSync(ctx, s.credentials, s.logger, syncJob[social.Post]{
		service:       social.ServiceInstagram,
		notConfigured: "Instagram integration not configured or inactive",
		missingFields: "Missing Instagram access token or business account ID",
		emptyNote:     "No posts found on Instagram account",
		ready: func(cred *social.Credential) bool {
			return cred.AccessToken != "" && cred.InstagramBusinessAccountID != ""
		},
		fetch: func(ctx context.Context, cred *social.Credential) []social.Post {
			return s.connector.FetchPosts(ctx, cred.AccessToken, cred.InstagramBusinessAccountID, social.PostSyncPageSize)
		},
		store: func(ctx context.Context, cred *social.Credential, post social.Post) error {
			if post.MediaURL == "" && post.MediaType.NeedsResolvedURL() {
				post.MediaURL = s.connector.ResolveMediaURL(ctx, cred.AccessToken, post.ExternalID)
			}
			_, err := s.posts.Upsert(ctx, &post)
			return err
		},
		itemID: func(post social.Post) string {
			return post.ExternalID
		},
	})
}

// Posts returns the public feed of cached posts
func (s *InstagramService) Posts(ctx context.Context, limit int) ([]PostDTO, error) {
	posts, err := s.posts.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]PostDTO, len(posts))
	for i, post := range posts {
		dtos[i] = postToDTO(post)
	}
	return dtos, nil
}

// DeletePost removes a cached post by its Instagram media ID
func (s *InstagramService) DeletePost(ctx context.Context, externalID string) error {
	return s.posts.Delete(ctx, externalID)
}
