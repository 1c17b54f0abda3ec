package social

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

func activeInstagramCredential() *social.Credential {
	return &social.Credential{
		ID:                         2,
		Service:                    social.ServiceInstagram,
		AccessToken:                "ig-token",
		RefreshToken:               "ig-refresh",
		InstagramBusinessAccountID: "17841400000000001",
		IsActive:                   true,
	}
}

func instagramPost(id string, mediaType social.MediaType, mediaURL string) social.Post {
	postedAt := time.Now()
	return social.Post{
		ExternalID: id,
		MediaType:  mediaType,
		MediaURL:   mediaURL,
		PostedAt:   &postedAt,
	}
}

func TestInstagramService_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an upstream-invalid token and persists nothing", func(t *testing.T) {
		creds := new(MockCredentialRepository)
		connector := new(MockInstagramConnector)
		connector.On("ValidateToken", ctx, "bad-token").Return(false)

		service := NewInstagramService(creds, new(MockPostRepository), connector, nil)
		settings, err := service.Configure(ctx, ConfigureInstagramInput{AccessToken: "bad-token"})

		assert.Nil(t, settings)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Invalid Instagram access token", domainErr.Message)
		creds.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("resolves the business account id when omitted", func(t *testing.T) {
		creds := new(MockCredentialRepository)
		connector := new(MockInstagramConnector)
		connector.On("ValidateToken", ctx, "ig-token").Return(true)
		connector.On("BusinessAccountID", ctx, "ig-token").Return("17841400000000001")
		creds.On("Upsert", ctx, mock.MatchedBy(func(u social.CredentialUpdate) bool {
			return u.InstagramBusinessAccountID != nil && *u.InstagramBusinessAccountID == "17841400000000001"
		})).Return(activeInstagramCredential(), nil)

		service := NewInstagramService(creds, new(MockPostRepository), connector, nil)
		settings, err := service.Configure(ctx, ConfigureInstagramInput{AccessToken: "ig-token"})

		require.NoError(t, err)
		assert.Equal(t, "17841400000000001", settings.InstagramBusinessAccountID)
		creds.AssertExpectations(t)
	})

	t.Run("keeps an explicitly provided account id", func(t *testing.T) {
		creds := new(MockCredentialRepository)
		connector := new(MockInstagramConnector)
		connector.On("ValidateToken", ctx, "ig-token").Return(true)
		creds.On("Upsert", ctx, mock.MatchedBy(func(u social.CredentialUpdate) bool {
			return u.InstagramBusinessAccountID != nil && *u.InstagramBusinessAccountID == "custom-id"
		})).Return(activeInstagramCredential(), nil)

		service := NewInstagramService(creds, new(MockPostRepository), connector, nil)
		_, err := service.Configure(ctx, ConfigureInstagramInput{
			AccessToken:       "ig-token",
			BusinessAccountID: "custom-id",
		})

		require.NoError(t, err)
		connector.AssertNotCalled(t, "BusinessAccountID", mock.Anything, mock.Anything)
	})
}

func TestInstagramService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("fails when the integration is not configured", func(t *testing.T) {
		creds := new(MockCredentialRepository)
		creds.On("Get", ctx, social.ServiceInstagram).Return(nil, shared.ErrNotFound)

		service := NewInstagramService(creds, new(MockPostRepository), new(MockInstagramConnector), nil)
		outcome := service.Sync(ctx)

		assert.False(t, outcome.Success)
		assert.Equal(t, "Instagram integration not configured or inactive", outcome.Message)
	})

	t.Run("fails when the business account id is missing", func(t *testing.T) {
		cred := activeInstagramCredential()
		cred.InstagramBusinessAccountID = ""

		creds := new(MockCredentialRepository)
		creds.On("Get", ctx, social.ServiceInstagram).Return(cred, nil)

		service := NewInstagramService(creds, new(MockPostRepository), new(MockInstagramConnector), nil)
		outcome := service.Sync(ctx)

		assert.False(t, outcome.Success)
		assert.Equal(t, "Missing Instagram access token or business account ID", outcome.Message)
	})

	t.Run("an empty fetch succeeds with a note and still records the sync time", func(t *testing.T) {
		creds := new(MockCredentialRepository)
		creds.On("Get", ctx, social.ServiceInstagram).Return(activeInstagramCredential(), nil)
		creds.On("Upsert", ctx, mock.MatchedBy(func(u social.CredentialUpdate) bool {
			return u.Service == social.ServiceInstagram && u.LastSyncedAt != nil
		})).Return(activeInstagramCredential(), nil)

		connector := new(MockInstagramConnector)
		connector.On("FetchPosts", ctx, "ig-token", "17841400000000001", social.PostSyncPageSize).
			Return([]social.Post{})

		service := NewInstagramService(creds, new(MockPostRepository), connector, nil)
		outcome := service.Sync(ctx)

		assert.True(t, outcome.Success)
		assert.Equal(t, 0, outcome.Synced)
		assert.Equal(t, "No posts found on Instagram account", outcome.Message)
		creds.AssertExpectations(t)
	})

	t.Run("resolves media URLs for videos and carousels that lack one", func(t *testing.T) {
		posts := []social.Post{
			instagramPost("ig-1", social.MediaTypeImage, "https://cdn.example.com/a.jpg"),
			instagramPost("ig-2", social.MediaTypeVideo, ""),
			instagramPost("ig-3", social.MediaTypeCarousel, ""),
		}

		creds := new(MockCredentialRepository)
		creds.On("Get", ctx, social.ServiceInstagram).Return(activeInstagramCredential(), nil)
		creds.On("Upsert", ctx, mock.Anything).Return(activeInstagramCredential(), nil)

		connector := new(MockInstagramConnector)
		connector.On("FetchPosts", ctx, "ig-token", "17841400000000001", social.PostSyncPageSize).
			Return(posts)
		connector.On("ResolveMediaURL", ctx, "ig-token", "ig-2").Return("https://cdn.example.com/clip.mp4")
		connector.On("ResolveMediaURL", ctx, "ig-token", "ig-3").Return("https://cdn.example.com/album.jpg")

		postRepo := new(MockPostRepository)
		stored := make(map[string]string)
		postRepo.On("Upsert", ctx, mock.Anything).Run(func(args mock.Arguments) {
			post := args.Get(1).(*social.Post)
			stored[post.ExternalID] = post.MediaURL
		}).Return(&social.Post{}, nil)

		service := NewInstagramService(creds, postRepo, connector, nil)
		outcome := service.Sync(ctx)

		assert.True(t, outcome.Success)
		assert.Equal(t, 3, outcome.Synced)
		assert.Equal(t, "https://cdn.example.com/a.jpg", stored["ig-1"])
		assert.Equal(t, "https://cdn.example.com/clip.mp4", stored["ig-2"])
		assert.Equal(t, "https://cdn.example.com/album.jpg", stored["ig-3"])
		// Image posts with a URL never trigger a second lookup.
		connector.AssertNotCalled(t, "ResolveMediaURL", ctx, "ig-token", "ig-1")
	})

	t.Run("a failed item is skipped without aborting the pass", func(t *testing.T) {
		posts := []social.Post{
			instagramPost("ig-1", social.MediaTypeImage, "u1"),
			instagramPost("", social.MediaTypeImage, "u2"),
		}

		creds := new(MockCredentialRepository)
		creds.On("Get", ctx, social.ServiceInstagram).Return(activeInstagramCredential(), nil)
		creds.On("Upsert", ctx, mock.Anything).Return(activeInstagramCredential(), nil)

		connector := new(MockInstagramConnector)
		connector.On("FetchPosts", ctx, "ig-token", "17841400000000001", social.PostSyncPageSize).
			Return(posts)

		postRepo := new(MockPostRepository)
		postRepo.On("Upsert", ctx, mock.MatchedBy(func(p *social.Post) bool { return p.ExternalID == "" })).
			Return(nil, shared.NewDomainError("INVALID_INPUT", "Instagram media ID is required"))
		postRepo.On("Upsert", ctx, mock.MatchedBy(func(p *social.Post) bool { return p.ExternalID != "" })).
			Return(&social.Post{}, nil)

		service := NewInstagramService(creds, postRepo, connector, nil)
		outcome := service.Sync(ctx)

		assert.True(t, outcome.Success)
		assert.Equal(t, 1, outcome.Synced)
	})
}

func TestInstagramService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the refreshed token", func(t *testing.T) {
		creds := new(MockCredentialRepository)
		creds.On("Get", ctx, social.ServiceInstagram).Return(activeInstagramCredential(), nil)
		creds.On("Upsert", ctx, mock.MatchedBy(func(u social.CredentialUpdate) bool {
			return u.AccessToken != nil && *u.AccessToken == "fresh-token"
		})).Return(activeInstagramCredential(), nil)

		connector := new(MockInstagramConnector)
		connector.On("RefreshAccessToken", ctx, "ig-refresh").Return("fresh-token")

		service := NewInstagramService(creds, new(MockPostRepository), connector, nil)
		_, err := service.RefreshToken(ctx)

		require.NoError(t, err)
		creds.AssertExpectations(t)
	})

	t.Run("fails without a stored refresh token", func(t *testing.T) {
		cred := activeInstagramCredential()
		cred.RefreshToken = ""

		creds := new(MockCredentialRepository)
		creds.On("Get", ctx, social.ServiceInstagram).Return(cred, nil)

		service := NewInstagramService(creds, new(MockPostRepository), new(MockInstagramConnector), nil)
		_, err := service.RefreshToken(ctx)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Contains(t, domainErr.Message, "Missing")
	})
}

func TestInstagramService_Posts(t *testing.T) {
	ctx := context.Background()

	postRepo := new(MockPostRepository)
	postRepo.On("List", ctx, 12).Return([]social.Post{
		instagramPost("ig-1", social.MediaTypeImage, "u1"),
	}, nil)

	service := NewInstagramService(new(MockCredentialRepository), postRepo, new(MockInstagramConnector), nil)
	posts, err := service.Posts(ctx, 12)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "ig-1", posts[0].InstagramID)
	assert.Equal(t, "IMAGE", posts[0].MediaType)
}

func TestInstagramService_Settings_Sanitized(t *testing.T) {
	ctx := context.Background()

	creds := new(MockCredentialRepository)
	creds.On("Get", ctx, social.ServiceInstagram).Return(activeInstagramCredential(), nil)

	service := NewInstagramService(creds, new(MockPostRepository), new(MockInstagramConnector), nil)
	settings, err := service.Settings(ctx)

	require.NoError(t, err)
	assert.True(t, settings.HasAccessToken)
	assert.True(t, settings.HasRefreshToken)
	assert.Equal(t, "instagram", settings.Service)
}
