package social

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

// MockCredentialRepository is a mock implementation of social.CredentialRepository
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) Get(ctx context.Context, service social.Service) (*social.Credential, error) {
	args := m.Called(ctx, service)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Credential), args.Error(1)
}

func (m *MockCredentialRepository) Upsert(ctx context.Context, update social.CredentialUpdate) (*social.Credential, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Credential), args.Error(1)
}

// MockReviewRepository is a mock implementation of social.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Upsert(ctx context.Context, review *social.Review) (*social.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Review), args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, limit int) ([]social.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]social.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, externalID string) error {
	args := m.Called(ctx, externalID)
	return args.Error(0)
}

// MockPostRepository is a mock implementation of social.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Upsert(ctx context.Context, post *social.Post) (*social.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit int) ([]social.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]social.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, externalID string) error {
	args := m.Called(ctx, externalID)
	return args.Error(0)
}

// MockGoogleConnector is a mock implementation of social.GoogleConnector
type MockGoogleConnector struct {
	mock.Mock
}

func (m *MockGoogleConnector) ValidateToken(ctx context.Context, token string) bool {
	args := m.Called(ctx, token)
	return args.Bool(0)
}

func (m *MockGoogleConnector) AccountInfo(ctx context.Context, token string) *social.GoogleAccountInfo {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*social.GoogleAccountInfo)
}

func (m *MockGoogleConnector) FetchReviews(ctx context.Context, token, locationName string, limit int) []social.Review {
	args := m.Called(ctx, token, locationName, limit)
	return args.Get(0).([]social.Review)
}

// MockInstagramConnector is a mock implementation of social.InstagramConnector
type MockInstagramConnector struct {
	mock.Mock
}

func (m *MockInstagramConnector) ValidateToken(ctx context.Context, token string) bool {
	args := m.Called(ctx, token)
	return args.Bool(0)
}

func (m *MockInstagramConnector) BusinessAccountID(ctx context.Context, token string) string {
	args := m.Called(ctx, token)
	return args.String(0)
}

func (m *MockInstagramConnector) AccountInfo(ctx context.Context, token string) *social.InstagramAccountInfo {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*social.InstagramAccountInfo)
}

func (m *MockInstagramConnector) FetchPosts(ctx context.Context, token, accountID string, limit int) []social.Post {
	args := m.Called(ctx, token, accountID, limit)
	return args.Get(0).([]social.Post)
}

func (m *MockInstagramConnector) ResolveMediaURL(ctx context.Context, token, mediaID string) string {
	args := m.Called(ctx, token, mediaID)
	return args.String(0)
}

func (m *MockInstagramConnector) RefreshAccessToken(ctx context.Context, refreshToken string) string {
	args := m.Called(ctx, refreshToken)
	return args.String(0)
}
