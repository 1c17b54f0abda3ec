package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

// Ensure InstagramAdapter implements social.InstagramConnector
var _ social.InstagramConnector = (*InstagramAdapter)(nil)

// InstagramAdapter implements social.InstagramConnector against the
// Instagram Graph API. Like the Google adapter it swallows outbound
// failures: every error is logged and the method returns its zero result.
type InstagramAdapter struct {
	config     *InstagramConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewInstagramAdapter creates a new Instagram Graph API adapter
func NewInstagramAdapter(config *InstagramConfig, logger *zap.Logger) (*InstagramAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &InstagramAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

// ValidateToken returns true iff the identity endpoint returns an id
func (a *InstagramAdapter) ValidateToken(ctx context.Context, token string) bool {
	return a.BusinessAccountID(ctx, token) != ""
}

// BusinessAccountID returns the business account id behind the token, or
// "" on any error.
func (a *InstagramAdapter) BusinessAccountID(ctx context.Context, token string) string {
	params := url.Values{}
	params.Set("fields", "id,username")
	params.Set("access_token", token)

	body, err := a.doGet(ctx, a.config.APIBaseURL+"/me", params)
	if err != nil {
		a.logger.Warn("instagram account id lookup failed", zap.Error(err))
		return ""
	}

	var profile instagramProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		a.logger.Warn("instagram profile response malformed", zap.Error(err))
		return ""
	}
	return profile.ID
}

// AccountInfo returns the full account profile, or nil on any error
func (a *InstagramAdapter) AccountInfo(ctx context.Context, token string) *social.InstagramAccountInfo {
	params := url.Values{}
	params.Set("fields", "id,username,name,biography,website,profile_picture_url")
	params.Set("access_token", token)

	body, err := a.doGet(ctx, a.config.APIBaseURL+"/me", params)
	if err != nil {
		a.logger.Warn("instagram account info lookup failed", zap.Error(err))
		return nil
	}

	var profile instagramProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		a.logger.Warn("instagram profile response malformed", zap.Error(err))
		return nil
	}

	return &social.InstagramAccountInfo{
		ID:                profile.ID,
		Username:          profile.Username,
		Name:              profile.Name,
		Biography:         profile.Biography,
		Website:           profile.Website,
		ProfilePictureURL: profile.ProfilePictureURL,
	}
}

// FetchPosts returns up to limit media posts for a business account.
// Any failure yields an empty slice.
func (a *InstagramAdapter) FetchPosts(ctx context.Context, token, accountID string, limit int) []social.Post {
	if limit <= 0 {
		limit = social.PostSyncPageSize
	}

	params := url.Values{}
	params.Set("fields", "id,caption,media_type,media_url,permalink,timestamp,like_count,comments_count")
	params.Set("access_token", token)
	params.Set("limit", strconv.Itoa(limit))

	body, err := a.doGet(ctx, fmt.Sprintf("%s/%s/media", a.config.APIBaseURL, accountID), params)
	if err != nil {
		a.logger.Warn("instagram media fetch failed",
			zap.String("account_id", accountID), zap.Error(err))
		return []social.Post{}
	}

	var resp instagramMediaListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		a.logger.Warn("instagram media response malformed", zap.Error(err))
		return []social.Post{}
	}

	posts := make([]social.Post, 0, len(resp.Data))
	for _, payload := range resp.Data {
		posts = append(posts, payload.toDomain())
	}
	return posts
}

// ResolveMediaURL queries a single media item for its URL, preferring the
// first video variant over the plain media_url. Returns "" when nothing
// can be resolved.
func (a *InstagramAdapter) ResolveMediaURL(ctx context.Context, token, mediaID string) string {
	params := url.Values{}
	params.Set("fields", "media_url,video_data")
	params.Set("access_token", token)

	body, err := a.doGet(ctx, fmt.Sprintf("%s/%s", a.config.APIBaseURL, mediaID), params)
	if err != nil {
		a.logger.Warn("instagram media url lookup failed",
			zap.String("media_id", mediaID), zap.Error(err))
		return ""
	}

	var detail instagramMediaDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		a.logger.Warn("instagram media detail malformed", zap.Error(err))
		return ""
	}

	if len(detail.VideoData) > 0 {
		return detail.VideoData[0]
	}
	return detail.MediaURL
}

// RefreshAccessToken exchanges a long-lived token for a fresh one, or
// returns "" on any error.
func (a *InstagramAdapter) RefreshAccessToken(ctx context.Context, refreshToken string) string {
	params := url.Values{}
	params.Set("grant_type", "ig_refresh_token")
	params.Set("access_token", refreshToken)

	body, err := a.doGet(ctx, a.config.APIBaseURL+"/refresh_access_token", params)
	if err != nil {
		a.logger.Warn("instagram token refresh failed", zap.Error(err))
		return ""
	}

	var resp instagramRefreshResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		a.logger.Warn("instagram refresh response malformed", zap.Error(err))
		return ""
	}
	return resp.AccessToken
}

func (a *InstagramAdapter) doGet(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	if len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("instagram: failed to create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("instagram: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("instagram: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("instagram: HTTP %d", resp.StatusCode)
	}

	return body, nil
}
