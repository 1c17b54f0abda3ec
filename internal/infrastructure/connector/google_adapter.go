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

// maxResponseSize is the maximum allowed response size from either API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Ensure GoogleAdapter implements social.GoogleConnector
var _ social.GoogleConnector = (*GoogleAdapter)(nil)

// GoogleAdapter implements social.GoogleConnector against the Google
// Business Profile REST APIs. Every outbound failure is logged and folded
// into the method's zero result; callers never see transport errors.
type GoogleAdapter struct {
	config     *GoogleConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGoogleAdapter creates a new Google Business Profile adapter
func NewGoogleAdapter(config *GoogleConfig, logger *zap.Logger) (*GoogleAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GoogleAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

// ValidateToken returns true iff the accounts listing succeeds and the
// response carries the accounts field, even as an empty array.
func (a *GoogleAdapter) ValidateToken(ctx context.Context, token string) bool {
	resp, err := a.listAccounts(ctx, token)
	if err != nil {
		a.logger.Warn("google token validation failed", zap.Error(err))
		return false
	}
	return resp.Accounts != nil
}

// AccountInfo resolves the first account on the credential together with
// its locations. Multi-account credentials are not supported; accounts
// after the first are ignored.
func (a *GoogleAdapter) AccountInfo(ctx context.Context, token string) *social.GoogleAccountInfo {
	resp, err := a.listAccounts(ctx, token)
	if err != nil {
		a.logger.Warn("google account lookup failed", zap.Error(err))
		return nil
	}
	if resp.Accounts == nil || len(*resp.Accounts) == 0 {
		return nil
	}

	account := (*resp.Accounts)[0]
	info := &social.GoogleAccountInfo{
		AccountID:   account.AccountID,
		AccountName: account.Name,
		Locations:   []social.GoogleLocation{},
	}

	locationsURL := fmt.Sprintf("%s/%s/locations", a.config.BusinessAPIBaseURL, account.Name)
	body, err := a.doGet(ctx, locationsURL, token, nil)
	if err != nil {
		a.logger.Warn("google locations lookup failed",
			zap.String("account", account.Name), zap.Error(err))
		return nil
	}

	var locations googleLocationsResponse
	if err := json.Unmarshal(body, &locations); err != nil {
		a.logger.Warn("google locations response malformed", zap.Error(err))
		return nil
	}

	for _, location := range locations.Locations {
		info.Locations = append(info.Locations, location.toDomain())
	}
	return info
}

// FetchReviews returns up to limit reviews for a location ordered by
// update time descending. Any failure yields an empty slice.
func (a *GoogleAdapter) FetchReviews(ctx context.Context, token, locationName string, limit int) []social.Review {
	if limit <= 0 {
		limit = social.ReviewSyncPageSize
	}

	reviewsURL := fmt.Sprintf("%s/%s/reviews", a.config.ReviewsAPIBaseURL, locationName)
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("orderBy", "updateTime desc")

	body, err := a.doGet(ctx, reviewsURL, token, params)
	if err != nil {
		a.logger.Warn("google reviews fetch failed",
			zap.String("location", locationName), zap.Error(err))
		return []social.Review{}
	}

	var resp googleReviewsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		a.logger.Warn("google reviews response malformed", zap.Error(err))
		return []social.Review{}
	}

	reviews := make([]social.Review, 0, len(resp.Reviews))
	for _, payload := range resp.Reviews {
		reviews = append(reviews, payload.toDomain())
	}
	return reviews
}

func (a *GoogleAdapter) listAccounts(ctx context.Context, token string) (*googleAccountsResponse, error) {
	body, err := a.doGet(ctx, a.config.BusinessAPIBaseURL+"/accounts", token, nil)
	if err != nil {
		return nil, err
	}

	var resp googleAccountsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("google: failed to parse accounts response: %w", err)
	}
	return &resp, nil
}

func (a *GoogleAdapter) doGet(ctx context.Context, rawURL, token string, params url.Values) ([]byte, error) {
	if len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("google: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("google: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("google: HTTP %d", resp.StatusCode)
	}

	return body, nil
}
