package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

func upstreamReview(id string, rating int, reviewedAt time.Time) social.Review {
	return social.Review{
		ExternalID:      id,
		AuthorName:      "Reviewer " + id,
		Rating:          rating,
		Comment:         "Great work",
		ReviewedAt:      reviewedAt,
		ReviewUpdatedAt: reviewedAt,
	}
}

func TestIntegrationHandler_GoogleReviewsEndToEnd(t *testing.T) {
	app := setupTestApp(t)
	token := app.login(t)

	// configure with a token the upstream accepts
	app.google.valid = true
	w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/google-business/settings", token, gin.H{
		"accessToken":  "t",
		"locationName": "loc1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	settings := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, true, settings["isActive"])
	assert.Equal(t, true, settings["hasAccessToken"])
	assert.Equal(t, "loc1", settings["googleLocationName"])

	// upstream holds three reviews rated 5, 4, 5
	now := time.Now().UTC().Truncate(time.Second)
	app.google.reviews = []social.Review{
		upstreamReview("r1", 5, now),
		upstreamReview("r2", 4, now.Add(-time.Hour)),
		upstreamReview("r3", 5, now.Add(-2*time.Hour)),
	}

	w = app.do(t, http.MethodPost, "/api/v1/admin/integrations/google-business/sync", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	outcome := decodeBody(t, w)
	assert.Equal(t, true, outcome["success"])
	assert.Equal(t, float64(3), outcome["synced"])

	// the public feed now serves the cached reviews with aggregates
	w = app.do(t, http.MethodGet, "/api/v1/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	feed := decodeBody(t, w)
	assert.Equal(t, true, feed["success"])
	assert.Equal(t, 4.7, feed["averageRating"])

	distribution := feed["ratingDistribution"].(map[string]any)
	assert.Equal(t, float64(0), distribution["1"])
	assert.Equal(t, float64(0), distribution["2"])
	assert.Equal(t, float64(0), distribution["3"])
	assert.Equal(t, float64(1), distribution["4"])
	assert.Equal(t, float64(2), distribution["5"])

	reviews := feed["data"].([]any)
	require.Len(t, reviews, 3)
	first := reviews[0].(map[string]any)
	assert.Equal(t, "r1", first["googleReviewId"])
}

func TestIntegrationHandler_FeedLimit(t *testing.T) {
	app := setupTestApp(t)
	token := app.login(t)

	app.google.valid = true
	w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/google-business/settings", token, gin.H{
		"accessToken":  "t",
		"locationName": "loc1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	now := time.Now().UTC()
	app.google.reviews = []social.Review{
		upstreamReview("r1", 5, now),
		upstreamReview("r2", 4, now.Add(-time.Hour)),
		upstreamReview("r3", 5, now.Add(-2*time.Hour)),
	}
	w = app.do(t, http.MethodPost, "/api/v1/admin/integrations/google-business/sync", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("caps the feed at the requested limit", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/v1/reviews?limit=2", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		feed := decodeBody(t, w)
		reviews := feed["data"].([]any)
		require.Len(t, reviews, 2)
		assert.Equal(t, "r1", reviews[0].(map[string]any)["googleReviewId"])
	})

	t.Run("rejects limits above fifty", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/v1/reviews?limit=51", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects negative limits", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/v1/reviews?limit=-1", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("posts feed honors the limit too", func(t *testing.T) {
		app.instagram.valid = true
		app.instagram.accountID = "178414"
		w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/instagram/settings", token, gin.H{
			"accessToken": "ig-token",
		})
		require.Equal(t, http.StatusOK, w.Code)

		posted := time.Now().UTC()
		earlier := posted.Add(-time.Hour)
		app.instagram.posts = []social.Post{
			{ExternalID: "m1", MediaType: social.MediaTypeImage, MediaURL: "https://cdn.example.com/m1.jpg", PostedAt: &posted},
			{ExternalID: "m2", MediaType: social.MediaTypeImage, MediaURL: "https://cdn.example.com/m2.jpg", PostedAt: &earlier},
		}
		w = app.do(t, http.MethodPost, "/api/v1/admin/integrations/instagram/sync", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = app.do(t, http.MethodGet, "/api/v1/instagram/posts?limit=1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		postsData := decodeBody(t, w)["data"].([]any)
		require.Len(t, postsData, 1)
		assert.Equal(t, "m1", postsData[0].(map[string]any)["instagramId"])
	})
}

func TestIntegrationHandler_Configure(t *testing.T) {
	t.Run("rejects upstream-invalid tokens with 400", func(t *testing.T) {
		app := setupTestApp(t)
		token := app.login(t)

		app.google.valid = false
		w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/google-business/settings", token, gin.H{
			"accessToken": "bad-token",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		errInfo := body["error"].(map[string]any)
		assert.Contains(t, errInfo["message"], "Invalid Google access token")

		// nothing was persisted; settings still report not configured
		w = app.do(t, http.MethodGet, "/api/v1/admin/integrations/google-business/settings", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects unknown services with 400", func(t *testing.T) {
		app := setupTestApp(t)
		token := app.login(t)

		w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/yelp/settings", token, gin.H{
			"accessToken": "t",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("resolves the Instagram business account ID when omitted", func(t *testing.T) {
		app := setupTestApp(t)
		token := app.login(t)

		app.instagram.valid = true
		app.instagram.accountID = "178414"

		w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/instagram/settings", token, gin.H{
			"accessToken": "ig-token",
		})
		require.Equal(t, http.StatusOK, w.Code)

		settings := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "178414", settings["instagramBusinessAccountId"])
	})

	t.Run("requires authentication", func(t *testing.T) {
		app := setupTestApp(t)

		w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/google-business/settings", "", gin.H{
			"accessToken": "t",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestIntegrationHandler_Sync(t *testing.T) {
	t.Run("unconfigured instagram reports failure in the outcome", func(t *testing.T) {
		app := setupTestApp(t)
		token := app.login(t)

		w := app.do(t, http.MethodPost, "/api/v1/admin/integrations/instagram/sync", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		outcome := decodeBody(t, w)
		assert.Equal(t, false, outcome["success"])
		assert.Contains(t, outcome["error"], "not configured")
	})

	t.Run("instagram sync fills the public posts feed", func(t *testing.T) {
		app := setupTestApp(t)
		token := app.login(t)

		app.instagram.valid = true
		app.instagram.accountID = "178414"
		w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/instagram/settings", token, gin.H{
			"accessToken": "ig-token",
		})
		require.Equal(t, http.StatusOK, w.Code)

		posted := time.Now().UTC().Add(-time.Hour)
		app.instagram.posts = []social.Post{
			{
				ExternalID: "m1",
				Caption:    "Fresh paint job",
				MediaType:  social.MediaTypeImage,
				MediaURL:   "https://cdn.example.com/m1.jpg",
				Permalink:  "https://instagram.com/p/m1",
				PostedAt:   &posted,
				LikeCount:  12,
			},
		}

		w = app.do(t, http.MethodPost, "/api/v1/admin/integrations/instagram/sync", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		outcome := decodeBody(t, w)
		assert.Equal(t, true, outcome["success"])
		assert.Equal(t, float64(1), outcome["synced"])

		w = app.do(t, http.MethodGet, "/api/v1/instagram/posts", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		postsData := body["data"].([]any)
		require.Len(t, postsData, 1)
		post := postsData[0].(map[string]any)
		assert.Equal(t, "m1", post["instagramId"])
		assert.Equal(t, "Fresh paint job", post["caption"])
	})
}

func TestIntegrationHandler_Disable(t *testing.T) {
	app := setupTestApp(t)
	token := app.login(t)

	app.google.valid = true
	w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/google-business/settings", token, gin.H{
		"accessToken":  "t",
		"locationName": "loc1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/admin/integrations/google-business/disable", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	settings := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, false, settings["isActive"])
	// tokens survive the disable
	assert.Equal(t, true, settings["hasAccessToken"])
}

func TestIntegrationHandler_DeleteReview(t *testing.T) {
	app := setupTestApp(t)
	token := app.login(t)

	app.google.valid = true
	w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/google-business/settings", token, gin.H{
		"accessToken":  "t",
		"locationName": "loc1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	app.google.reviews = []social.Review{upstreamReview("r1", 5, time.Now().UTC())}
	w = app.do(t, http.MethodPost, "/api/v1/admin/integrations/google-business/sync", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodDelete, "/api/v1/admin/reviews/r1", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed := decodeBody(t, w)
	assert.Empty(t, feed["data"])

	// deleting again reports not found
	w = app.do(t, http.MethodDelete, "/api/v1/admin/reviews/r1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegrationHandler_RefreshToken(t *testing.T) {
	app := setupTestApp(t)
	token := app.login(t)

	app.instagram.valid = true
	app.instagram.accountID = "178414"
	w := app.do(t, http.MethodPut, "/api/v1/admin/integrations/instagram/settings", token, gin.H{
		"accessToken":  "ig-token",
		"refreshToken": "ig-refresh",
	})
	require.Equal(t, http.StatusOK, w.Code)

	app.instagram.freshToken = "ig-token-2"
	w = app.do(t, http.MethodPost, "/api/v1/admin/integrations/instagram/refresh-token", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	settings := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, true, settings["hasAccessToken"])

	// google has no refresh flow
	w = app.do(t, http.MethodPost, "/api/v1/admin/integrations/google-business/refresh-token", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
