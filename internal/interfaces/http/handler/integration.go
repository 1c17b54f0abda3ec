package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appsocial "github.com/helenrojas261991-debug/home-services-florida/internal/application/social"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/middleware"
)

// IntegrationHandler serves the cached review and post feeds and the
// admin endpoints for both integrations.
type IntegrationHandler struct {
	BaseHandler
	google         *appsocial.GoogleService
	instagram      *appsocial.InstagramService
	authMiddleware gin.HandlerFunc
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(
	google *appsocial.GoogleService,
	instagram *appsocial.InstagramService,
	authMiddleware gin.HandlerFunc,
) *IntegrationHandler {
	return &IntegrationHandler{
		google:         google,
		instagram:      instagram,
		authMiddleware: authMiddleware,
	}
}

// ServiceURI binds the :service path parameter
type ServiceURI struct {
	Service string `uri:"service" binding:"required,integrationservice"`
}

// ExternalIDURI binds the :externalID path parameter
type ExternalIDURI struct {
	ExternalID string `uri:"externalID" binding:"required"`
}

// ConfigureRequest carries credentials for either integration.
// LocationName applies to Google Business, BusinessAccountID to
// Instagram.
type ConfigureRequest struct {
	AccessToken       string `json:"accessToken" binding:"required"`
	RefreshToken      string `json:"refreshToken"`
	LocationName      string `json:"locationName"`
	BusinessAccountID string `json:"businessAccountId"`
}

// FeedQuery binds the optional limit on the public feeds. Zero means the
// feed's default page size.
type FeedQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// ReviewsResponse is the public reviews feed
type ReviewsResponse struct {
	Success            bool                  `json:"success"`
	Data               []appsocial.ReviewDTO `json:"data"`
	AverageRating      float64               `json:"averageRating"`
	RatingDistribution map[int]int           `json:"ratingDistribution"`
}

// Reviews serves the cached Google reviews feed
func (h *IntegrationHandler) Reviews(c *gin.Context) {
	var query FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	feed, err := h.google.Reviews(c.Request.Context(), query.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewsResponse{
		Success:            true,
		Data:               feed.Reviews,
		AverageRating:      feed.AverageRating,
		RatingDistribution: feed.RatingDistribution,
	})
}

// Posts serves the cached Instagram posts feed
func (h *IntegrationHandler) Posts(c *gin.Context) {
	var query FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	posts, err := h.instagram.Posts(c.Request.Context(), query.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, posts)
}

// Settings returns the sanitized stored credentials for a service
func (h *IntegrationHandler) Settings(c *gin.Context) {
	service, ok := h.bindService(c)
	if !ok {
		return
	}

	var (
		settings *appsocial.SettingsDTO
		err      error
	)
	if service == social.ServiceGoogleBusiness {
		settings, err = h.google.Settings(c.Request.Context())
	} else {
		settings, err = h.instagram.Settings(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Configure validates and stores credentials for a service
func (h *IntegrationHandler) Configure(c *gin.Context) {
	service, ok := h.bindService(c)
	if !ok {
		return
	}

	var req ConfigureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	var (
		settings *appsocial.SettingsDTO
		err      error
	)
	if service == social.ServiceGoogleBusiness {
		settings, err = h.google.Configure(c.Request.Context(), appsocial.ConfigureGoogleInput{
			AccessToken:  req.AccessToken,
			RefreshToken: req.RefreshToken,
			LocationName: req.LocationName,
		})
	} else {
		settings, err = h.instagram.Configure(c.Request.Context(), appsocial.ConfigureInstagramInput{
			AccessToken:       req.AccessToken,
			RefreshToken:      req.RefreshToken,
			BusinessAccountID: req.BusinessAccountID,
		})
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Sync pulls fresh items from the upstream API into the local cache.
// The outcome always comes back with 200; configuration problems are
// reported in its error field.
func (h *IntegrationHandler) Sync(c *gin.Context) {
	service, ok := h.bindService(c)
	if !ok {
		return
	}

	var outcome social.Outcome
	if service == social.ServiceGoogleBusiness {
		outcome = h.google.Sync(c.Request.Context())
	} else {
		outcome = h.instagram.Sync(c.Request.Context())
	}

	c.JSON(http.StatusOK, outcome)
}

// Disable marks an integration inactive without dropping its tokens
func (h *IntegrationHandler) Disable(c *gin.Context) {
	service, ok := h.bindService(c)
	if !ok {
		return
	}

	var (
		settings *appsocial.SettingsDTO
		err      error
	)
	if service == social.ServiceGoogleBusiness {
		settings, err = h.google.Disable(c.Request.Context())
	} else {
		settings, err = h.instagram.Disable(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Account returns live account details from the upstream API
func (h *IntegrationHandler) Account(c *gin.Context) {
	service, ok := h.bindService(c)
	if !ok {
		return
	}

	if service == social.ServiceGoogleBusiness {
		info, err := h.google.AccountInfo(c.Request.Context())
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, info)
		return
	}

	info, err := h.instagram.AccountInfo(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// RefreshToken exchanges the stored Instagram token for a fresh one.
// Google tokens are refreshed out of band, so only Instagram supports
// this endpoint.
func (h *IntegrationHandler) RefreshToken(c *gin.Context) {
	service, ok := h.bindService(c)
	if !ok {
		return
	}

	if service != social.ServiceInstagram {
		h.BadRequest(c, "Token refresh is only supported for Instagram")
		return
	}

	settings, err := h.instagram.RefreshToken(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// DeleteReview removes a cached review by its Google review ID
func (h *IntegrationHandler) DeleteReview(c *gin.Context) {
	var uri ExternalIDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.google.DeleteReview(c.Request.Context(), uri.ExternalID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DeletePost removes a cached post by its Instagram media ID
func (h *IntegrationHandler) DeletePost(c *gin.Context) {
	var uri ExternalIDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.instagram.DeletePost(c.Request.Context(), uri.ExternalID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *IntegrationHandler) bindService(c *gin.Context) (social.Service, bool) {
	var uri ServiceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return "", false
	}
	return social.Service(uri.Service), true
}

// RegisterRoutes registers public feed and admin integration routes
func (h *IntegrationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.Reviews)
	rg.GET("/instagram/posts", h.Posts)

	admin := rg.Group("/admin", h.authMiddleware)
	admin.GET("/integrations/:service/settings", h.Settings)
	admin.PUT("/integrations/:service/settings", h.Configure)
	admin.POST("/integrations/:service/sync", h.Sync)
	admin.POST("/integrations/:service/disable", h.Disable)
	admin.GET("/integrations/:service/account", h.Account)
	admin.POST("/integrations/:service/refresh-token", h.RefreshToken)
	admin.DELETE("/reviews/:externalID", h.DeleteReview)
	admin.DELETE("/posts/:externalID", h.DeletePost)
}
