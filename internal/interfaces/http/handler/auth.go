package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/helenrojas261991-debug/home-services-florida/internal/application/identity"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/middleware"
)

// AuthHandler handles admin login, logout, and session checks
type AuthHandler struct {
	BaseHandler
	identity       *identity.Service
	authMiddleware gin.HandlerFunc
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityService *identity.Service, authMiddleware gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		identity:       identityService,
		authMiddleware: authMiddleware,
	}
}

// LoginRequest is the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CurrentUserResponse describes the authenticated admin
type CurrentUserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login authenticates the admin and opens a session
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.identity.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Logout revokes the current session. Requests without a valid token
// are still answered with success, there is nothing to revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader(middleware.AuthHeaderKey)
	token := ""
	if len(header) > len(middleware.BearerPrefix) {
		token = header[len(middleware.BearerPrefix):]
	}

	if err := h.identity.Logout(c.Request.Context(), token); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Logged out successfully"})
}

// Me returns the currently authenticated admin
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetAuthClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.Success(c, CurrentUserResponse{
		Username: claims.Username,
		Role:     claims.Role,
	})
}

// RegisterRoutes registers auth routes on the API group
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/auth")
	group.POST("/login", h.Login)
	group.POST("/logout", h.Logout)
	group.GET("/me", h.authMiddleware, h.Me)
}
