package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/auth"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/dto"
)

// Auth context keys
const (
	AuthClaimsKey   = "auth_claims"
	AuthUsernameKey = "auth_username"
	AuthHeaderKey   = "Authorization"
	BearerPrefix    = "Bearer "
)

// TokenVerifier checks a bearer token against the active session store.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

// AdminAuth requires a valid bearer token backed by a live admin session.
// Requests without one are rejected with 401.
func AdminAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Set(AuthUsernameKey, claims.Username)
		c.Next()
	}
}

// GetAuthClaims returns the verified claims set by AdminAuth, or nil
func GetAuthClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(AuthClaimsKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetAuthUsername returns the authenticated username, or ""
func GetAuthUsername(c *gin.Context) string {
	return c.GetString(AuthUsernameKey)
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader(AuthHeaderKey)
	if header == "" || !strings.HasPrefix(header, BearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, BearerPrefix)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeUnauthorized,
		message,
		GetRequestID(c),
	))
}
