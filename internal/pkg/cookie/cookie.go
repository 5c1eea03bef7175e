package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Session cookies are set by the identity provider on the shared parent
// domain. This service only reads them.
const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

// AccessToken prefers the session cookie and falls back to a bearer
// Authorization header for API clients.
func AccessToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookieName); err == nil && token != "" {
		return token
	}
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RefreshToken is only ever read from the cookie.
func RefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}
