package middleware

import (
	"net/http"

	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/handler/httperr"
	"entitlement-engine/internal/pkg/cookie"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey      = "user_id"
	ctxUserRoleKey    = "user_role"
	ctxAccessTokenKey = "access_token"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

var (
	errNoAccessToken = errs.New("no access token")
	errNoRole        = errs.New("role missing from context, RequireAuth not installed")
)

// RequireAuth accepts the access token from the cookie first, then from a
// bearer Authorization header. The rejection cause is logged by ErrorHandler.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.AccessToken(c)
		if token == "" {
			unauthenticated("Access token required").Abort(c, errNoAccessToken)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			unauthenticated("Invalid or expired token").Abort(c, err)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set(ctxAccessTokenKey, token)
		c.Next()
	}
}

func unauthenticated(msg string) httperr.Response {
	return httperr.New(http.StatusUnauthorized, "NOT_AUTHENTICATED", msg)
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.Internal().Abort(c, errNoRole)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.New(http.StatusForbidden, "FORBIDDEN", "Insufficient permissions").Abort(c, errs.Newf("role %s below %s", role, minRole))
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetAccessToken returns the raw token RequireAuth accepted for this request.
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxAccessTokenKey)
}
