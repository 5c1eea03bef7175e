//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/handler/middleware"
	"entitlement-engine/internal/pkg/cookie"
	"entitlement-engine/tests/common/httptest"
	usecasemock "entitlement-engine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(validator *usecasemock.MockTokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(validator)
	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role, "token": middleware.GetAccessToken(c)})
	})
	r.POST("/ops", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleOperator), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("success: bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("bearer-token").Return(userID, user.RoleViewer, nil)

		w := httptest.PerformRequest(t, newRouter(validator), http.MethodGet, "/me", nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["id"])
		assert.Equal(t, "viewer", body["role"])
		assert.Equal(t, "bearer-token", body["token"])
	})

	t.Run("success: cookie wins over the header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("cookie-token").Return(userID, user.RoleViewer, nil)

		w := httptest.PerformRequestWithCookies(t, newRouter(validator), http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}, "bearer-token")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error: no token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)

		w := httptest.PerformRequest(t, newRouter(validator), http.MethodGet, "/me", nil, "")

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "NOT_AUTHENTICATED")
	})

	t.Run("error: invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("expired").Return(uuid.Nil, user.Role(""), errors.New("token is expired"))

		w := httptest.PerformRequest(t, newRouter(validator), http.MethodGet, "/me", nil, "expired")

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "NOT_AUTHENTICATED")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	testCases := []struct {
		role           user.Role
		expectedStatus int
	}{
		{role: user.RoleViewer, expectedStatus: http.StatusForbidden},
		{role: user.RoleOperator, expectedStatus: http.StatusNoContent},
		{role: user.RoleAdmin, expectedStatus: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			validator.EXPECT().ValidateToken("token").Return(uuid.New(), tc.role, nil)

			w := httptest.PerformRequest(t, newRouter(validator), http.MethodPost, "/ops", nil, "token")

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
