//go:build e2e

package handoff_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"entitlement-engine/internal/domain/handoff"
	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/handler/dto/request"
	"entitlement-engine/internal/handler/dto/response"
	"entitlement-engine/internal/infra/cache"
	"entitlement-engine/internal/infra/catalogstore"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/cookie"
	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/tests/common/authtest"
	"entitlement-engine/tests/common/dbtest"
	"entitlement-engine/tests/common/httptest"
	"entitlement-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandoffSuite struct {
	e2e.SharedSuite
	jwt *authtest.Issuer
}

func (s *HandoffSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewIssuer(s.Config.JWT)
}

func TestHandoffSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(HandoffSuite))
}

// =============================================================================
// Issue (query mode)
// =============================================================================

func (s *HandoffSuite) TestIssue() {
	s.Run("Normal case: existing tokens are forwarded in the redirect", func() {
		t := s.T()
		userID := uuid.New()
		access := s.jwt.AccessToken(t, userID, user.RoleViewer)
		refresh := s.jwt.RefreshToken(t, userID, user.RoleViewer)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/handoff",
			request.IssueHandoffRequest{Redirect: "/papers/2024"},
			[]*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: refresh}}, access)

		var res response.HandoffResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		u, err := url.Parse(res.RedirectURL)
		require.NoError(t, err)
		assert.Equal(t, "papers.example.com", u.Host)
		assert.Equal(t, "/auth/sso", u.Path)
		assert.Equal(t, access, u.Query().Get("token"))
		assert.Equal(t, refresh, u.Query().Get("refreshToken"))
		assert.Equal(t, "/papers/2024", u.Query().Get("redirect"))
	})

	s.Run("Error case: no refresh token to hand off", func() {
		t := s.T()
		access := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/handoff", nil, access)

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "NOT_AUTHENTICATED")
	})

	s.Run("Error case: absolute redirect is refused", func() {
		t := s.T()
		userID := uuid.New()
		access := s.jwt.AccessToken(t, userID, user.RoleViewer)
		refresh := s.jwt.RefreshToken(t, userID, user.RoleViewer)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/handoff",
			request.IssueHandoffRequest{Redirect: "https://evil.example.com/"},
			[]*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: refresh}}, access)

		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "INVALID_REDIRECT")
	})
}

// =============================================================================
// Redis-backed stores
// =============================================================================

func (s *HandoffSuite) TestHandoffCodeStore() {
	s.Run("Normal case: a code can be taken exactly once", func() {
		t := s.T()
		ctx := context.Background()
		store := cache.NewHandoffCodeStore(s.Redis)
		entID := uuid.New()
		cred := handoff.Credential{AccessToken: "a", RefreshToken: "r", Redirect: "/", EntitlementID: &entID}

		require.NoError(t, store.Put(ctx, "code-1", cred, time.Minute))

		got, err := store.Take(ctx, "code-1")
		require.NoError(t, err)
		assert.Equal(t, cred, got)

		_, err = store.Take(ctx, "code-1")
		assert.ErrorIs(t, err, commands.ErrHandoffCodeInvalid)
	})

	s.Run("Error case: a live code is never overwritten", func() {
		t := s.T()
		ctx := context.Background()
		store := cache.NewHandoffCodeStore(s.Redis)
		first := handoff.Credential{AccessToken: "first", RefreshToken: "r", Redirect: "/"}

		require.NoError(t, store.Put(ctx, "code-2", first, time.Minute))
		assert.Error(t, store.Put(ctx, "code-2", handoff.Credential{AccessToken: "second", RefreshToken: "r", Redirect: "/"}, time.Minute))

		got, err := store.Take(ctx, "code-2")
		require.NoError(t, err)
		assert.Equal(t, "first", got.AccessToken)
	})

	s.Run("Edge case: expired code is invalid", func() {
		t := s.T()
		ctx := context.Background()
		store := cache.NewHandoffCodeStore(s.Redis)

		require.NoError(t, store.Put(ctx, "code-3", handoff.Credential{AccessToken: "a", RefreshToken: "r", Redirect: "/"}, 50*time.Millisecond))
		time.Sleep(150 * time.Millisecond)

		_, err := store.Take(ctx, "code-3")
		assert.ErrorIs(t, err, commands.ErrHandoffCodeInvalid)
	})
}

func (s *HandoffSuite) TestCachedCatalog() {
	s.Run("Normal case: cached package survives a catalog edit until the ttl runs out", func() {
		t := s.T()
		ctx := context.Background()
		reader := catalogstore.NewCachedReader(catalogstore.NewPostgresReader(sqlc.New()), s.DB, s.Redis, time.Minute)

		first, err := reader.PackageByID(ctx, dbtest.CounsellingPackageID)
		require.NoError(t, err)
		assert.True(t, first.Active)
		assert.Equal(t, []string{"video", "notes"}, first.Features)

		_, err = s.DB.Exec(ctx, "UPDATE packages SET name = 'Renamed', is_active = false WHERE id = $1", dbtest.CounsellingPackageID)
		require.NoError(t, err)

		cached, err := reader.PackageByID(ctx, dbtest.CounsellingPackageID)
		require.NoError(t, err)
		assert.Equal(t, "Counselling 3-pack", cached.Name)
		assert.True(t, cached.Active)

		require.NoError(t, s.Redis.FlushDB(ctx).Err())
		fresh, err := reader.PackageByID(ctx, dbtest.CounsellingPackageID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", fresh.Name)
		assert.False(t, fresh.Active)
	})

	s.Run("Error case: unknown package is not cached", func() {
		t := s.T()
		ctx := context.Background()
		reader := catalogstore.NewCachedReader(catalogstore.NewPostgresReader(sqlc.New()), s.DB, s.Redis, time.Minute)

		_, err := reader.PackageByID(ctx, uuid.New())

		assert.ErrorIs(t, err, commands.ErrPackageNotFound)
		keys, err := s.Redis.Keys(ctx, "catalog:package:*").Result()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}
