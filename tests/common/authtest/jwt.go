//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Issuer stands in for the identity provider: it mints tokens with the
// secret the service under test validates against.
type Issuer struct {
	svc     *jwt.Service
	expired *jwt.Service
}

func NewIssuer(cfg config.JWTConfig) *Issuer {
	return &Issuer{
		svc:     jwt.NewService(cfg.Secret, cfg.AccessTokenDuration, cfg.RefreshTokenDuration),
		expired: jwt.NewService(cfg.Secret, -time.Minute, -time.Minute),
	}
}

func (i *Issuer) AccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := i.svc.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (i *Issuer) RefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := i.svc.GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

func (i *Issuer) ExpiredAccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := i.expired.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
