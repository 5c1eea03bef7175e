//go:build unit

package entitlement_test

import (
	"testing"
	"time"

	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enrolled = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestMaterialize(t *testing.T) {
	t.Run("counselling package", func(t *testing.T) {
		pkg := builder.NewPackageBuilder().Build()

		e, err := entitlement.Materialize(uuid.Nil, uuid.New(), uuid.New(), pkg, enrolled)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, e.ID())
		assert.Equal(t, entitlement.StatusActive, e.Status())
		assert.Equal(t, enrolled.Add(90*24*time.Hour), e.ExpiresAt())
		assert.Equal(t, 3, e.MaxSessions())
		assert.Equal(t, 3, e.SessionsRemaining())
		assert.Equal(t, 90, e.DaysRemaining(enrolled))
	})

	t.Run("content package has no sessions", func(t *testing.T) {
		pkg := builder.NewPackageBuilder().Content().Build()

		e, err := entitlement.Materialize(uuid.New(), uuid.New(), uuid.New(), pkg, enrolled)
		require.NoError(t, err)
		assert.Equal(t, 0, e.MaxSessions())
		assert.ErrorIs(t, e.CheckConsumable(enrolled), entitlement.ErrExhausted)
	})

	t.Run("invalid snapshot", func(t *testing.T) {
		pkg := builder.NewPackageBuilder().WithValidityDays(0).Build()
		_, err := entitlement.Materialize(uuid.New(), uuid.New(), uuid.New(), pkg, enrolled)
		assert.ErrorIs(t, err, entitlement.ErrInvalidSnapshot)
	})
}

func TestEntitlement_ConsumeSession(t *testing.T) {
	t.Run("quota is monotonic and bounded", func(t *testing.T) {
		e := builder.NewEntitlementBuilder().BuildDomain()
		at := enrolled.Add(time.Hour)

		for i := 1; i <= 3; i++ {
			require.NoError(t, e.ConsumeSession(at))
			assert.Equal(t, i, e.SessionsUsed())
		}
		assert.Equal(t, 0, e.SessionsRemaining())

		err := e.ConsumeSession(at)
		assert.ErrorIs(t, err, entitlement.ErrExhausted)
		assert.Equal(t, 3, e.SessionsUsed())
	})

	cases := []struct {
		name   string
		status entitlement.Status
		at     time.Time
		errIs  error
		reason entitlement.DenialReason
	}{
		{name: "past expiry while still active", status: entitlement.StatusActive, at: enrolled.AddDate(0, 0, 91), errIs: entitlement.ErrExpired, reason: entitlement.DenialExpired},
		{name: "expired", status: entitlement.StatusExpired, at: enrolled, errIs: entitlement.ErrExpired, reason: entitlement.DenialExpired},
		{name: "cancelled", status: entitlement.StatusCancelled, at: enrolled, errIs: entitlement.ErrNotActive, reason: entitlement.DenialNotActive},
		{name: "refunded", status: entitlement.StatusRefunded, at: enrolled, errIs: entitlement.ErrNotActive, reason: entitlement.DenialNotActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := builder.NewEntitlementBuilder().InStatus(tc.status).BuildDomain()

			err := e.ConsumeSession(tc.at)
			assert.ErrorIs(t, err, tc.errIs)
			assert.Equal(t, 0, e.SessionsUsed())

			reason, ok := entitlement.DenialOf(err)
			assert.True(t, ok)
			assert.Equal(t, tc.reason, reason)
		})
	}

	t.Run("expiry instant itself is still usable", func(t *testing.T) {
		e := builder.NewEntitlementBuilder().BuildDomain()
		assert.True(t, e.IsUsable(e.ExpiresAt()))
		assert.False(t, e.IsUsable(e.ExpiresAt().Add(time.Nanosecond)))
	})
}

func TestEntitlement_ReleaseSession(t *testing.T) {
	e := builder.NewEntitlementBuilder().WithUsed(1).BuildDomain()

	assert.True(t, e.ReleaseSession(enrolled))
	assert.Equal(t, 3, e.SessionsRemaining())
	assert.False(t, e.ReleaseSession(enrolled))
	assert.Equal(t, 0, e.SessionsUsed())
}

func TestEntitlement_Expire(t *testing.T) {
	e := builder.NewEntitlementBuilder().BuildDomain()

	assert.False(t, e.Expire(e.ExpiresAt()))
	assert.True(t, e.Expire(e.ExpiresAt().Add(time.Second)))
	assert.Equal(t, entitlement.StatusExpired, e.Status())
	assert.False(t, e.Expire(e.ExpiresAt().Add(time.Hour)))

	revoked := builder.NewEntitlementBuilder().InStatus(entitlement.StatusCancelled).BuildDomain()
	assert.False(t, revoked.Expire(revoked.ExpiresAt().Add(time.Hour)))
	assert.Equal(t, entitlement.StatusCancelled, revoked.Status())
}

func TestEntitlement_Revoke(t *testing.T) {
	t.Run("active to refunded, then idempotent", func(t *testing.T) {
		e := builder.NewEntitlementBuilder().BuildDomain()

		changed, err := e.Revoke(entitlement.RevokeRefunded, enrolled)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, entitlement.StatusRefunded, e.Status())

		changed, err = e.Revoke(entitlement.RevokeRefunded, enrolled)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("expired can still be revoked", func(t *testing.T) {
		e := builder.NewEntitlementBuilder().InStatus(entitlement.StatusExpired).BuildDomain()
		changed, err := e.Revoke(entitlement.RevokeRefunded, enrolled)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("terminal revocation cannot switch reason", func(t *testing.T) {
		e := builder.NewEntitlementBuilder().InStatus(entitlement.StatusCancelled).BuildDomain()
		_, err := e.Revoke(entitlement.RevokeRefunded, enrolled)
		assert.ErrorIs(t, err, entitlement.ErrNotActive)
		assert.Equal(t, entitlement.StatusCancelled, e.Status())
	})

	t.Run("unknown reason", func(t *testing.T) {
		e := builder.NewEntitlementBuilder().BuildDomain()
		_, err := e.Revoke(entitlement.RevokeReason("expired"), enrolled)
		assert.ErrorIs(t, err, entitlement.ErrInvalidRevokeReason)
	})
}

func TestRemainingDays(t *testing.T) {
	expires := enrolled.AddDate(0, 0, 2)

	assert.Equal(t, 2, entitlement.RemainingDays(expires, enrolled))
	assert.Equal(t, 1, entitlement.RemainingDays(expires, expires.Add(-time.Minute)))
	assert.Equal(t, 0, entitlement.RemainingDays(expires, expires))
	assert.Equal(t, 0, entitlement.RemainingDays(expires, expires.Add(time.Hour)))
}

func TestDenialOf(t *testing.T) {
	reason, ok := entitlement.DenialOf(errs.Wrap(entitlement.ErrExhausted, "consume"))
	assert.True(t, ok)
	assert.Equal(t, entitlement.DenialExhausted, reason)

	_, ok = entitlement.DenialOf(errs.New("boom"))
	assert.False(t, ok)
}
