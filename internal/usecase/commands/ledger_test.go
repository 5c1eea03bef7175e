//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/pkg/clock"
	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/usecase/shared"
	"entitlement-engine/tests/common/builder"
	"entitlement-engine/tests/common/memstore"
	commandsmock "entitlement-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerFixture struct {
	store   *memstore.Store
	catalog *commandsmock.MockCatalogReader
	clock   *clock.FixedClock
	uc      commands.LedgerCommands
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	ctrl := gomock.NewController(t)
	f := &ledgerFixture{
		store:   memstore.New(),
		catalog: commandsmock.NewMockCatalogReader(ctrl),
		clock:   clock.NewFixedClock(baseTime),
	}
	f.uc = commands.NewLedgerUseCase(f.store, f.catalog, f.clock)
	return f
}

func (f *ledgerFixture) putEntitlement(mutate ...func(*builder.EntitlementBuilder)) *entitlement.Entitlement {
	eb := builder.NewEntitlementBuilder()
	for _, m := range mutate {
		eb.With(m)
	}
	ent := eb.BuildDomain()
	f.store.PutEntitlement(ent)
	return ent
}

func TestLedgerUseCase_Materialize(t *testing.T) {
	ctx := context.Background()

	t.Run("success: paid order materializes once", func(t *testing.T) {
		f := newLedgerFixture(t)
		pkg := builder.NewPackageBuilder().Build()
		ord := builder.NewOrderBuilder().WithPackage(pkg).Pending("gw_m").InState(order.StatePaid).BuildDomain()
		f.store.PutOrder(ord)
		f.catalog.EXPECT().PackageByID(gomock.Any(), gomock.Any(), pkg.ID).Return(pkg, nil).Times(2)

		first, err := f.uc.Materialize(ctx, ord.ID())
		require.NoError(t, err)
		second, err := f.uc.Materialize(ctx, ord.ID())
		require.NoError(t, err)

		assert.Equal(t, first.ID(), second.ID())
		assert.Equal(t, pkg.Name, first.Snapshot().Name)
		assert.Len(t, f.store.EntitlementsForOrder(ord.ID()), 1)
		assert.Equal(t, []string{shared.EventEntitlementGranted}, f.store.EventTypes())
	})

	t.Run("error: order not paid", func(t *testing.T) {
		f := newLedgerFixture(t)
		ord := builder.NewOrderBuilder().Pending("gw_n").BuildDomain()
		f.store.PutOrder(ord)

		_, err := f.uc.Materialize(ctx, ord.ID())

		assert.ErrorIs(t, err, commands.ErrOrderNotPaid)
	})

	t.Run("error: unknown order", func(t *testing.T) {
		f := newLedgerFixture(t)

		_, err := f.uc.Materialize(ctx, uuid.New())

		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})
}

func TestLedgerUseCase_ConsumeSession(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		mutate        func(*builder.EntitlementBuilder)
		now           time.Time
		wantAllowed   bool
		wantReason    entitlement.DenialReason
		wantUsed      int
		wantRemaining int
	}{
		{
			name:          "success: session taken",
			mutate:        func(b *builder.EntitlementBuilder) {},
			now:           baseTime,
			wantAllowed:   true,
			wantUsed:      1,
			wantRemaining: 2,
		},
		{
			name:          "success: last session on the expiry instant",
			mutate:        func(b *builder.EntitlementBuilder) { b.SessionsUsed = 2 },
			now:           baseTime.AddDate(0, 0, 90),
			wantAllowed:   true,
			wantUsed:      3,
			wantRemaining: 0,
		},
		{
			name:          "denied: exhausted",
			mutate:        func(b *builder.EntitlementBuilder) { b.SessionsUsed = 3 },
			now:           baseTime,
			wantReason:    entitlement.DenialExhausted,
			wantUsed:      3,
			wantRemaining: 0,
		},
		{
			name:          "denied: past expiry",
			mutate:        func(b *builder.EntitlementBuilder) {},
			now:           baseTime.AddDate(0, 0, 90).Add(time.Second),
			wantReason:    entitlement.DenialExpired,
			wantRemaining: 3,
		},
		{
			name:          "denied: swept to expired",
			mutate:        func(b *builder.EntitlementBuilder) { b.Status = entitlement.StatusExpired },
			now:           baseTime,
			wantReason:    entitlement.DenialExpired,
			wantRemaining: 3,
		},
		{
			name:          "denied: refunded",
			mutate:        func(b *builder.EntitlementBuilder) { b.Status = entitlement.StatusRefunded },
			now:           baseTime,
			wantReason:    entitlement.DenialNotActive,
			wantRemaining: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newLedgerFixture(t)
			ent := f.putEntitlement(tc.mutate)
			f.clock.Set(tc.now)

			res, err := f.uc.ConsumeSession(ctx, ent.ID())

			require.NoError(t, err)
			assert.Equal(t, tc.wantAllowed, res.Allowed)
			assert.Equal(t, tc.wantReason, res.Reason)
			assert.Equal(t, tc.wantUsed, res.SessionsUsed)
			assert.Equal(t, tc.wantRemaining, res.SessionsRemaining)
			assert.Equal(t, tc.wantUsed, f.store.Entitlement(ent.ID()).SessionsUsed())
		})
	}

	t.Run("error: unknown entitlement", func(t *testing.T) {
		f := newLedgerFixture(t)

		_, err := f.uc.ConsumeSession(ctx, uuid.New())

		assert.ErrorIs(t, err, commands.ErrEntitlementNotFound)
	})
}

func TestLedgerUseCase_ReleaseSession(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	ent := f.putEntitlement(func(b *builder.EntitlementBuilder) { b.SessionsUsed = 1 })

	released, err := f.uc.ReleaseSession(ctx, ent.ID())
	require.NoError(t, err)
	assert.True(t, released)

	released, err = f.uc.ReleaseSession(ctx, ent.ID())
	require.NoError(t, err)
	assert.False(t, released, "used count never goes below zero")
	assert.Equal(t, 0, f.store.Entitlement(ent.ID()).SessionsUsed())
}

func TestLedgerUseCase_ExpireSweep(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	due := f.putEntitlement(func(b *builder.EntitlementBuilder) { b.ExpiresAt = baseTime.Add(-time.Hour) })
	live := f.putEntitlement()
	revoked := f.putEntitlement(func(b *builder.EntitlementBuilder) {
		b.ExpiresAt = baseTime.Add(-time.Hour)
		b.Status = entitlement.StatusCancelled
	})
	scheduled := builder.NewBookingBuilder().For(due.ID(), due.UserID()).BuildDomain()
	f.store.PutBooking(scheduled)

	n, err := f.uc.ExpireSweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, entitlement.StatusExpired, f.store.Entitlement(due.ID()).Status())
	assert.Equal(t, entitlement.StatusActive, f.store.Entitlement(live.ID()).Status())
	assert.Equal(t, entitlement.StatusCancelled, f.store.Entitlement(revoked.ID()).Status())
	assert.Equal(t, booking.StatusRequested, f.store.Booking(scheduled.ID()).Status())

	n, err = f.uc.ExpireSweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLedgerUseCase_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("success: revoke cancels open bookings without returning sessions", func(t *testing.T) {
		f := newLedgerFixture(t)
		ent := f.putEntitlement(func(b *builder.EntitlementBuilder) { b.SessionsUsed = 2 })
		requested := builder.NewBookingBuilder().For(ent.ID(), ent.UserID()).BuildDomain()
		confirmed := builder.NewBookingBuilder().For(ent.ID(), ent.UserID()).Confirmed(uuid.New()).BuildDomain()
		f.store.PutBooking(requested)
		f.store.PutBooking(confirmed)

		res, err := f.uc.Revoke(ctx, ent.ID(), entitlement.RevokeCancelled)

		require.NoError(t, err)
		assert.True(t, res.Applied)
		assert.Equal(t, entitlement.StatusCancelled, res.Status)
		assert.ElementsMatch(t, []uuid.UUID{requested.ID(), confirmed.ID()}, res.CancelledBookings)
		assert.Equal(t, booking.StatusCancelled, f.store.Booking(requested.ID()).Status())
		assert.Equal(t, booking.StatusCancelled, f.store.Booking(confirmed.ID()).Status())
		assert.Equal(t, 2, f.store.Entitlement(ent.ID()).SessionsUsed())
		assert.Equal(t, []string{shared.EventEntitlementRevoked}, f.store.EventTypes())
	})

	t.Run("success: revoking twice with the same reason is a no-op", func(t *testing.T) {
		f := newLedgerFixture(t)
		ent := f.putEntitlement()
		_, err := f.uc.Revoke(ctx, ent.ID(), entitlement.RevokeCancelled)
		require.NoError(t, err)

		res, err := f.uc.Revoke(ctx, ent.ID(), entitlement.RevokeCancelled)

		require.NoError(t, err)
		assert.False(t, res.Applied)
		assert.Len(t, f.store.EventTypes(), 1)
	})

	t.Run("error: refunded entitlement cannot be cancelled", func(t *testing.T) {
		f := newLedgerFixture(t)
		ent := f.putEntitlement(func(b *builder.EntitlementBuilder) { b.Status = entitlement.StatusRefunded })

		_, err := f.uc.Revoke(ctx, ent.ID(), entitlement.RevokeCancelled)

		assert.ErrorIs(t, err, entitlement.ErrNotActive)
	})

	t.Run("error: unknown reason", func(t *testing.T) {
		f := newLedgerFixture(t)
		ent := f.putEntitlement()

		_, err := f.uc.Revoke(ctx, ent.ID(), entitlement.RevokeReason("fraud"))

		assert.ErrorIs(t, err, entitlement.ErrInvalidRevokeReason)
		assert.Equal(t, entitlement.StatusActive, f.store.Entitlement(ent.ID()).Status())
	})

	t.Run("error: unknown entitlement", func(t *testing.T) {
		f := newLedgerFixture(t)

		_, err := f.uc.Revoke(ctx, uuid.New(), entitlement.RevokeCancelled)

		assert.ErrorIs(t, err, commands.ErrEntitlementNotFound)
	})
}
