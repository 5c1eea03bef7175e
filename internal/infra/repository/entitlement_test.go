//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/infra/repository"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	"entitlement-engine/tests/common/builder"
	repositorymock "entitlement-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// rowFromInsert mirrors what Postgres would hand back for an inserted row.
func rowFromInsert(p sqlc.InsertEntitlementParams) sqlc.Entitlements {
	return sqlc.Entitlements{
		ID:              p.ID,
		UserID:          p.UserID,
		OrderID:         p.OrderID,
		Kind:            p.Kind,
		PackageSnapshot: p.PackageSnapshot,
		Status:          p.Status,
		EnrolledAt:      p.EnrolledAt,
		ExpiresAt:       p.ExpiresAt,
		MaxSessions:     p.MaxSessions,
		SessionsUsed:    p.SessionsUsed,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func TestEntitlementRepository_InsertAndLoad(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockEntitlementWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewEntitlementRepository(mockQueries, mockDB)
	ent := builder.NewEntitlementBuilder().WithUsed(1).BuildDomain()

	var stored sqlc.Entitlements
	mockQueries.EXPECT().InsertEntitlement(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertEntitlementParams) (int64, error) {
			stored = rowFromInsert(arg)
			return 1, nil
		})

	inserted, err := repo.Insert(ctx, mockDB, ent)
	require.NoError(t, err)
	assert.True(t, inserted)

	mockQueries.EXPECT().GetEntitlementByIDForUpdate(ctx, mockDB, ent.ID()).Return(stored, nil)
	got, err := repo.FindByIDForUpdate(ctx, mockDB, ent.ID())

	require.NoError(t, err)
	assert.Equal(t, ent.ID(), got.ID())
	assert.Equal(t, ent.Snapshot().Name, got.Snapshot().Name)
	assert.Equal(t, ent.Snapshot().Features, got.Snapshot().Features)
	assert.Equal(t, ent.MaxSessions(), got.MaxSessions())
	assert.Equal(t, 1, got.SessionsUsed())
	assert.True(t, ent.ExpiresAt().Equal(got.ExpiresAt()))
}

func TestEntitlementRepository_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("success: existing grant for the order is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEntitlementWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertEntitlement(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		inserted, err := repository.NewEntitlementRepository(mockQueries, mockDB).
			Insert(ctx, mockDB, builder.NewEntitlementBuilder().BuildDomain())

		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEntitlementWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertEntitlement(ctx, mockDB, gomock.Any()).Return(int64(0), errDBConnectionLost)

		_, err := repository.NewEntitlementRepository(mockQueries, mockDB).
			Insert(ctx, mockDB, builder.NewEntitlementBuilder().BuildDomain())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestEntitlementRepository_FindByOrderID(t *testing.T) {
	ctx := context.Background()

	t.Run("error: no grant yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEntitlementWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetEntitlementByOrderID(ctx, mockDB, gomock.Any()).Return(sqlc.Entitlements{}, pgx.ErrNoRows)

		_, err := repository.NewEntitlementRepository(mockQueries, mockDB).FindByOrderID(ctx, mockDB, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEntitlementWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetEntitlementByOrderID(ctx, mockDB, gomock.Any()).
			Return(sqlc.Entitlements{ID: uuid.New(), PackageSnapshot: []byte("{not json")}, nil)

		_, err := repository.NewEntitlementRepository(mockQueries, mockDB).FindByOrderID(ctx, mockDB, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestEntitlementRepository_ConsumeSession(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	id := uuid.New()

	testCases := []struct {
		name      string
		row       sqlc.ConsumeEntitlementSessionRow
		dbErr     error
		wantUsed  int
		wantTaken bool
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success: counter incremented", row: sqlc.ConsumeEntitlementSessionRow{SessionsUsed: 2, MaxSessions: 3}, wantUsed: 2, wantTaken: true},
		{name: "success: guard rejected the increment", dbErr: pgx.ErrNoRows},
		{name: "error: database error occurs", dbErr: errDBConnectionLost, wantKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockEntitlementWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().ConsumeEntitlementSession(ctx, mockDB, sqlc.ConsumeEntitlementSessionParams{
				Now: pgconv.TimeToPgtype(now),
				ID:  id,
			}).Return(tc.row, tc.dbErr)

			used, taken, err := repository.NewEntitlementRepository(mockQueries, mockDB).ConsumeSession(ctx, mockDB, id, now)

			if tc.wantKind != "" {
				assert.True(t, infra.IsKind(err, tc.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUsed, used)
			assert.Equal(t, tc.wantTaken, taken)
		})
	}
}

func TestEntitlementRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockEntitlementWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	id := uuid.New()
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().UpdateEntitlementStatus(ctx, mockDB, sqlc.UpdateEntitlementStatusParams{
		Status:         "refunded",
		UpdatedAt:      pgconv.TimeToPgtype(now),
		ID:             id,
		ExpectedStatus: "active",
	}).Return(int64(0), nil)

	applied, err := repository.NewEntitlementRepository(mockQueries, mockDB).
		UpdateStatus(ctx, mockDB, id, entitlement.StatusRefunded, entitlement.StatusActive, now)

	require.NoError(t, err)
	assert.False(t, applied)
}
