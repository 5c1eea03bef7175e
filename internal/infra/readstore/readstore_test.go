//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/infra/readstore"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	readstoremock "entitlement-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	created             = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
)

// =============================================================================
// Order View Tests
// =============================================================================

func TestOrderReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockOrderViewQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: order found",
			setupMock: func(mock *readstoremock.MockOrderViewQueries) {
				mock.EXPECT().GetOrderViewByID(ctx, gomock.Any(), orderID).Return(sqlc.GetOrderViewByIDRow{
					ID:             orderID,
					UserID:         uuid.New(),
					PackageID:      uuid.New(),
					PackageName:    "Counselling 3-pack",
					AmountMinor:    499900,
					Currency:       "INR",
					GatewayOrderID: pgconv.StringToPgtype("gw_1"),
					State:          "paid",
					CompletedAt:    pgconv.TimeToPgtype(created.Add(time.Minute)),
					CreatedAt:      pgconv.TimeToPgtype(created),
					UpdatedAt:      pgconv.TimeToPgtype(created),
				}, nil)
			},
		},
		{
			name: "error: order not found",
			setupMock: func(mock *readstoremock.MockOrderViewQueries) {
				mock.EXPECT().GetOrderViewByID(ctx, gomock.Any(), orderID).Return(sqlc.GetOrderViewByIDRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *readstoremock.MockOrderViewQueries) {
				mock.EXPECT().GetOrderViewByID(ctx, gomock.Any(), orderID).Return(sqlc.GetOrderViewByIDRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
			tc.setupMock(mockQueries)

			view, err := readstore.NewOrderReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, orderID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, view.ID)
			assert.Equal(t, "paid", view.State)
			require.NotNil(t, view.GatewayOrderID)
			assert.Equal(t, "gw_1", *view.GatewayOrderID)
			assert.Nil(t, view.PaymentSessionID)
			require.NotNil(t, view.CompletedAt)
		})
	}
}

// =============================================================================
// Entitlement View Tests
// =============================================================================

func entitlementRow(userID uuid.UUID, snapshot string) sqlc.Entitlements {
	return sqlc.Entitlements{
		ID:              uuid.New(),
		UserID:          userID,
		OrderID:         uuid.New(),
		Kind:            "counselling",
		PackageSnapshot: []byte(snapshot),
		Status:          "active",
		EnrolledAt:      pgconv.TimeToPgtype(created),
		ExpiresAt:       pgconv.TimeToPgtype(created.AddDate(0, 0, 90)),
		MaxSessions:     3,
		SessionsUsed:    1,
		CreatedAt:       pgconv.TimeToPgtype(created),
		UpdatedAt:       pgconv.TimeToPgtype(created),
	}
}

func TestEntitlementReadStore_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	pkgID := uuid.New()

	t.Run("success: snapshot fields are projected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEntitlementViewQueries(ctrl)
		withFeatures := entitlementRow(userID, `{"id":"`+pkgID.String()+`","name":"Counselling 3-pack","features":["video"]}`)
		noFeatures := entitlementRow(userID, `{"id":"`+pkgID.String()+`","name":"Past papers"}`)
		mockQueries.EXPECT().ListEntitlementsByUser(ctx, gomock.Any(), userID).
			Return([]sqlc.Entitlements{withFeatures, noFeatures}, nil)

		views, err := readstore.NewEntitlementReadStore(mockQueries, &mockDBTX{}).ListByUser(ctx, userID)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, pkgID, views[0].PackageID)
		assert.Equal(t, "Counselling 3-pack", views[0].PackageName)
		assert.Equal(t, []string{"video"}, views[0].Features)
		assert.Equal(t, 3, views[0].MaxSessions)
		assert.Equal(t, 1, views[0].SessionsUsed)
		assert.NotNil(t, views[1].Features)
		assert.Empty(t, views[1].Features)
	})

	t.Run("error: corrupt snapshot fails the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEntitlementViewQueries(ctrl)
		mockQueries.EXPECT().ListEntitlementsByUser(ctx, gomock.Any(), userID).
			Return([]sqlc.Entitlements{entitlementRow(userID, `[`)}, nil)

		_, err := readstore.NewEntitlementReadStore(mockQueries, &mockDBTX{}).ListByUser(ctx, userID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("success: no rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEntitlementViewQueries(ctrl)
		mockQueries.EXPECT().ListEntitlementsByUser(ctx, gomock.Any(), userID).Return(nil, nil)

		views, err := readstore.NewEntitlementReadStore(mockQueries, &mockDBTX{}).ListByUser(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

// =============================================================================
// Booking View Tests
// =============================================================================

func TestBookingReadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("success: list keeps the stored order and formats dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		entID := uuid.New()
		counsellor := uuid.New()
		rows := []sqlc.SessionBookings{
			{
				ID: uuid.New(), EntitlementID: entID, UserID: uuid.New(),
				SessionDate: pgconv.DateToPgtype(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
				Slot:        "10:30", Platform: "google_meet", Status: "confirmed",
				CounsellorID: pgconv.UUIDToPgtype(counsellor),
				CreatedAt:    pgconv.TimeToPgtype(created), UpdatedAt: pgconv.TimeToPgtype(created),
			},
			{
				ID: uuid.New(), EntitlementID: entID, UserID: uuid.New(),
				SessionDate: pgconv.DateToPgtype(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)),
				Slot:        "16:00", Platform: "zoom", Status: "cancelled",
				CancelReason: pgconv.StringToPgtype("exam clash"),
				CreatedAt:    pgconv.TimeToPgtype(created), UpdatedAt: pgconv.TimeToPgtype(created),
			},
		}
		mockQueries.EXPECT().ListBookingsByEntitlement(ctx, gomock.Any(), entID).Return(rows, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).ListByEntitlement(ctx, entID)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "2025-03-14", views[0].SessionDate)
		assert.Equal(t, &counsellor, views[0].CounsellorID)
		assert.Equal(t, "2025-03-17", views[1].SessionDate)
		require.NotNil(t, views[1].CancelReason)
		assert.Equal(t, "exam clash", *views[1].CancelReason)
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), gomock.Any()).Return(sqlc.SessionBookings{}, pgx.ErrNoRows)

		_, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
