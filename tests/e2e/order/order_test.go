//go:build e2e

package order_test

import (
	"context"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/handler/dto/request"
	"entitlement-engine/internal/handler/dto/response"
	"entitlement-engine/internal/usecase/shared"
	"entitlement-engine/tests/common/authtest"
	"entitlement-engine/tests/common/dbtest"
	"entitlement-engine/tests/common/httptest"
	"entitlement-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL      = "/api/orders"
	orderURL       = "/api/orders/%s"
	refundURL      = "/api/orders/%s/refund"
	enrollmentsURL = "/api/enrollments"
	packageURL     = "/api/packages/%s"
)

type OrderSuite struct {
	e2e.SharedSuite
	jwt *authtest.Issuer
}

func (s *OrderSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewIssuer(s.Config.JWT)
}

func (s *OrderSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.Gateway.SetDown(false)
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func (s *OrderSuite) createOrder(t *testing.T, token string, packageID uuid.UUID, amount int64) response.CreateOrderResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, request.CreateOrderRequest{
		PackageID: packageID,
		Amount:    amount,
		Currency:  dbtest.Currency,
	}, token)
	var res response.CreateOrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

// =============================================================================
// Purchase flow
// =============================================================================

func (s *OrderSuite) TestPurchase() {
	s.Run("Normal case: paid notification grants exactly one entitlement", func() {
		t := s.T()
		userID := uuid.New()
		token := s.jwt.AccessToken(t, userID, user.RoleViewer)

		created := s.createOrder(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)
		assert.Equal(t, "pending", created.State)
		assert.Equal(t, "gw_"+created.OrderID.String(), created.GatewayOrderID)
		assert.Equal(t, "ps_"+created.OrderID.String(), created.PaymentSessionID)

		w := e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, created.GatewayOrderID, "PAID")
		var first response.NotificationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		assert.True(t, first.Applied)
		require.NotNil(t, first.EntitlementID)

		// gateways redeliver; the replay must not grant twice
		w = e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, created.GatewayOrderID, "PAID")
		var replay response.NotificationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replay)
		assert.False(t, replay.Applied)
		assert.Equal(t, "paid", replay.State)
		assert.Equal(t, first.EntitlementID, replay.EntitlementID)

		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "entitlements", "order_id = $1", created.OrderID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "outbox_events", "event_type = $1", shared.EventOrderCompleted))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "outbox_events", "event_type = $1", shared.EventEntitlementGranted))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, created.OrderID), nil, token)
		var ord response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ord)
		assert.Equal(t, "paid", ord.State)
		assert.Equal(t, "Counselling 3-pack", ord.PackageName)
		assert.NotNil(t, ord.CompletedAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, enrollmentsURL, nil, token)
		var list []response.EntitlementResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)

		want := response.EntitlementResponse{
			ID:                *first.EntitlementID,
			OrderID:           created.OrderID,
			PackageID:         dbtest.CounsellingPackageID,
			PackageName:       "Counselling 3-pack",
			Kind:              "counselling",
			Status:            "active",
			Features:          []string{"video", "notes"},
			MaxSessions:       3,
			SessionsRemaining: 3,
		}
		opts := cmpopts.IgnoreFields(response.EntitlementResponse{}, "EnrolledAt", "ExpiresAt", "DaysRemaining")
		if diff := cmp.Diff(want, list[0], opts); diff != "" {
			t.Errorf("entitlement mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: failed payment grants nothing", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		created := s.createOrder(t, token, dbtest.ContentPackageID, dbtest.ContentPrice)

		w := e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, created.GatewayOrderID, "FAILED")
		var res response.NotificationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "failed", res.State)
		assert.Nil(t, res.EntitlementID)
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "entitlements", "order_id = $1", created.OrderID))
	})

	s.Run("Edge case: paid after failure is recorded and flagged", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		created := s.createOrder(t, token, dbtest.ContentPackageID, dbtest.ContentPrice)

		e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, created.GatewayOrderID, "FAILED")
		w := e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, created.GatewayOrderID, "PAID")

		var res response.NotificationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "failed", res.State)
		assert.True(t, res.Flagged)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "orders", "id = $1 AND needs_review", created.OrderID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "outbox_events", "event_type = $1", shared.EventOrderFlagged))
	})

	s.Run("Edge case: concurrent duplicate paid notifications grant once", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		created := s.createOrder(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)

		const deliveries = 6
		recorders := make([]*nethttptest.ResponseRecorder, deliveries)
		var wg sync.WaitGroup
		for i := range deliveries {
			wg.Add(1)
			go func() {
				defer wg.Done()
				recorders[i] = e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, created.GatewayOrderID, "PAID")
			}()
		}
		wg.Wait()

		applied := 0
		for _, w := range recorders {
			var res response.NotificationResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			assert.Equal(t, "paid", res.State)
			if res.Applied {
				applied++
			}
		}
		assert.Equal(t, 1, applied)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "entitlements", "order_id = $1", created.OrderID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "outbox_events", "event_type = $1", shared.EventEntitlementGranted))
	})

	s.Run("Error case: unsigned notification is rejected", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		created := s.createOrder(t, token, dbtest.ContentPackageID, dbtest.ContentPrice)

		w := e2e.Notify(t, s.Router, "not-the-secret", created.GatewayOrderID, "PAID")

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "UNTRUSTED_NOTIFICATION")
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "entitlements", "order_id = $1", created.OrderID))
	})

	s.Run("Error case: notification for an unknown order", func() {
		t := s.T()
		w := e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, "gw_unknown", "PAID")

		httptest.AssertErrorCode(t, w, http.StatusNotFound, "ORDER_NOT_FOUND")
	})
}

// =============================================================================
// Order creation
// =============================================================================

func (s *OrderSuite) TestCreateOrder() {
	s.Run("Error case: amount differs from the catalog price", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, request.CreateOrderRequest{
			PackageID: dbtest.CounsellingPackageID,
			Amount:    dbtest.CounsellingPrice - 1,
			Currency:  dbtest.Currency,
		}, token)

		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "PRICE_MISMATCH")
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "orders", "true"))
	})

	s.Run("Error case: retired package cannot be bought", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, request.CreateOrderRequest{
			PackageID: dbtest.RetiredPackageID,
			Amount:    dbtest.CounsellingPrice,
			Currency:  dbtest.Currency,
		}, token)

		httptest.AssertErrorCode(t, w, http.StatusNotFound, "PACKAGE_NOT_FOUND")
	})

	s.Run("Error case: gateway down leaves the order in created", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		s.Gateway.SetDown(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, request.CreateOrderRequest{
			PackageID: dbtest.ContentPackageID,
			Amount:    dbtest.ContentPrice,
			Currency:  dbtest.Currency,
		}, token)

		httptest.AssertErrorCode(t, w, http.StatusServiceUnavailable, "GATEWAY_UNAVAILABLE")
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "orders", "state = 'created'"))
	})

	s.Run("Auth test: unauthenticated request", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, request.CreateOrderRequest{
			PackageID: dbtest.ContentPackageID,
			Amount:    dbtest.ContentPrice,
			Currency:  dbtest.Currency,
		}, "")

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "NOT_AUTHENTICATED")
	})

	s.Run("Auth test: expired token", func() {
		t := s.T()
		token := s.jwt.ExpiredAccessToken(t, uuid.New(), user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, uuid.New()), nil, token)

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "NOT_AUTHENTICATED")
	})

	s.Run("Auth test: another user's order is not visible", func() {
		t := s.T()
		owner := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		created := s.createOrder(t, owner, dbtest.ContentPackageID, dbtest.ContentPrice)

		other := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, created.OrderID), nil, other)

		httptest.AssertErrorCode(t, w, http.StatusNotFound, "ORDER_NOT_FOUND")
	})
}

// =============================================================================
// Refund
// =============================================================================

func (s *OrderSuite) TestRefund() {
	s.Run("Normal case: operator refund revokes the entitlement", func() {
		t := s.T()
		buyer := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		operator := s.jwt.AccessToken(t, uuid.New(), user.RoleOperator)
		created := s.createOrder(t, buyer, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)
		e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, created.GatewayOrderID, "PAID")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refundURL, created.OrderID), nil, operator)
		var res response.RefundResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "refunded", res.State)
		assert.True(t, res.Applied)
		require.NotNil(t, res.EntitlementID)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "entitlements", "id = $1 AND status = 'refunded'", *res.EntitlementID))

		// second refund is a no-op
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refundURL, created.OrderID), nil, operator)
		var again response.RefundResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &again)
		assert.False(t, again.Applied)
	})

	s.Run("Error case: pending order is not refundable", func() {
		t := s.T()
		buyer := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		operator := s.jwt.AccessToken(t, uuid.New(), user.RoleOperator)
		created := s.createOrder(t, buyer, dbtest.ContentPackageID, dbtest.ContentPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refundURL, created.OrderID), nil, operator)

		httptest.AssertErrorCode(t, w, http.StatusConflict, "NOT_REFUNDABLE")
	})

	s.Run("Auth test: viewers cannot refund", func() {
		t := s.T()
		buyer := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		created := s.createOrder(t, buyer, dbtest.ContentPackageID, dbtest.ContentPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refundURL, created.OrderID), nil, buyer)

		httptest.AssertErrorCode(t, w, http.StatusForbidden, "FORBIDDEN")
	})
}

// =============================================================================
// Catalog
// =============================================================================

func (s *OrderSuite) TestCatalogEdit() {
	s.Run("Normal case: cached package display", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(packageURL, dbtest.CounsellingPackageID), nil, "")
		var pkg response.PackageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pkg)
		assert.Equal(t, "Counselling 3-pack", pkg.Name)
		assert.Equal(t, dbtest.CounsellingPrice, pkg.EffectivePriceMinor)
		assert.Equal(t, 3, pkg.MaxSessions)
	})

	s.Run("Normal case: orders and entitlements see an edit the display cache still hides", func() {
		t := s.T()
		ctx := context.Background()
		url := fmt.Sprintf(packageURL, dbtest.CounsellingPackageID)
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response.PackageResponse{})

		const newPrice = int64(549900)
		_, err := s.DB.Exec(ctx, `UPDATE packages SET name = 'Counselling 5-pack', price_minor = $2, max_sessions = 5 WHERE id = $1`,
			dbtest.CounsellingPackageID, newPrice)
		require.NoError(t, err)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		var cached response.PackageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cached)
		assert.Equal(t, dbtest.CounsellingPrice, cached.PriceMinor)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, request.CreateOrderRequest{
			PackageID: dbtest.CounsellingPackageID,
			Amount:    dbtest.CounsellingPrice,
			Currency:  dbtest.Currency,
		}, token)
		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "PRICE_MISMATCH")

		created := s.createOrder(t, token, dbtest.CounsellingPackageID, newPrice)
		w = e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, created.GatewayOrderID, "PAID")
		var paid response.NotificationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.NotNil(t, paid.EntitlementID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(enrollmentsURL+"/%s", *paid.EntitlementID), nil, token)
		var ent response.EntitlementResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ent)
		assert.Equal(t, "Counselling 5-pack", ent.PackageName)
		assert.Equal(t, 5, ent.MaxSessions)
	})

	s.Run("Error case: retired package is not displayed", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(packageURL, dbtest.RetiredPackageID), nil, "")

		httptest.AssertErrorCode(t, w, http.StatusNotFound, "PACKAGE_NOT_FOUND")
	})
}
