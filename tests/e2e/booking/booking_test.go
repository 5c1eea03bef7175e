//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/handler/dto/request"
	"entitlement-engine/internal/handler/dto/response"
	"entitlement-engine/internal/usecase/shared"
	"entitlement-engine/tests/common/authtest"
	"entitlement-engine/tests/common/dbtest"
	"entitlement-engine/tests/common/httptest"
	"entitlement-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	enrollmentURL = "/api/enrollments/%s"
	sessionsURL   = "/api/enrollments/%s/sessions"
	revokeURL     = "/api/enrollments/%s/revoke"
	cancelURL     = "/api/sessions/%s/cancel"
	confirmURL    = "/api/sessions/%s/confirm"
	sessionURL    = "/api/sessions/%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.Issuer
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewIssuer(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// purchase buys and pays for a package and returns the granted entitlement.
func (s *BookingSuite) purchase(t *testing.T, token string, packageID uuid.UUID, amount int64) uuid.UUID {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders", request.CreateOrderRequest{
		PackageID: packageID,
		Amount:    amount,
		Currency:  dbtest.Currency,
	}, token)
	var created response.CreateOrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

	w = e2e.Notify(t, s.Router, s.Config.Gateway.WebhookSecret, created.GatewayOrderID, "PAID")
	var paid response.NotificationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
	require.NotNil(t, paid.EntitlementID)
	return *paid.EntitlementID
}

// bookableDate is a day inside the booking window in the business time zone.
func (s *BookingSuite) bookableDate(daysAhead int) string {
	loc, err := time.LoadLocation(s.Config.Booking.TimeZone)
	s.Require().NoError(err)
	return time.Now().In(loc).AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func (s *BookingSuite) sessionRequest(daysAhead int, slot string) request.RequestSessionRequest {
	return request.RequestSessionRequest{
		Date:     s.bookableDate(daysAhead),
		Slot:     slot,
		Platform: "zoom",
		Agenda:   "shortlist review",
	}
}

func (s *BookingSuite) requestSession(t *testing.T, token string, entID uuid.UUID, req request.RequestSessionRequest) response.RequestSessionResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionsURL, entID), req, token)
	var res response.RequestSessionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *BookingSuite) sessionsUsed(t *testing.T, token string, entID uuid.UUID) int {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(enrollmentURL, entID), nil, token)
	var ent response.EntitlementResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &ent)
	return ent.SessionsUsed
}

// =============================================================================
// Requesting sessions
// =============================================================================

func (s *BookingSuite) TestRequestSession() {
	s.Run("Normal case: booking consumes one session", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		entID := s.purchase(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)

		res := s.requestSession(t, token, entID, s.sessionRequest(2, "10:30"))

		assert.Equal(t, 2, res.SessionsRemaining)
		assert.Equal(t, "requested", res.Booking.Status)
		assert.Equal(t, "10:30", res.Booking.Slot)
		assert.Equal(t, 1, s.sessionsUsed(t, token, entID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "outbox_events", "event_type = $1", shared.EventBookingRequested))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(sessionsURL, entID), nil, token)
		var list []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		assert.Equal(t, res.Booking.ID, list[0].ID)
	})

	s.Run("Normal case: replay with the same key returns the first booking", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		entID := s.purchase(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)
		key := uuid.NewString()
		req := s.sessionRequest(3, "11:00")
		url := fmt.Sprintf(sessionsURL, entID)

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, req, map[string]string{"Idempotency-Key": key}, token)
		var first response.RequestSessionResponse
		httptest.AssertSuccessResponse(t, w1, http.StatusCreated, &first)

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, req, map[string]string{"Idempotency-Key": key}, token)
		var replay response.RequestSessionResponse
		httptest.AssertSuccessResponse(t, w2, http.StatusOK, &replay)

		assert.Equal(t, first.Booking.ID, replay.Booking.ID)
		assert.Equal(t, 1, s.sessionsUsed(t, token, entID))

		req.Slot = "11:30"
		w3 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, req, map[string]string{"Idempotency-Key": key}, token)
		httptest.AssertErrorCode(t, w3, http.StatusUnprocessableEntity, "IDEMPOTENCY_KEY_REUSED")
	})

	s.Run("Error case: quota exhausted after the last session", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		entID := s.purchase(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)
		for _, slot := range []string{"10:00", "12:00", "14:00"} {
			s.requestSession(t, token, entID, s.sessionRequest(2, slot))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionsURL, entID), s.sessionRequest(2, "15:00"), token)

		httptest.AssertErrorCode(t, w, http.StatusConflict, "QUOTA_EXHAUSTED")
		assert.Equal(t, 3, s.sessionsUsed(t, token, entID))
		assert.Equal(t, 3, dbtest.CountRows(t, s.DB, "session_bookings", "entitlement_id = $1", entID))
	})

	s.Run("Edge case: concurrent requests for the last session", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		single := dbtest.CreateTestPackage(t, s.DB, dbtest.PackageFixture{
			Name: "Single session", Kind: "counselling", PriceMinor: 199900, ValidityDays: 30, MaxSessions: 1, Active: true,
		})
		entID := s.purchase(t, token, single, 199900)

		slots := []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30"}
		recorders := make([]*nethttptest.ResponseRecorder, len(slots))
		var wg sync.WaitGroup
		for i, slot := range slots {
			body := httptest.JSON(t, s.sessionRequest(2, slot))
			wg.Add(1)
			go func() {
				defer wg.Done()
				recorders[i] = httptest.Do(s.Router, httptest.Request{
					Method: http.MethodPost, Path: fmt.Sprintf(sessionsURL, entID), Body: body, Token: token,
				})
			}()
		}
		wg.Wait()

		created := 0
		for _, w := range recorders {
			if w.Code == http.StatusCreated {
				created++
				continue
			}
			httptest.AssertErrorCode(t, w, http.StatusConflict, "QUOTA_EXHAUSTED")
		}
		assert.Equal(t, 1, created)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "entitlements", "id = $1 AND sessions_used = max_sessions", entID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "session_bookings", "entitlement_id = $1", entID))
	})

	s.Run("Error case: content packages carry no sessions", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		entID := s.purchase(t, token, dbtest.ContentPackageID, dbtest.ContentPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionsURL, entID), s.sessionRequest(2, "10:00"), token)

		httptest.AssertErrorCode(t, w, http.StatusConflict, "QUOTA_EXHAUSTED")
	})

	s.Run("Error case: same-day booking is outside the window", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		entID := s.purchase(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionsURL, entID), s.sessionRequest(0, "16:00"), token)

		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "OUT_OF_WINDOW")
		assert.Equal(t, 0, s.sessionsUsed(t, token, entID))
	})

	s.Run("Error case: expired entitlement cannot book", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		entID := s.purchase(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)
		dbtest.SetEntitlementExpiry(t, s.DB, entID, time.Now().Add(-time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionsURL, entID), s.sessionRequest(2, "10:00"), token)

		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "ENTITLEMENT_INACTIVE")
	})

	s.Run("Auth test: another user's entitlement", func() {
		t := s.T()
		owner := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		entID := s.purchase(t, owner, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)
		other := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionsURL, entID), s.sessionRequest(2, "10:00"), other)

		httptest.AssertErrorCode(t, w, http.StatusNotFound, "ENTITLEMENT_NOT_FOUND")
	})
}

// =============================================================================
// Booking lifecycle
// =============================================================================

func (s *BookingSuite) TestLifecycle() {
	s.Run("Normal case: user cancellation gives the session back", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		entID := s.purchase(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)
		res := s.requestSession(t, token, entID, s.sessionRequest(2, "13:00"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, res.Booking.ID),
			request.CancelBookingRequest{Reason: "exam clash"}, token)
		var cancelled response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)

		assert.Equal(t, "cancelled", cancelled.Status)
		require.NotNil(t, cancelled.CancelReason)
		assert.Equal(t, "exam clash", *cancelled.CancelReason)
		assert.Equal(t, 0, s.sessionsUsed(t, token, entID))
	})

	s.Run("Error case: counsellor cannot hold two confirmed bookings in one slot", func() {
		t := s.T()
		operator := s.jwt.AccessToken(t, uuid.New(), user.RoleOperator)
		counsellor := uuid.New()
		req := s.sessionRequest(4, "16:30")

		var bookingIDs []uuid.UUID
		for range 2 {
			token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
			entID := s.purchase(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)
			bookingIDs = append(bookingIDs, s.requestSession(t, token, entID, req).Booking.ID)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, bookingIDs[0]),
			request.ConfirmBookingRequest{CounsellorID: counsellor}, operator)
		var confirmed response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		assert.Equal(t, "confirmed", confirmed.Status)
		assert.Equal(t, &counsellor, confirmed.CounsellorID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, bookingIDs[1]),
			request.ConfirmBookingRequest{CounsellorID: counsellor}, operator)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "SLOT_UNAVAILABLE")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(sessionURL, bookingIDs[1]), nil, operator)
		var still response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &still)
		assert.Equal(t, "requested", still.Status)
	})

	s.Run("Normal case: revoke cancels open bookings and keeps the quota spent", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleViewer)
		operator := s.jwt.AccessToken(t, uuid.New(), user.RoleOperator)
		entID := s.purchase(t, token, dbtest.CounsellingPackageID, dbtest.CounsellingPrice)
		res := s.requestSession(t, token, entID, s.sessionRequest(2, "17:00"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(revokeURL, entID), nil, operator)
		var revoked response.RevokeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &revoked)

		assert.Equal(t, "cancelled", revoked.Status)
		assert.Equal(t, []uuid.UUID{res.Booking.ID}, revoked.CancelledBookings)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "session_bookings", "id = $1 AND status = 'cancelled'", res.Booking.ID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "entitlements", "id = $1 AND sessions_used = 1", entID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionsURL, entID), s.sessionRequest(2, "10:00"), token)
		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "ENTITLEMENT_INACTIVE")
	})
}
