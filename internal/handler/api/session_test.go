//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/handler/api"
	resdto "entitlement-engine/internal/handler/dto/response"
	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/usecase/queries"
	"entitlement-engine/internal/usecase/shared"
	"entitlement-engine/tests/common/builder"
	"entitlement-engine/tests/common/httptest"
	commandsmock "entitlement-engine/tests/mock/commands"
	queriesmock "entitlement-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewSessionHandler(s.mockCommands, s.mockQueries)

	auth := mockAuth(s.userID, user.RoleViewer)
	s.router.GET("/api/sessions/:id", auth, h.Get)
	s.router.POST("/api/sessions/:id/cancel", auth, h.Cancel)
	s.router.POST("/api/sessions/:id/confirm", h.Confirm)
	s.router.POST("/api/sessions/:id/complete", h.Complete)
	s.router.POST("/api/sessions/:id/no-show", h.NoShow)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().For(uuid.New(), s.userID).BuildView()
	path := "/api/sessions/" + view.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, queries.Actor{UserID: s.userID, Role: user.RoleViewer}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "bearer-token")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ID, res.ID)
		s.Equal(view.EntitlementID, res.EntitlementID)
		s.Equal(view.Agenda, res.Agenda)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, gomock.Any()).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "bearer-token")

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "BOOKING_NOT_FOUND")
	})
}

func (s *SessionHandlerTestSuite) TestCancel() {
	b := builder.NewBookingBuilder().For(uuid.New(), s.userID).InStatus(booking.StatusCancelled).BuildDomain()
	path := "/api/sessions/" + b.ID().String() + "/cancel"

	s.Run("success: without a body", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, b.ID(), "").Return(b, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "bearer-token")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("cancelled", res.Status)
	})

	s.Run("success: with a reason", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, b.ID(), "exam clash").Return(b, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"reason": "exam clash"}, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: reason too long", func() {
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"reason": string(long)}, "bearer-token")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"session already started", booking.ErrCancellationClosed, http.StatusConflict, "CANCELLATION_CLOSED"},
		{"already cancelled", booking.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
		{"not the caller's booking", commands.ErrBookingNotFound, http.StatusNotFound, "BOOKING_NOT_FOUND"},
		{"lost a race", shared.ErrStaleWrite, http.StatusConflict, "CONCURRENT_UPDATE"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "bearer-token")

			httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
		})
	}
}

func (s *SessionHandlerTestSuite) TestConfirm() {
	counsellor := uuid.New()
	b := builder.NewBookingBuilder().Confirmed(counsellor).BuildDomain()
	path := "/api/sessions/" + b.ID().String() + "/confirm"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), b.ID(), counsellor).Return(b, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"counsellorId": counsellor}, "")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("confirmed", res.Status)
		s.Equal(&counsellor, res.CounsellorID)
	})

	s.Run("error: counsellor missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: counsellor already booked in the slot", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), b.ID(), counsellor).Return(nil, commands.ErrSlotUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"counsellorId": counsellor}, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "SLOT_UNAVAILABLE")
	})
}

func (s *SessionHandlerTestSuite) TestOutcomes() {
	id := uuid.New()

	s.Run("success: complete", func() {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) { bb.ID = id }).
			Confirmed(uuid.New()).InStatus(booking.StatusCompleted).BuildDomain()
		s.mockCommands.EXPECT().Complete(gomock.Any(), id).Return(b, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sessions/"+id.String()+"/complete", nil, "")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("completed", res.Status)
	})

	s.Run("error: no-show on a requested booking", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), id).Return(nil, booking.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sessions/"+id.String()+"/no-show", nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "INVALID_TRANSITION")
	})
}
