package api

import (
	"net/http"

	"entitlement-engine/internal/domain/entitlement"
	reqdto "entitlement-engine/internal/handler/dto/request"
	resdto "entitlement-engine/internal/handler/dto/response"
	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type EnrollmentHandler struct {
	ledger       commands.LedgerCommands
	bookings     commands.BookingCommands
	entitlements queries.EntitlementQueries
	bookingViews queries.BookingQueries
}

func NewEnrollmentHandler(
	ledger commands.LedgerCommands,
	bookings commands.BookingCommands,
	entitlements queries.EntitlementQueries,
	bookingViews queries.BookingQueries,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		ledger:       ledger,
		bookings:     bookings,
		entitlements: entitlements,
		bookingViews: bookingViews,
	}
}

// @Summary List my enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EntitlementResponse
// @Router /api/enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	views, err := h.entitlements.ListMine(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromEntitlementViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get enrollment
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entitlement ID"
// @Success 200 {object} resdto.EntitlementResponse
// @Failure 404 {object} httperr.Response
// @Router /api/enrollments/{id} [get]
func (h *EnrollmentHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.entitlements.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromEntitlementView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Request a session
// @Description Book a counselling session against an enrollment. An optional Idempotency-Key makes retries safe.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entitlement ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.RequestSessionRequest true "Session request"
// @Success 201 {object} resdto.RequestSessionResponse
// @Success 200 {object} resdto.RequestSessionResponse "replayed"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/enrollments/{id}/sessions [post]
func (h *EnrollmentHandler) RequestSession(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var key *uuid.UUID
	if raw := c.GetHeader(idempotencyKeyHeader); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			invalidRequest(c, err, "Invalid idempotency key format")
			return
		}
		key = &parsed
	}

	var req reqdto.RequestSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err, "Invalid request")
		return
	}

	result, err := h.bookings.RequestSession(c.Request.Context(), actor.UserID, req.ToInput(id, key))
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromRequestSessionResult(result))
}

// @Summary List sessions of an enrollment
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entitlement ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/enrollments/{id}/sessions [get]
func (h *EnrollmentHandler) ListSessions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	views, err := h.bookingViews.ListByEntitlement(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromBookingViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Revoke enrollment
// @Description Operator hook: cancel an entitlement and every open booking tied to it
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entitlement ID"
// @Success 200 {object} resdto.RevokeResponse
// @Failure 404 {object} httperr.Response
// @Router /api/enrollments/{id}/revoke [post]
func (h *EnrollmentHandler) Revoke(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := h.ledger.Revoke(c.Request.Context(), id, entitlement.RevokeCancelled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevokeResult(result))
}
