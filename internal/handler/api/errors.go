package api

import (
	"net/http"

	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/domain/catalog"
	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/domain/handoff"
	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/handler/httperr"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/usecase/queries"
	"entitlement-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{commands.ErrPackageNotFound, http.StatusNotFound, "PACKAGE_NOT_FOUND", "Package not found"},
	{order.ErrPriceMismatch, http.StatusUnprocessableEntity, "PRICE_MISMATCH", "Amount does not match the package price"},
	{order.ErrCurrencyMismatch, http.StatusUnprocessableEntity, "CURRENCY_MISMATCH", "Currency does not match the package currency"},
	{order.ErrInvalidPackage, http.StatusUnprocessableEntity, "PACKAGE_NOT_FOUND", "Package cannot be sold"},
	{catalog.ErrInvalidKind, http.StatusUnprocessableEntity, "PACKAGE_NOT_FOUND", "Package cannot be sold"},
	{order.ErrConflictingReference, http.StatusConflict, "CONFLICTING_REFERENCE", "Order already has a different gateway reference"},
	{commands.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found"},
	{queries.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found"},
	{order.ErrNotRefundable, http.StatusConflict, "NOT_REFUNDABLE", "Only paid orders can be refunded"},
	{order.ErrInvalidOutcome, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payment outcome"},
	{commands.ErrOrderNotPaid, http.StatusConflict, "ORDER_NOT_PAID", "Order is not paid"},
	{commands.ErrGatewayUnavailable, http.StatusServiceUnavailable, "GATEWAY_UNAVAILABLE", "Payment gateway unavailable, try again later"},
	{commands.ErrUntrustedNotification, http.StatusUnauthorized, "UNTRUSTED_NOTIFICATION", "Notification could not be verified"},
	{commands.ErrEntitlementNotFound, http.StatusNotFound, "ENTITLEMENT_NOT_FOUND", "Entitlement not found"},
	{queries.ErrEntitlementNotFound, http.StatusNotFound, "ENTITLEMENT_NOT_FOUND", "Entitlement not found"},
	{commands.ErrEntitlementInactive, http.StatusUnprocessableEntity, "ENTITLEMENT_INACTIVE", "Entitlement is not active"},
	{entitlement.ErrNotActive, http.StatusConflict, "ENTITLEMENT_INACTIVE", "Entitlement is not active"},
	{entitlement.ErrInvalidRevokeReason, http.StatusBadRequest, "INVALID_REQUEST", "Invalid revoke reason"},
	{booking.ErrOutOfWindow, http.StatusUnprocessableEntity, "OUT_OF_WINDOW", "Session date is outside the booking window"},
	{booking.ErrInvalidSlot, http.StatusUnprocessableEntity, "INVALID_SLOT", "Slot is not an offered time slot"},
	{booking.ErrInvalidPlatform, http.StatusBadRequest, "INVALID_PLATFORM", "Unsupported meeting platform"},
	{booking.ErrInvalidDate, http.StatusBadRequest, "INVALID_REQUEST", "Session date must be formatted as YYYY-MM-DD"},
	{booking.ErrAgendaTooLong, http.StatusBadRequest, "INVALID_REQUEST", "Agenda exceeds maximum length"},
	{commands.ErrQuotaExhausted, http.StatusConflict, "QUOTA_EXHAUSTED", "No sessions remaining"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found"},
	{booking.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION", "Booking cannot move to the requested status"},
	{booking.ErrCancellationClosed, http.StatusConflict, "CANCELLATION_CLOSED", "Booking can no longer be cancelled"},
	{booking.ErrCounsellorRequired, http.StatusBadRequest, "INVALID_REQUEST", "Counsellor is required"},
	{commands.ErrSlotUnavailable, http.StatusConflict, "SLOT_UNAVAILABLE", "Counsellor already has a confirmed booking in this slot"},
	{commands.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "IDEMPOTENCY_KEY_REUSED", "Idempotency key reused with a different request"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "IDEMPOTENCY_IN_PROGRESS", "Request with this idempotency key is still being processed"},
	{commands.ErrNotAuthenticated, http.StatusUnauthorized, "NOT_AUTHENTICATED", "No valid session to hand off"},
	{handoff.ErrNotAuthenticated, http.StatusUnauthorized, "NOT_AUTHENTICATED", "No valid session to hand off"},
	{handoff.ErrInvalidRedirect, http.StatusBadRequest, "INVALID_REDIRECT", "Redirect must be a relative path"},
	{commands.ErrHandoffCodeInvalid, http.StatusNotFound, "HANDOFF_CODE_INVALID", "Handoff code is invalid or already used"},
	{commands.ErrHandoffExchangeRefused, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Exchange secret rejected"},
	{shared.ErrStaleWrite, http.StatusConflict, "CONCURRENT_UPDATE", "Resource was modified concurrently, retry the request"},
}

// respondError maps a use case error onto the public error body.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.code, m.message)
			return
		}
	}
	httperr.Internal().Abort(c, err)
}

func invalidRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", msg)
}
