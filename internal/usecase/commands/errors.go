package commands

import (
	"entitlement-engine/internal/domain/catalog"
	"entitlement-engine/internal/pkg/errs"
)

var (
	ErrPackageNotFound        = catalog.ErrNotFound
	ErrOrderNotFound          = errs.New("order not found")
	ErrOrderNotPaid           = errs.New("order is not paid")
	ErrGatewayUnavailable     = errs.New("payment gateway unavailable")
	ErrUntrustedNotification  = errs.New("payment notification could not be verified")
	ErrEntitlementNotFound    = errs.New("entitlement not found")
	ErrEntitlementInactive    = errs.New("entitlement is not active")
	ErrQuotaExhausted         = errs.New("no sessions remaining")
	ErrBookingNotFound        = errs.New("booking not found")
	ErrSlotUnavailable        = errs.New("counsellor already has a confirmed booking in this slot")
	ErrIdempotencyKeyReused   = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrNotAuthenticated       = errs.New("not authenticated")
	ErrHandoffCodeInvalid     = errs.New("handoff code is invalid or already used")
	ErrHandoffExchangeRefused = errs.New("handoff exchange secret rejected")
)
