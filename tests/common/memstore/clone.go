//go:build unit

package memstore

import (
	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/domain/order"
)

func orderParams(o *order.Order) order.ReconstructParams {
	return order.ReconstructParams{
		ID:               o.ID(),
		UserID:           o.UserID(),
		PackageID:        o.PackageID(),
		Amount:           o.Amount(),
		Currency:         o.Currency(),
		GatewayOrderID:   o.GatewayOrderID(),
		PaymentSessionID: o.PaymentSessionID(),
		State:            o.State(),
		NeedsReview:      o.NeedsReview(),
		ReviewReason:     o.ReviewReason(),
		CompletedAt:      o.CompletedAt(),
		RefundedAt:       o.RefundedAt(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
}

func cloneOrder(o *order.Order) *order.Order {
	return order.Reconstruct(orderParams(o))
}

func entitlementParams(e *entitlement.Entitlement) entitlement.ReconstructParams {
	return entitlement.ReconstructParams{
		ID:           e.ID(),
		UserID:       e.UserID(),
		OrderID:      e.OrderID(),
		Snapshot:     e.Snapshot(),
		Status:       e.Status(),
		EnrolledAt:   e.EnrolledAt(),
		ExpiresAt:    e.ExpiresAt(),
		SessionsUsed: e.SessionsUsed(),
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.UpdatedAt(),
	}
}

func cloneEntitlement(e *entitlement.Entitlement) *entitlement.Entitlement {
	return entitlement.Reconstruct(entitlementParams(e))
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(booking.ReconstructParams{
		ID:            b.ID(),
		EntitlementID: b.EntitlementID(),
		UserID:        b.UserID(),
		Date:          b.Date(),
		Slot:          b.Slot(),
		Platform:      b.Platform(),
		Agenda:        b.Agenda(),
		Status:        b.Status(),
		CounsellorID:  b.CounsellorID(),
		CancelReason:  b.CancelReason(),
		CancelledAt:   b.CancelledAt(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	})
}
