package converter

import (
	"entitlement-engine/internal/domain/order"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		ID:          o.ID(),
		UserID:      o.UserID(),
		PackageID:   o.PackageID(),
		AmountMinor: o.Amount(),
		Currency:    o.Currency(),
		State:       o.State().String(),
		CreatedAt:   pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderToUpdateParams(o *order.Order, expected order.State) sqlc.UpdateOrderStateParams {
	return sqlc.UpdateOrderStateParams{
		State:            o.State().String(),
		GatewayOrderID:   pgconv.StringPtrToPgtype(o.GatewayOrderID()),
		PaymentSessionID: pgconv.StringPtrToPgtype(o.PaymentSessionID()),
		NeedsReview:      o.NeedsReview(),
		ReviewReason:     pgconv.StringPtrToPgtype(o.ReviewReason()),
		CompletedAt:      pgconv.TimePtrToPgtype(o.CompletedAt()),
		RefundedAt:       pgconv.TimePtrToPgtype(o.RefundedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(o.UpdatedAt()),
		ID:               o.ID(),
		ExpectedState:    expected.String(),
	}
}

func OrderFromRow(row sqlc.Orders) *order.Order {
	return order.Reconstruct(order.ReconstructParams{
		ID:               row.ID,
		UserID:           row.UserID,
		PackageID:        row.PackageID,
		Amount:           row.AmountMinor,
		Currency:         row.Currency,
		GatewayOrderID:   pgconv.StringPtrFromPgtype(row.GatewayOrderID),
		PaymentSessionID: pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		State:            order.State(row.State),
		NeedsReview:      row.NeedsReview,
		ReviewReason:     pgconv.StringPtrFromPgtype(row.ReviewReason),
		CompletedAt:      pgconv.TimePtrFromPgtype(row.CompletedAt),
		RefundedAt:       pgconv.TimePtrFromPgtype(row.RefundedAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
