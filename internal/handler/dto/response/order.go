package response

import (
	"time"

	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateOrderResponse struct {
	OrderID          uuid.UUID `json:"orderId"`
	GatewayOrderID   string    `json:"gatewayOrderId"`
	PaymentSessionID string    `json:"paymentSessionId"`
	State            string    `json:"state"`
}

func FromCreateOrderResult(r *commands.CreateOrderResult) *CreateOrderResponse {
	res := &CreateOrderResponse{
		OrderID:          r.Order.ID(),
		PaymentSessionID: r.PaymentSessionID,
		State:            r.Order.State().String(),
	}
	if ref := r.Order.GatewayOrderID(); ref != nil {
		res.GatewayOrderID = *ref
	}
	return res
}

type OrderResponse struct {
	ID               uuid.UUID  `json:"id"`
	PackageID        uuid.UUID  `json:"packageId"`
	PackageName      string     `json:"packageName"`
	AmountMinor      int64      `json:"amount"`
	Currency         string     `json:"currency"`
	GatewayOrderID   *string    `json:"gatewayOrderId,omitempty"`
	PaymentSessionID *string    `json:"paymentSessionId,omitempty"`
	State            string     `json:"state"`
	NeedsReview      bool       `json:"needsReview"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var res OrderResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type NotificationResponse struct {
	OrderID       uuid.UUID  `json:"orderId"`
	State         string     `json:"state"`
	Applied       bool       `json:"applied"`
	Flagged       bool       `json:"flagged"`
	EntitlementID *uuid.UUID `json:"entitlementId,omitempty"`
}

func FromCompletionResult(r *commands.CompletionResult) *NotificationResponse {
	return &NotificationResponse{
		OrderID:       r.OrderID,
		State:         r.State.String(),
		Applied:       r.Applied,
		Flagged:       r.Flagged,
		EntitlementID: r.EntitlementID,
	}
}

type RefundResponse struct {
	OrderID       uuid.UUID  `json:"orderId"`
	State         string     `json:"state"`
	Applied       bool       `json:"applied"`
	EntitlementID *uuid.UUID `json:"entitlementId,omitempty"`
}

func FromRefundResult(r *commands.RefundResult) *RefundResponse {
	return &RefundResponse{
		OrderID:       r.OrderID,
		State:         r.State.String(),
		Applied:       r.Applied,
		EntitlementID: r.EntitlementID,
	}
}
