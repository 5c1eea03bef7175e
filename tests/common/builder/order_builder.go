//go:build unit || e2e

package builder

import (
	"time"

	"entitlement-engine/internal/domain/catalog"
	"entitlement-engine/internal/domain/order"
	reqdto "entitlement-engine/internal/handler/dto/request"
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Package     catalog.Package
	State       order.State
	GatewayRef  *string
	NeedsReview bool
	CreatedAt   time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Package:   NewPackageBuilder().Build(),
		State:     order.StateCreated,
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithPackage(p catalog.Package) *OrderBuilder {
	b.Package = p
	return b
}

// Pending sets the state and a gateway reference.
func (b *OrderBuilder) Pending(ref string) *OrderBuilder {
	b.State = order.StatePending
	b.GatewayRef = &ref
	return b
}

func (b *OrderBuilder) InState(s order.State) *OrderBuilder {
	b.State = s
	return b
}

func (b *OrderBuilder) BuildDomain() *order.Order {
	var completedAt, refundedAt *time.Time
	if !b.State.IsOpen() {
		t := b.CreatedAt.Add(time.Minute)
		completedAt = &t
	}
	if b.State == order.StateRefunded {
		t := b.CreatedAt.Add(time.Hour)
		refundedAt = &t
	}
	return order.Reconstruct(order.ReconstructParams{
		ID:             b.ID,
		UserID:         b.UserID,
		PackageID:      b.Package.ID,
		Amount:         b.Package.EffectivePrice(),
		Currency:       b.Package.Currency,
		GatewayOrderID: b.GatewayRef,
		State:          b.State,
		NeedsReview:    b.NeedsReview,
		CompletedAt:    completedAt,
		RefundedAt:     refundedAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	})
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		PackageID: b.Package.ID,
		Amount:    b.Package.EffectivePrice(),
		Currency:  b.Package.Currency,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:             b.ID,
		UserID:         b.UserID,
		PackageID:      b.Package.ID,
		PackageName:    b.Package.Name,
		AmountMinor:    b.Package.EffectivePrice(),
		Currency:       b.Package.Currency,
		GatewayOrderID: b.GatewayRef,
		State:          b.State.String(),
		NeedsReview:    b.NeedsReview,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}
