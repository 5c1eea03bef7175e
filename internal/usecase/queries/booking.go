package queries

import (
	"context"

	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByEntitlement(ctx context.Context, entitlementID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor Actor) (*BookingView, error)
	ListByEntitlement(ctx context.Context, entitlementID uuid.UUID, actor Actor) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore    BookingReadStore
	entitlements EntitlementReadStore
}

func NewBookingQueries(readStore BookingReadStore, entitlements EntitlementReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, entitlements: entitlements}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor Actor) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.CanSee(view.UserID) {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

// ListByEntitlement checks ownership on the entitlement so an empty list
// never leaks whether someone else's entitlement exists.
func (q *bookingQueriesImpl) ListByEntitlement(ctx context.Context, entitlementID uuid.UUID, actor Actor) ([]*BookingView, error) {
	ent, err := q.entitlements.FindByID(ctx, entitlementID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEntitlementNotFound
		}
		return nil, err
	}
	if !actor.CanSee(ent.UserID) {
		return nil, ErrEntitlementNotFound
	}
	views, err := q.readStore.ListByEntitlement(ctx, entitlementID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*BookingView{}
	}
	return views, nil
}
