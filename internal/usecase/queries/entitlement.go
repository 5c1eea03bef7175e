package queries

import (
	"context"

	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/pkg/clock"
	"entitlement-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEntitlementNotFound = errs.New("entitlement not found")
)

type EntitlementReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EntitlementView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*EntitlementView, error)
}

type EntitlementQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*EntitlementView, error)
	GetByID(ctx context.Context, id uuid.UUID, actor Actor) (*EntitlementView, error)
}

type entitlementQueriesImpl struct {
	readStore EntitlementReadStore
	clock     clock.Clock
}

func NewEntitlementQueries(readStore EntitlementReadStore, clk clock.Clock) EntitlementQueries {
	return &entitlementQueriesImpl{readStore: readStore, clock: clk}
}

func (q *entitlementQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*EntitlementView, error) {
	views, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		return []*EntitlementView{}, nil
	}
	now := q.clock.Now()
	for _, v := range views {
		derive(v, now)
	}
	return views, nil
}

func (q *entitlementQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor Actor) (*EntitlementView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEntitlementNotFound
		}
		return nil, err
	}
	if !actor.CanSee(view.UserID) {
		return nil, ErrEntitlementNotFound
	}
	derive(view, q.clock.Now())
	return view, nil
}
