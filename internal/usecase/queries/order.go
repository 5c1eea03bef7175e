package queries

import (
	"context"

	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor Actor) (*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

// GetByID hides other users' orders behind not-found.
func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor Actor) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !actor.CanSee(view.UserID) {
		return nil, ErrOrderNotFound
	}
	return view, nil
}
