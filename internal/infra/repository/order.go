package repository

import (
	"context"
	"time"

	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/infra/repository/converter"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	GetOrderByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOrderByGatewayIDForUpdate(ctx context.Context, db sqlc.DBTX, gatewayOrderID pgtype.Text) (sqlc.Orders, error)
	UpdateOrderState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStateParams) (int64, error)
	ExpireStaleOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireStaleOrdersParams) ([]uuid.UUID, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return converter.OrderFromRow(row), nil
}

func (r *OrderRepository) FindByGatewayRefForUpdate(ctx context.Context, tx sqlc.DBTX, ref string) (*order.Order, error) {
	row, err := r.queries.GetOrderByGatewayIDForUpdate(ctx, tx, pgconv.StringToPgtype(ref))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found for gateway reference", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order by gateway reference", err)
	}
	return converter.OrderFromRow(row), nil
}

func (r *OrderRepository) Save(ctx context.Context, tx sqlc.DBTX, o *order.Order, expected order.State) error {
	n, err := r.queries.UpdateOrderState(ctx, tx, converter.OrderToUpdateParams(o, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if n == 0 {
		return shared.ErrStaleWrite
	}
	return nil
}

func (r *OrderRepository) ExpireStale(ctx context.Context, tx sqlc.DBTX, now, cutoff time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ExpireStaleOrders(ctx, tx, sqlc.ExpireStaleOrdersParams{
		Now:    pgconv.TimeToPgtype(now),
		Cutoff: pgconv.TimeToPgtype(cutoff),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire stale orders", err)
	}
	return ids, nil
}
