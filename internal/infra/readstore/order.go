package readstore

import (
	"context"

	"entitlement-engine/internal/infra"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderViewByIDRow, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view by id", err)
	}
	return &queries.OrderView{
		ID:               row.ID,
		UserID:           row.UserID,
		PackageID:        row.PackageID,
		PackageName:      row.PackageName,
		AmountMinor:      row.AmountMinor,
		Currency:         row.Currency,
		GatewayOrderID:   pgconv.StringPtrFromPgtype(row.GatewayOrderID),
		PaymentSessionID: pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		State:            row.State,
		NeedsReview:      row.NeedsReview,
		CompletedAt:      pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
