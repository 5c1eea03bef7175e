package repository

import (
	"context"
	"time"

	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/infra/repository/converter"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EntitlementWriteQueries interface {
	InsertEntitlement(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertEntitlementParams) (int64, error)
	GetEntitlementByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Entitlements, error)
	GetEntitlementByOrderID(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Entitlements, error)
	ConsumeEntitlementSession(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeEntitlementSessionParams) (sqlc.ConsumeEntitlementSessionRow, error)
	ReleaseEntitlementSession(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseEntitlementSessionParams) (int64, error)
	UpdateEntitlementStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEntitlementStatusParams) (int64, error)
	ExpireEntitlements(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type EntitlementRepository struct {
	queries EntitlementWriteQueries
	db      sqlc.DBTX
}

func NewEntitlementRepository(queries EntitlementWriteQueries, db sqlc.DBTX) *EntitlementRepository {
	return &EntitlementRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EntitlementRepository) Insert(ctx context.Context, tx sqlc.DBTX, e *entitlement.Entitlement) (bool, error) {
	params, err := converter.EntitlementToInsertParams(e)
	if err != nil {
		return false, infra.WrapRepoErr("failed to build entitlement row", err)
	}
	n, err := r.queries.InsertEntitlement(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert entitlement", err)
	}
	return n == 1, nil
}

func (r *EntitlementRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*entitlement.Entitlement, error) {
	row, err := r.queries.GetEntitlementByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("entitlement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock entitlement", err)
	}
	return r.toDomain(row)
}

func (r *EntitlementRepository) FindByOrderID(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*entitlement.Entitlement, error) {
	row, err := r.queries.GetEntitlementByOrderID(ctx, tx, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("entitlement not found for order", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get entitlement by order", err)
	}
	return r.toDomain(row)
}

func (r *EntitlementRepository) ConsumeSession(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) (int, bool, error) {
	row, err := r.queries.ConsumeEntitlementSession(ctx, tx, sqlc.ConsumeEntitlementSessionParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to consume entitlement session", err)
	}
	return int(row.SessionsUsed), true, nil
}

func (r *EntitlementRepository) ReleaseSession(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.ReleaseEntitlementSession(ctx, tx, sqlc.ReleaseEntitlementSessionParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to release entitlement session", err)
	}
	return n == 1, nil
}

func (r *EntitlementRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status, expected entitlement.Status, now time.Time) (bool, error) {
	n, err := r.queries.UpdateEntitlementStatus(ctx, tx, sqlc.UpdateEntitlementStatusParams{
		Status:         status.String(),
		UpdatedAt:      pgconv.TimeToPgtype(now),
		ID:             id,
		ExpectedStatus: expected.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update entitlement status", err)
	}
	return n == 1, nil
}

func (r *EntitlementRepository) ExpireDue(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.ExpireEntitlements(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire entitlements", err)
	}
	return n, nil
}

func (r *EntitlementRepository) toDomain(row sqlc.Entitlements) (*entitlement.Entitlement, error) {
	e, err := converter.EntitlementFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map entitlement row", err)
	}
	return e, nil
}
