package readstore

import (
	"context"
	"encoding/json"

	"entitlement-engine/internal/domain/catalog"
	"entitlement-engine/internal/infra"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type EntitlementViewQueries interface {
	GetEntitlementByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Entitlements, error)
	ListEntitlementsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Entitlements, error)
}

type EntitlementReadStore struct {
	queries EntitlementViewQueries
	db      sqlc.DBTX
}

func NewEntitlementReadStore(queries EntitlementViewQueries, db sqlc.DBTX) *EntitlementReadStore {
	return &EntitlementReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EntitlementReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EntitlementView, error) {
	row, err := r.queries.GetEntitlementByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("entitlement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get entitlement by id", err)
	}
	return toEntitlementView(row)
}

func (r *EntitlementReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.EntitlementView, error) {
	rows, err := r.queries.ListEntitlementsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list entitlements by user", err)
	}
	views := make([]*queries.EntitlementView, 0, len(rows))
	for _, row := range rows {
		v, err := toEntitlementView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toEntitlementView(row sqlc.Entitlements) (*queries.EntitlementView, error) {
	var snapshot catalog.Package
	if err := json.Unmarshal(row.PackageSnapshot, &snapshot); err != nil {
		return nil, infra.WrapRepoErr("failed to decode package snapshot", err)
	}
	features := snapshot.Features
	if features == nil {
		features = []string{}
	}
	return &queries.EntitlementView{
		ID:           row.ID,
		UserID:       row.UserID,
		OrderID:      row.OrderID,
		PackageID:    snapshot.ID,
		PackageName:  snapshot.Name,
		Kind:         row.Kind,
		Status:       row.Status,
		Features:     features,
		EnrolledAt:   pgconv.TimeFromPgtype(row.EnrolledAt),
		ExpiresAt:    pgconv.TimeFromPgtype(row.ExpiresAt),
		MaxSessions:  int(row.MaxSessions),
		SessionsUsed: int(row.SessionsUsed),
	}, nil
}
