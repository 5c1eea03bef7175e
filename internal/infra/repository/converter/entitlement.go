package converter

import (
	"encoding/json"

	"entitlement-engine/internal/domain/catalog"
	"entitlement-engine/internal/domain/entitlement"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/pkg/pgconv"
)

func EntitlementToInsertParams(e *entitlement.Entitlement) (sqlc.InsertEntitlementParams, error) {
	snapshot, err := json.Marshal(e.Snapshot())
	if err != nil {
		return sqlc.InsertEntitlementParams{}, errs.Wrap(err, "failed to encode package snapshot")
	}
	return sqlc.InsertEntitlementParams{
		ID:              e.ID(),
		UserID:          e.UserID(),
		OrderID:         e.OrderID(),
		Kind:            e.Kind().String(),
		PackageSnapshot: snapshot,
		Status:          e.Status().String(),
		EnrolledAt:      pgconv.TimeToPgtype(e.EnrolledAt()),
		ExpiresAt:       pgconv.TimeToPgtype(e.ExpiresAt()),
		MaxSessions:     int32(e.MaxSessions()),
		SessionsUsed:    int32(e.SessionsUsed()),
		CreatedAt:       pgconv.TimeToPgtype(e.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(e.UpdatedAt()),
	}, nil
}

// EntitlementFromRow trusts the max_sessions column over the snapshot so the
// stored quota is what callers see.
func EntitlementFromRow(row sqlc.Entitlements) (*entitlement.Entitlement, error) {
	var snapshot catalog.Package
	if err := json.Unmarshal(row.PackageSnapshot, &snapshot); err != nil {
		return nil, errs.Wrap(err, "failed to decode package snapshot")
	}
	snapshot.Kind = catalog.Kind(row.Kind)
	snapshot.MaxSessions = int(row.MaxSessions)

	return entitlement.Reconstruct(entitlement.ReconstructParams{
		ID:           row.ID,
		UserID:       row.UserID,
		OrderID:      row.OrderID,
		Snapshot:     snapshot,
		Status:       entitlement.Status(row.Status),
		EnrolledAt:   pgconv.TimeFromPgtype(row.EnrolledAt),
		ExpiresAt:    pgconv.TimeFromPgtype(row.ExpiresAt),
		SessionsUsed: int(row.SessionsUsed),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
