package catalogstore

import (
	"context"

	"entitlement-engine/internal/domain/catalog"
	"entitlement-engine/internal/infra"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PackageQueries interface {
	GetPackageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Packages, error)
}

// PostgresReader reads packages straight from the packages table on
// whichever connection or transaction the caller passes in.
type PostgresReader struct {
	queries PackageQueries
}

func NewPostgresReader(queries PackageQueries) *PostgresReader {
	return &PostgresReader{queries: queries}
}

func (r *PostgresReader) PackageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (catalog.Package, error) {
	row, err := r.queries.GetPackageByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return catalog.Package{}, catalog.ErrNotFound
		}
		return catalog.Package{}, infra.WrapRepoErr("failed to get package", err)
	}
	return packageFromRow(row), nil
}

func packageFromRow(row sqlc.Packages) catalog.Package {
	features := row.Features
	if features == nil {
		features = []string{}
	}
	return catalog.Package{
		ID:                     row.ID,
		Name:                   row.Name,
		Kind:                   catalog.Kind(row.Kind),
		PriceMinor:             row.PriceMinor,
		DiscountPriceMinor:     pgconv.Int64PtrFromPgtype(row.DiscountPriceMinor),
		Currency:               row.Currency,
		ValidityDays:           int(row.ValidityDays),
		MaxSessions:            int(row.MaxSessions),
		SessionDurationMinutes: int(row.SessionDurationMinutes),
		Features:               features,
		Active:                 row.IsActive,
	}
}
