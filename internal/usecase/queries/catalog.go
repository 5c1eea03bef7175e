package queries

import (
	"context"

	"entitlement-engine/internal/domain/catalog"

	"github.com/google/uuid"
)

var ErrPackageNotFound = catalog.ErrNotFound

// PackageReader may serve from a cache, so views can trail catalog edits.
type PackageReader interface {
	PackageByID(ctx context.Context, id uuid.UUID) (catalog.Package, error)
}

type CatalogQueries interface {
	GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error)
}

type catalogQueriesImpl struct {
	reader PackageReader
}

func NewCatalogQueries(reader PackageReader) CatalogQueries {
	return &catalogQueriesImpl{reader: reader}
}

// GetPackage hides retired packages the same as missing ones.
func (q *catalogQueriesImpl) GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	pkg, err := q.reader.PackageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, ErrPackageNotFound
	}
	return &PackageView{
		ID:                     pkg.ID,
		Name:                   pkg.Name,
		Kind:                   pkg.Kind.String(),
		PriceMinor:             pkg.PriceMinor,
		DiscountPriceMinor:     pkg.DiscountPriceMinor,
		EffectivePriceMinor:    pkg.EffectivePrice(),
		Currency:               pkg.Currency,
		ValidityDays:           pkg.ValidityDays,
		MaxSessions:            pkg.SessionQuota(),
		SessionDurationMinutes: pkg.SessionDurationMinutes,
		Features:               pkg.Features,
	}, nil
}
