package response

import (
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PackageResponse struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Kind                   string    `json:"kind"`
	PriceMinor             int64     `json:"priceMinor"`
	DiscountPriceMinor     *int64    `json:"discountPriceMinor,omitempty"`
	EffectivePriceMinor    int64     `json:"effectivePriceMinor"`
	Currency               string    `json:"currency"`
	ValidityDays           int       `json:"validityDays"`
	MaxSessions            int       `json:"maxSessions"`
	SessionDurationMinutes int       `json:"sessionDurationMinutes"`
	Features               []string  `json:"features"`
}

func FromPackageView(v *queries.PackageView) (*PackageResponse, error) {
	var res PackageResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	if res.Features == nil {
		res.Features = []string{}
	}
	return &res, nil
}
