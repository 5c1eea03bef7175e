//go:build unit || e2e

package builder

import (
	"entitlement-engine/internal/domain/catalog"

	"github.com/google/uuid"
)

type PackageBuilder struct {
	pkg catalog.Package
}

func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{pkg: catalog.Package{
		ID:                     uuid.New(),
		Name:                   "Counselling 3-pack",
		Kind:                   catalog.KindCounselling,
		PriceMinor:             499900,
		Currency:               "INR",
		ValidityDays:           90,
		MaxSessions:            3,
		SessionDurationMinutes: 30,
		Features:               []string{"video", "notes"},
		Active:                 true,
	}}
}

// Content switches to a content-only package without sessions.
func (b *PackageBuilder) Content() *PackageBuilder {
	b.pkg.Name = "Past papers"
	b.pkg.Kind = catalog.KindContent
	b.pkg.PriceMinor = 99900
	b.pkg.ValidityDays = 365
	b.pkg.MaxSessions = 0
	b.pkg.SessionDurationMinutes = 0
	b.pkg.Features = []string{"papers"}
	return b
}

func (b *PackageBuilder) With(mutate func(*catalog.Package)) *PackageBuilder {
	mutate(&b.pkg)
	return b
}

func (b *PackageBuilder) WithDiscount(price int64) *PackageBuilder {
	b.pkg.DiscountPriceMinor = &price
	return b
}

func (b *PackageBuilder) WithSessions(n int) *PackageBuilder {
	b.pkg.MaxSessions = n
	return b
}

func (b *PackageBuilder) WithValidityDays(n int) *PackageBuilder {
	b.pkg.ValidityDays = n
	return b
}

func (b *PackageBuilder) Inactive() *PackageBuilder {
	b.pkg.Active = false
	return b
}

func (b *PackageBuilder) Build() catalog.Package {
	p := b.pkg
	p.Features = append([]string(nil), b.pkg.Features...)
	return p
}
