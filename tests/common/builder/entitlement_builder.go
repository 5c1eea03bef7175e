//go:build unit || e2e

package builder

import (
	"time"

	"entitlement-engine/internal/domain/catalog"
	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type EntitlementBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	OrderID      uuid.UUID
	Package      catalog.Package
	Status       entitlement.Status
	EnrolledAt   time.Time
	ExpiresAt    time.Time
	SessionsUsed int
}

func NewEntitlementBuilder() *EntitlementBuilder {
	enrolled := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pkg := NewPackageBuilder().Build()
	return &EntitlementBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		OrderID:    uuid.New(),
		Package:    pkg,
		Status:     entitlement.StatusActive,
		EnrolledAt: enrolled,
		ExpiresAt:  enrolled.AddDate(0, 0, pkg.ValidityDays),
	}
}

func (b *EntitlementBuilder) With(mutate func(*EntitlementBuilder)) *EntitlementBuilder {
	mutate(b)
	return b
}

func (b *EntitlementBuilder) WithPackage(p catalog.Package) *EntitlementBuilder {
	b.Package = p
	b.ExpiresAt = b.EnrolledAt.AddDate(0, 0, p.ValidityDays)
	return b
}

func (b *EntitlementBuilder) WithUsed(n int) *EntitlementBuilder {
	b.SessionsUsed = n
	return b
}

func (b *EntitlementBuilder) InStatus(s entitlement.Status) *EntitlementBuilder {
	b.Status = s
	return b
}

func (b *EntitlementBuilder) OwnedBy(userID uuid.UUID) *EntitlementBuilder {
	b.UserID = userID
	return b
}

func (b *EntitlementBuilder) BuildDomain() *entitlement.Entitlement {
	return entitlement.Reconstruct(entitlement.ReconstructParams{
		ID:           b.ID,
		UserID:       b.UserID,
		OrderID:      b.OrderID,
		Snapshot:     b.Package,
		Status:       b.Status,
		EnrolledAt:   b.EnrolledAt,
		ExpiresAt:    b.ExpiresAt,
		SessionsUsed: b.SessionsUsed,
		CreatedAt:    b.EnrolledAt,
		UpdatedAt:    b.EnrolledAt,
	})
}

func (b *EntitlementBuilder) BuildView() *queries.EntitlementView {
	return &queries.EntitlementView{
		ID:                b.ID,
		UserID:            b.UserID,
		OrderID:           b.OrderID,
		PackageID:         b.Package.ID,
		PackageName:       b.Package.Name,
		Kind:              b.Package.Kind.String(),
		Status:            b.Status.String(),
		Features:          b.Package.Features,
		EnrolledAt:        b.EnrolledAt,
		ExpiresAt:         b.ExpiresAt,
		MaxSessions:       b.Package.SessionQuota(),
		SessionsUsed:      b.SessionsUsed,
		SessionsRemaining: entitlement.RemainingSessions(b.Package.SessionQuota(), b.SessionsUsed),
	}
}
