package catalog

import (
	"strings"

	"entitlement-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errs.New("package not found")
	ErrInvalidKind     = errs.New("invalid package kind")
	ErrInvalidPrice    = errs.New("package price must be positive")
	ErrInvalidCurrency = errs.New("package currency must be an ISO-4217 code")
	ErrInvalidValidity = errs.New("package validity must be at least one day")
	ErrInvalidQuota    = errs.New("counselling package must offer at least one session")
)

type Kind string

const (
	KindContent     Kind = "content"
	KindCounselling Kind = "counselling"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindContent, KindCounselling:
		return true
	default:
		return false
	}
}

// Package is a read-only copy of a sellable catalog item.
// Entitlements embed it as a snapshot so later catalog edits never change a purchase.
type Package struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Kind                   Kind      `json:"kind"`
	PriceMinor             int64     `json:"priceMinor"`
	DiscountPriceMinor     *int64    `json:"discountPriceMinor,omitempty"`
	Currency               string    `json:"currency"`
	ValidityDays           int       `json:"validityDays"`
	MaxSessions            int       `json:"maxSessions"`
	SessionDurationMinutes int       `json:"sessionDurationMinutes"`
	Features               []string  `json:"features"`

	// Active is catalog state, not part of a purchase snapshot.
	Active bool `json:"-"`
}

// EffectivePrice is the discounted price when one is set, otherwise the list price.
func (p Package) EffectivePrice() int64 {
	if p.DiscountPriceMinor != nil && *p.DiscountPriceMinor > 0 {
		return *p.DiscountPriceMinor
	}
	return p.PriceMinor
}

// SessionQuota is zero for content packages.
func (p Package) SessionQuota() int {
	if p.Kind != KindCounselling {
		return 0
	}
	return p.MaxSessions
}

func (p Package) SameCurrency(currency string) bool {
	return strings.EqualFold(p.Currency, strings.TrimSpace(currency))
}

func (p Package) Validate() error {
	if !p.Kind.IsValid() {
		return ErrInvalidKind
	}
	if p.EffectivePrice() <= 0 {
		return ErrInvalidPrice
	}
	if len(p.Currency) != 3 {
		return ErrInvalidCurrency
	}
	if p.ValidityDays < 1 {
		return ErrInvalidValidity
	}
	if p.Kind == KindCounselling && p.MaxSessions < 1 {
		return ErrInvalidQuota
	}
	return nil
}
