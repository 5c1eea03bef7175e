package queries

import (
	"time"

	"entitlement-engine/internal/domain/user"

	"github.com/google/uuid"
)

type OrderView struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	PackageID        uuid.UUID  `json:"package_id"`
	PackageName      string     `json:"package_name"`
	AmountMinor      int64      `json:"amount_minor"`
	Currency         string     `json:"currency"`
	GatewayOrderID   *string    `json:"gateway_order_id,omitempty"`
	PaymentSessionID *string    `json:"payment_session_id,omitempty"`
	State            string     `json:"state"`
	NeedsReview      bool       `json:"needs_review"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// EntitlementView carries the stored row plus the derived counters callers see.
type EntitlementView struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	OrderID           uuid.UUID `json:"order_id"`
	PackageID         uuid.UUID `json:"package_id"`
	PackageName       string    `json:"package_name"`
	Kind              string    `json:"kind"`
	Status            string    `json:"status"`
	Features          []string  `json:"features"`
	EnrolledAt        time.Time `json:"enrolled_at"`
	ExpiresAt         time.Time `json:"expires_at"`
	MaxSessions       int       `json:"max_sessions"`
	SessionsUsed      int       `json:"sessions_used"`
	SessionsRemaining int       `json:"sessions_remaining"`
	DaysRemaining     int       `json:"days_remaining"`
}

type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	EntitlementID uuid.UUID  `json:"entitlement_id"`
	UserID        uuid.UUID  `json:"user_id"`
	SessionDate   string     `json:"session_date"`
	Slot          string     `json:"slot"`
	Platform      string     `json:"platform"`
	Agenda        string     `json:"agenda"`
	Status        string     `json:"status"`
	CounsellorID  *uuid.UUID `json:"counsellor_id,omitempty"`
	CancelReason  *string    `json:"cancel_reason,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Actor is the authenticated caller of a query.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// CanSee lets operators and admins read any record; everyone else only their own.
func (a Actor) CanSee(owner uuid.UUID) bool {
	switch a.Role {
	case user.RoleAdmin, user.RoleOperator:
		return true
	default:
		return a.UserID == owner
	}
}

type PackageView struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Kind                   string    `json:"kind"`
	PriceMinor             int64     `json:"price_minor"`
	DiscountPriceMinor     *int64    `json:"discount_price_minor,omitempty"`
	EffectivePriceMinor    int64     `json:"effective_price_minor"`
	Currency               string    `json:"currency"`
	ValidityDays           int       `json:"validity_days"`
	MaxSessions            int       `json:"max_sessions"`
	SessionDurationMinutes int       `json:"session_duration_minutes"`
	Features               []string  `json:"features"`
}
