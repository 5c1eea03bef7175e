package entitlement

import (
	"time"

	"entitlement-engine/internal/domain/catalog"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

type Entitlement struct {
	id           uuid.UUID
	userID       uuid.UUID
	orderID      uuid.UUID
	snapshot     catalog.Package
	status       Status
	enrolledAt   time.Time
	expiresAt    time.Time
	sessionsUsed int
	createdAt    time.Time
	updatedAt    time.Time
}

// Materialize grants a new active entitlement for a paid order.
func Materialize(id, orderID, userID uuid.UUID, snapshot catalog.Package, enrolledAt time.Time) (*Entitlement, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, ErrInvalidSnapshot
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Entitlement{
		id:         id,
		userID:     userID,
		orderID:    orderID,
		snapshot:   snapshot,
		status:     StatusActive,
		enrolledAt: enrolledAt,
		expiresAt:  enrolledAt.Add(time.Duration(snapshot.ValidityDays) * day),
		createdAt:  enrolledAt,
		updatedAt:  enrolledAt,
	}, nil
}

type ReconstructParams struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	OrderID      uuid.UUID
	Snapshot     catalog.Package
	Status       Status
	EnrolledAt   time.Time
	ExpiresAt    time.Time
	SessionsUsed int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func Reconstruct(p ReconstructParams) *Entitlement {
	return &Entitlement{
		id:           p.ID,
		userID:       p.UserID,
		orderID:      p.OrderID,
		snapshot:     p.Snapshot,
		status:       p.Status,
		enrolledAt:   p.EnrolledAt,
		expiresAt:    p.ExpiresAt,
		sessionsUsed: p.SessionsUsed,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

func (e *Entitlement) ID() uuid.UUID             { return e.id }
func (e *Entitlement) UserID() uuid.UUID         { return e.userID }
func (e *Entitlement) OrderID() uuid.UUID        { return e.orderID }
func (e *Entitlement) Snapshot() catalog.Package { return e.snapshot }
func (e *Entitlement) Kind() catalog.Kind        { return e.snapshot.Kind }
func (e *Entitlement) Status() Status            { return e.status }
func (e *Entitlement) EnrolledAt() time.Time     { return e.enrolledAt }
func (e *Entitlement) ExpiresAt() time.Time      { return e.expiresAt }
func (e *Entitlement) SessionsUsed() int         { return e.sessionsUsed }
func (e *Entitlement) MaxSessions() int          { return e.snapshot.SessionQuota() }
func (e *Entitlement) CreatedAt() time.Time      { return e.createdAt }
func (e *Entitlement) UpdatedAt() time.Time      { return e.updatedAt }

func (e *Entitlement) SessionsRemaining() int {
	return RemainingSessions(e.MaxSessions(), e.sessionsUsed)
}

func (e *Entitlement) DaysRemaining(now time.Time) int {
	return RemainingDays(e.expiresAt, now)
}

// IsUsable is true while the entitlement is active and inside its validity window.
// An active row past expiresAt is treated as expired even before the sweep runs.
func (e *Entitlement) IsUsable(now time.Time) bool {
	return e.status == StatusActive && !now.After(e.expiresAt)
}

// CheckConsumable returns the reason a session cannot be taken, if any.
// Status is checked before time so revoked entitlements report NOT_ACTIVE.
func (e *Entitlement) CheckConsumable(now time.Time) error {
	switch {
	case e.status == StatusExpired:
		return ErrExpired
	case e.status != StatusActive:
		return ErrNotActive
	case now.After(e.expiresAt):
		return ErrExpired
	case e.SessionsRemaining() <= 0:
		return ErrExhausted
	default:
		return nil
	}
}

func (e *Entitlement) ConsumeSession(now time.Time) error {
	if err := e.CheckConsumable(now); err != nil {
		return err
	}
	e.sessionsUsed++
	e.updatedAt = now
	return nil
}

// ReleaseSession gives one session back. The remaining count never exceeds the quota.
func (e *Entitlement) ReleaseSession(now time.Time) bool {
	if e.sessionsUsed == 0 {
		return false
	}
	e.sessionsUsed--
	e.updatedAt = now
	return true
}

// Expire moves an active entitlement past its window to expired. Bookings are untouched.
func (e *Entitlement) Expire(now time.Time) bool {
	if e.status != StatusActive || !now.After(e.expiresAt) {
		return false
	}
	e.status = StatusExpired
	e.updatedAt = now
	return true
}

// Revoke is terminal. Revoking again with the same reason is a no-op.
func (e *Entitlement) Revoke(reason RevokeReason, now time.Time) (bool, error) {
	target, ok := reason.status()
	if !ok {
		return false, ErrInvalidRevokeReason
	}
	if e.status == target {
		return false, nil
	}
	if e.status == StatusCancelled || e.status == StatusRefunded {
		return false, ErrNotActive
	}
	e.status = target
	e.updatedAt = now
	return true, nil
}

func RemainingSessions(maxSessions, used int) int {
	if r := maxSessions - used; r > 0 {
		return r
	}
	return 0
}

// RemainingDays rounds partial days up so an entitlement expiring later today reports 1.
func RemainingDays(expiresAt, now time.Time) int {
	left := expiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	days := int(left / day)
	if left%day != 0 {
		days++
	}
	return days
}
