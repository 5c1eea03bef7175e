package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id            uuid.UUID
	entitlementID uuid.UUID
	userID        uuid.UUID
	date          SessionDate
	slot          Slot
	platform      Platform
	agenda        Agenda
	status        Status
	counsellorID  *uuid.UUID
	cancelReason  *string
	cancelledAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(id, entitlementID, userID uuid.UUID, date SessionDate, slot Slot, platform Platform, agenda Agenda, now time.Time) *Booking {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Booking{
		id:            id,
		entitlementID: entitlementID,
		userID:        userID,
		date:          date,
		slot:          slot,
		platform:      platform,
		agenda:        agenda,
		status:        StatusRequested,
		createdAt:     now,
		updatedAt:     now,
	}
}

type ReconstructParams struct {
	ID            uuid.UUID
	EntitlementID uuid.UUID
	UserID        uuid.UUID
	Date          SessionDate
	Slot          Slot
	Platform      Platform
	Agenda        Agenda
	Status        Status
	CounsellorID  *uuid.UUID
	CancelReason  *string
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:            p.ID,
		entitlementID: p.EntitlementID,
		userID:        p.UserID,
		date:          p.Date,
		slot:          p.Slot,
		platform:      p.Platform,
		agenda:        p.Agenda,
		status:        p.Status,
		counsellorID:  p.CounsellorID,
		cancelReason:  p.CancelReason,
		cancelledAt:   p.CancelledAt,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) EntitlementID() uuid.UUID { return b.entitlementID }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) Date() SessionDate        { return b.date }
func (b *Booking) Slot() Slot               { return b.slot }
func (b *Booking) Platform() Platform       { return b.platform }
func (b *Booking) Agenda() Agenda           { return b.agenda }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CounsellorID() *uuid.UUID { return b.counsellorID }
func (b *Booking) CancelReason() *string    { return b.cancelReason }
func (b *Booking) CancelledAt() *time.Time  { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Booking) Confirm(counsellorID uuid.UUID, now time.Time) error {
	if counsellorID == uuid.Nil {
		return ErrCounsellorRequired
	}
	if b.status != StatusRequested {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	b.counsellorID = &counsellorID
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) MarkNoShow(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusNoShow
	b.updatedAt = now
	return nil
}

// CancelByUser is allowed until the session starts. A successful cancel
// always hands the consumed session back to the entitlement.
func (b *Booking) CancelByUser(reason string, now, startsAt time.Time) error {
	if !b.status.IsOpen() {
		return ErrInvalidTransition
	}
	if !now.Before(startsAt) {
		return ErrCancellationClosed
	}
	b.cancel(reason, now)
	return nil
}

// CancelByRevocation is used when the owning entitlement is revoked.
// No session is released since the entitlement is terminal.
func (b *Booking) CancelByRevocation(reason string, now time.Time) bool {
	if !b.status.IsOpen() {
		return false
	}
	b.cancel(reason, now)
	return true
}

func (b *Booking) cancel(reason string, now time.Time) {
	reason = strings.TrimSpace(reason)
	if reason != "" {
		b.cancelReason = &reason
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	b.updatedAt = now
}
