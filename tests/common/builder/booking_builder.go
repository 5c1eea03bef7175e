//go:build unit || e2e

package builder

import (
	"time"

	"entitlement-engine/internal/domain/booking"
	reqdto "entitlement-engine/internal/handler/dto/request"
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	EntitlementID uuid.UUID
	UserID        uuid.UUID
	Date          string
	Slot          string
	Platform      string
	Agenda        string
	Status        booking.Status
	CounsellorID  *uuid.UUID
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		EntitlementID: uuid.New(),
		UserID:        uuid.New(),
		Date:          "2025-03-14",
		Slot:          "10:30",
		Platform:      booking.PlatformGoogleMeet.String(),
		Agenda:        "University shortlist",
		Status:        booking.StatusRequested,
		CreatedAt:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) For(entitlementID, userID uuid.UUID) *BookingBuilder {
	b.EntitlementID = entitlementID
	b.UserID = userID
	return b
}

func (b *BookingBuilder) Confirmed(counsellorID uuid.UUID) *BookingBuilder {
	b.Status = booking.StatusConfirmed
	b.CounsellorID = &counsellorID
	return b
}

func (b *BookingBuilder) InStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

// BuildDomain panics on invalid values; builders only carry valid defaults.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	date, err := booking.ParseSessionDate(b.Date)
	if err != nil {
		panic(err)
	}
	slot, err := booking.NewSlot(b.Slot)
	if err != nil {
		panic(err)
	}
	platform, err := booking.NewPlatform(b.Platform)
	if err != nil {
		panic(err)
	}
	agenda, err := booking.NewAgenda(b.Agenda)
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(booking.ReconstructParams{
		ID:            b.ID,
		EntitlementID: b.EntitlementID,
		UserID:        b.UserID,
		Date:          date,
		Slot:          slot,
		Platform:      platform,
		Agenda:        agenda,
		Status:        b.Status,
		CounsellorID:  b.CounsellorID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	})
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.RequestSessionRequest {
	return reqdto.RequestSessionRequest{
		Date:     b.Date,
		Slot:     b.Slot,
		Platform: b.Platform,
		Agenda:   b.Agenda,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		EntitlementID: b.EntitlementID,
		UserID:        b.UserID,
		SessionDate:   b.Date,
		Slot:          b.Slot,
		Platform:      b.Platform,
		Agenda:        b.Agenda,
		Status:        b.Status.String(),
		CounsellorID:  b.CounsellorID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}
