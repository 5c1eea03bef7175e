package response

import (
	"time"

	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	EntitlementID uuid.UUID  `json:"entitlementId"`
	SessionDate   string     `json:"date"`
	Slot          string     `json:"slot"`
	Platform      string     `json:"platform"`
	Agenda        string     `json:"agenda"`
	Status        string     `json:"status"`
	CounsellorID  *uuid.UUID `json:"counsellorId,omitempty"`
	CancelReason  *string    `json:"cancelReason,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		EntitlementID: b.EntitlementID(),
		SessionDate:   b.Date().String(),
		Slot:          b.Slot().String(),
		Platform:      b.Platform().String(),
		Agenda:        b.Agenda().String(),
		Status:        b.Status().String(),
		CounsellorID:  b.CounsellorID(),
		CancelReason:  b.CancelReason(),
		CancelledAt:   b.CancelledAt(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(vs []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(vs))
	for _, v := range vs {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

type RequestSessionResponse struct {
	Booking           *BookingResponse `json:"booking"`
	SessionsRemaining int              `json:"sessionsRemaining"`
}

func FromRequestSessionResult(r *commands.RequestSessionResult) *RequestSessionResponse {
	return &RequestSessionResponse{
		Booking:           FromBooking(r.Booking),
		SessionsRemaining: r.SessionsRemaining,
	}
}
