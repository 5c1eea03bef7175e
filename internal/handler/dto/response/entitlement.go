package response

import (
	"time"

	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EntitlementResponse struct {
	ID                uuid.UUID `json:"id"`
	OrderID           uuid.UUID `json:"orderId"`
	PackageID         uuid.UUID `json:"packageId"`
	PackageName       string    `json:"packageName"`
	Kind              string    `json:"kind"`
	Status            string    `json:"status"`
	Features          []string  `json:"features"`
	EnrolledAt        time.Time `json:"enrolledAt"`
	ExpiresAt         time.Time `json:"expiresAt"`
	MaxSessions       int       `json:"maxSessions"`
	SessionsUsed      int       `json:"sessionsUsed"`
	SessionsRemaining int       `json:"sessionsRemaining"`
	DaysRemaining     int       `json:"daysRemaining"`
}

func FromEntitlementView(v *queries.EntitlementView) (*EntitlementResponse, error) {
	var res EntitlementResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	if res.Features == nil {
		res.Features = []string{}
	}
	return &res, nil
}

func FromEntitlementViews(vs []*queries.EntitlementView) ([]*EntitlementResponse, error) {
	res := make([]*EntitlementResponse, 0, len(vs))
	for _, v := range vs {
		item, err := FromEntitlementView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

type RevokeResponse struct {
	EntitlementID     uuid.UUID   `json:"entitlementId"`
	Status            string      `json:"status"`
	Applied           bool        `json:"applied"`
	CancelledBookings []uuid.UUID `json:"cancelledBookings"`
}

func FromRevokeResult(r *commands.RevokeResult) *RevokeResponse {
	cancelled := r.CancelledBookings
	if cancelled == nil {
		cancelled = []uuid.UUID{}
	}
	return &RevokeResponse{
		EntitlementID:     r.EntitlementID,
		Status:            r.Status.String(),
		Applied:           r.Applied,
		CancelledBookings: cancelled,
	}
}
