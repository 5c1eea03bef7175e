package request

import (
	"strings"

	"entitlement-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type RequestSessionRequest struct {
	Date     string `json:"date" binding:"required"`
	Slot     string `json:"slot" binding:"required"`
	Platform string `json:"platform" binding:"required"`
	Agenda   string `json:"agenda"`
}

func (r RequestSessionRequest) ToInput(entitlementID uuid.UUID, idempotencyKey *uuid.UUID) commands.RequestSessionInput {
	return commands.RequestSessionInput{
		EntitlementID:  entitlementID,
		Date:           strings.TrimSpace(r.Date),
		Slot:           strings.TrimSpace(r.Slot),
		Platform:       strings.TrimSpace(r.Platform),
		Agenda:         r.Agenda,
		IdempotencyKey: idempotencyKey,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ConfirmBookingRequest struct {
	CounsellorID uuid.UUID `json:"counsellorId" binding:"required"`
}
