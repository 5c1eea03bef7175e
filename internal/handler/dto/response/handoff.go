package response

import (
	"entitlement-engine/internal/domain/handoff"

	"github.com/google/uuid"
)

type HandoffResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

type ExchangeHandoffResponse struct {
	AccessToken   string     `json:"accessToken"`
	RefreshToken  string     `json:"refreshToken"`
	Redirect      string     `json:"redirect"`
	EntitlementID *uuid.UUID `json:"entitlementId,omitempty"`
}

func FromCredential(c handoff.Credential) *ExchangeHandoffResponse {
	return &ExchangeHandoffResponse{
		AccessToken:   c.AccessToken,
		RefreshToken:  c.RefreshToken,
		Redirect:      c.Redirect,
		EntitlementID: c.EntitlementID,
	}
}
