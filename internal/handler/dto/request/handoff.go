package request

import "github.com/google/uuid"

type IssueHandoffRequest struct {
	Redirect      string     `json:"redirect"`
	EntitlementID *uuid.UUID `json:"entitlementId,omitempty"`
}

type ExchangeHandoffRequest struct {
	Code string `json:"code" binding:"required"`
}
