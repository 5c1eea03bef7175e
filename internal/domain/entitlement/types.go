package entitlement

import "entitlement-engine/internal/pkg/errs"

var (
	ErrNotActive           = errs.New("entitlement is not active")
	ErrExpired             = errs.New("entitlement has expired")
	ErrExhausted           = errs.New("no sessions remaining")
	ErrInvalidRevokeReason = errs.New("invalid revoke reason")
	ErrInvalidSnapshot     = errs.New("invalid package snapshot")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

type RevokeReason string

const (
	RevokeCancelled RevokeReason = "cancelled"
	RevokeRefunded  RevokeReason = "refunded"
)

func (r RevokeReason) status() (Status, bool) {
	switch r {
	case RevokeCancelled:
		return StatusCancelled, true
	case RevokeRefunded:
		return StatusRefunded, true
	default:
		return "", false
	}
}

// DenialReason is the stable code returned when a session cannot be consumed.
type DenialReason string

const (
	DenialExpired   DenialReason = "EXPIRED"
	DenialExhausted DenialReason = "EXHAUSTED"
	DenialNotActive DenialReason = "NOT_ACTIVE"
)

// DenialOf maps a consumption error to its reason code.
func DenialOf(err error) (DenialReason, bool) {
	switch {
	case errs.Is(err, ErrExpired):
		return DenialExpired, true
	case errs.Is(err, ErrExhausted):
		return DenialExhausted, true
	case errs.Is(err, ErrNotActive):
		return DenialNotActive, true
	default:
		return "", false
	}
}
