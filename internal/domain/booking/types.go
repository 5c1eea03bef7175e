package booking

import "entitlement-engine/internal/pkg/errs"

var (
	ErrInvalidDate        = errs.New("session date must be formatted as YYYY-MM-DD")
	ErrOutOfWindow        = errs.New("session date is outside the booking window")
	ErrInvalidSlot        = errs.New("slot is not an offered time slot")
	ErrInvalidPlatform    = errs.New("unsupported meeting platform")
	ErrAgendaTooLong      = errs.New("agenda exceeds maximum length")
	ErrInvalidTransition  = errs.New("booking cannot move to the requested status")
	ErrCancellationClosed = errs.New("booking can no longer be cancelled")
	ErrCounsellorRequired = errs.New("counsellor is required to confirm a booking")
)

type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen bookings still hold a counsellor slot or a pending request.
func (s Status) IsOpen() bool {
	return s == StatusRequested || s == StatusConfirmed
}

type Platform string

const (
	PlatformGoogleMeet Platform = "google_meet"
	PlatformZoom       Platform = "zoom"
	PlatformTeams      Platform = "microsoft_teams"
	PlatformPhone      Platform = "phone"
)

func NewPlatform(s string) (Platform, error) {
	p := Platform(s)
	switch p {
	case PlatformGoogleMeet, PlatformZoom, PlatformTeams, PlatformPhone:
		return p, nil
	default:
		return "", ErrInvalidPlatform
	}
}

func (p Platform) String() string {
	return string(p)
}
