package booking

import "time"

// Policy holds the scheduling rules that depend on deployment settings.
type Policy struct {
	Location *time.Location
	LeadDays int
}

func NewPolicy(timezone string, leadDays int) (Policy, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Policy{}, err
	}
	if leadDays < 1 {
		leadDays = 1
	}
	return Policy{Location: loc, LeadDays: leadDays}, nil
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// CheckWindow accepts a date at least LeadDays after today and no later than
// the entitlement's expiry day, both taken in the business time zone. The
// expiry day itself is only partly bookable; CheckStart settles the slot.
func (p Policy) CheckWindow(date SessionDate, now, expiresAt time.Time) error {
	loc := p.location()
	earliest := DateOf(now.In(loc).AddDate(0, 0, p.LeadDays))
	latest := DateOf(expiresAt.In(loc))
	if date.Before(earliest) || date.After(latest) {
		return ErrOutOfWindow
	}
	return nil
}

// CheckStart rejects a slot whose start falls after expiresAt.
func (p Policy) CheckStart(date SessionDate, slot Slot, expiresAt time.Time) error {
	if p.StartsAt(date, slot).After(expiresAt) {
		return ErrOutOfWindow
	}
	return nil
}

// StartsAt is the wall-clock start of a slot on a date in the business time zone.
func (p Policy) StartsAt(date SessionDate, slot Slot) time.Time {
	return date.In(p.location()).Add(slot.Offset())
}
