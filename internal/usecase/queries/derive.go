package queries

import (
	"time"

	"entitlement-engine/internal/domain/entitlement"
)

// derive fills the computed counters. An active row already past its expiry is
// reported as expired so readers never depend on the sweep having run.
func derive(v *EntitlementView, now time.Time) {
	v.SessionsRemaining = entitlement.RemainingSessions(v.MaxSessions, v.SessionsUsed)
	v.DaysRemaining = entitlement.RemainingDays(v.ExpiresAt, now)
	if v.Status == entitlement.StatusActive.String() && now.After(v.ExpiresAt) {
		v.Status = entitlement.StatusExpired.String()
	}
}
