package order

import "entitlement-engine/internal/pkg/errs"

var (
	ErrPriceMismatch        = errs.New("amount does not match package price")
	ErrCurrencyMismatch     = errs.New("currency does not match package currency")
	ErrInvalidPackage       = errs.New("package cannot be sold")
	ErrConflictingReference = errs.New("order already has a different gateway reference")
	ErrOrderNotOpen         = errs.New("order is no longer open")
	ErrNotRefundable        = errs.New("only paid orders can be refunded")
	ErrInvalidOutcome       = errs.New("invalid payment outcome")
	ErrEmptyReference       = errs.New("gateway reference is required")
)

type State string

const (
	StateCreated  State = "created"
	StatePending  State = "pending"
	StatePaid     State = "paid"
	StateFailed   State = "failed"
	StateExpired  State = "expired"
	StateRefunded State = "refunded"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateCreated, StatePending, StatePaid, StateFailed, StateExpired, StateRefunded:
		return true
	default:
		return false
	}
}

func (s State) IsOpen() bool {
	return s == StateCreated || s == StatePending
}

// Outcome is what the gateway (or reconciliation) reports for an order.
type Outcome string

const (
	OutcomePaid     Outcome = "paid"
	OutcomeFailed   Outcome = "failed"
	OutcomeExpired  Outcome = "expired"
	OutcomeRefunded Outcome = "refunded"
)

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomePaid, OutcomeFailed, OutcomeExpired, OutcomeRefunded:
		return true
	default:
		return false
	}
}

// terminal maps a completion outcome onto its first terminal state.
// Refunds are not completions and have no mapping.
func (o Outcome) terminal() (State, bool) {
	switch o {
	case OutcomePaid:
		return StatePaid, true
	case OutcomeFailed:
		return StateFailed, true
	case OutcomeExpired:
		return StateExpired, true
	default:
		return "", false
	}
}
