package order

import (
	"strings"
	"time"

	"entitlement-engine/internal/domain/catalog"

	"github.com/google/uuid"
)

type Order struct {
	id               uuid.UUID
	userID           uuid.UUID
	packageID        uuid.UUID
	amount           int64
	currency         string
	gatewayOrderID   *string
	paymentSessionID *string
	state            State
	needsReview      bool
	reviewReason     *string
	completedAt      *time.Time
	refundedAt       *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// Completion describes what CompleteOrder did to the order.
// Applied is true only for the call that moved the order out of an open state.
type Completion struct {
	Previous State
	State    State
	Applied  bool
	Flagged  bool
}

// PaidNow reports whether this completion is the one that should grant access.
func (c Completion) PaidNow() bool {
	return c.Applied && c.State == StatePaid
}

func NewOrder(id, userID uuid.UUID, pkg catalog.Package, amount int64, currency string, now time.Time) (*Order, error) {
	if err := pkg.Validate(); err != nil {
		return nil, ErrInvalidPackage
	}
	if !pkg.SameCurrency(currency) {
		return nil, ErrCurrencyMismatch
	}
	if amount != pkg.EffectivePrice() {
		return nil, ErrPriceMismatch
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Order{
		id:        id,
		userID:    userID,
		packageID: pkg.ID,
		amount:    amount,
		currency:  strings.ToUpper(pkg.Currency),
		state:     StateCreated,
		createdAt: now,
		updatedAt: now,
	}, nil
}

type ReconstructParams struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	PackageID        uuid.UUID
	Amount           int64
	Currency         string
	GatewayOrderID   *string
	PaymentSessionID *string
	State            State
	NeedsReview      bool
	ReviewReason     *string
	CompletedAt      *time.Time
	RefundedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func Reconstruct(p ReconstructParams) *Order {
	return &Order{
		id:               p.ID,
		userID:           p.UserID,
		packageID:        p.PackageID,
		amount:           p.Amount,
		currency:         p.Currency,
		gatewayOrderID:   p.GatewayOrderID,
		paymentSessionID: p.PaymentSessionID,
		state:            p.State,
		needsReview:      p.NeedsReview,
		reviewReason:     p.ReviewReason,
		completedAt:      p.CompletedAt,
		refundedAt:       p.RefundedAt,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}
}

func (o *Order) ID() uuid.UUID             { return o.id }
func (o *Order) UserID() uuid.UUID         { return o.userID }
func (o *Order) PackageID() uuid.UUID      { return o.packageID }
func (o *Order) Amount() int64             { return o.amount }
func (o *Order) Currency() string          { return o.currency }
func (o *Order) GatewayOrderID() *string   { return o.gatewayOrderID }
func (o *Order) PaymentSessionID() *string { return o.paymentSessionID }
func (o *Order) State() State              { return o.state }
func (o *Order) NeedsReview() bool         { return o.needsReview }
func (o *Order) ReviewReason() *string     { return o.reviewReason }
func (o *Order) CompletedAt() *time.Time   { return o.completedAt }
func (o *Order) RefundedAt() *time.Time    { return o.refundedAt }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }

// MarkPending records the gateway reference. Repeating it with the same
// reference is a no-op; a different reference is rejected.
func (o *Order) MarkPending(ref, paymentSessionID string, now time.Time) (bool, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false, ErrEmptyReference
	}
	if o.gatewayOrderID != nil {
		if *o.gatewayOrderID != ref {
			return false, ErrConflictingReference
		}
		return false, nil
	}
	if o.state != StateCreated {
		return false, ErrOrderNotOpen
	}

	o.gatewayOrderID = &ref
	if paymentSessionID != "" {
		o.paymentSessionID = &paymentSessionID
	}
	o.state = StatePending
	o.updatedAt = now
	return true, nil
}

// Complete applies a gateway outcome. Only the first outcome moves the order;
// later ones are no-ops, except a payment arriving after failure or expiry,
// which is flagged for manual review without changing the state.
func (o *Order) Complete(outcome Outcome, now time.Time) (Completion, error) {
	target, ok := outcome.terminal()
	if !ok {
		return Completion{}, ErrInvalidOutcome
	}

	result := Completion{Previous: o.state, State: o.state}

	if o.state.IsOpen() {
		o.state = target
		o.completedAt = &now
		o.updatedAt = now
		result.State = target
		result.Applied = true
		return result, nil
	}

	if outcome == OutcomePaid && (o.state == StateFailed || o.state == StateExpired) && !o.needsReview {
		reason := "payment received after order " + o.state.String()
		o.needsReview = true
		o.reviewReason = &reason
		o.updatedAt = now
		result.Flagged = true
	}

	return result, nil
}

// Refund moves a paid order to refunded. Refunding twice is a no-op.
func (o *Order) Refund(now time.Time) (bool, error) {
	switch o.state {
	case StateRefunded:
		return false, nil
	case StatePaid:
		o.state = StateRefunded
		o.refundedAt = &now
		o.updatedAt = now
		return true, nil
	default:
		return false, ErrNotRefundable
	}
}

// IsStale reports whether an open order has outlived the pending timeout.
func (o *Order) IsStale(now time.Time, timeout time.Duration) bool {
	return o.state.IsOpen() && now.Sub(o.createdAt) > timeout
}
