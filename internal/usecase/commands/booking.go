package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/pkg/clock"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/pkg/obs"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	requestSessionEndpoint = "POST /api/enrollments/:id/sessions"
	defaultIdempotencyTTL  = 24 * time.Hour
)

type RequestSessionInput struct {
	EntitlementID  uuid.UUID
	Date           string
	Slot           string
	Platform       string
	Agenda         string
	IdempotencyKey *uuid.UUID
}

type RequestSessionResult struct {
	Booking           *booking.Booking
	SessionsRemaining int
	IsReplayed        bool
}

type BookingCommands interface {
	RequestSession(ctx context.Context, userID uuid.UUID, in RequestSessionInput) (*RequestSessionResult, error)
	Cancel(ctx context.Context, userID, bookingID uuid.UUID, reason string) (*booking.Booking, error)
	Confirm(ctx context.Context, bookingID, counsellorID uuid.UUID) (*booking.Booking, error)
	Complete(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	MarkNoShow(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	policy         booking.Policy
	clock          clock.Clock
	idempotencyTTL time.Duration
}

func NewBookingUseCase(uow shared.UnitOfWork, policy booking.Policy, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		policy:         policy,
		clock:          clk,
		idempotencyTTL: defaultIdempotencyTTL,
	}
}

type sessionRequest struct {
	date     booking.SessionDate
	slot     booking.Slot
	platform booking.Platform
	agenda   booking.Agenda
}

// RequestSession books one session against an entitlement. The quota
// decrement, the booking row, the idempotency record and the outbox event
// commit together or not at all.
func (uc *bookingUseCaseImpl) RequestSession(ctx context.Context, userID uuid.UUID, in RequestSessionInput) (res *RequestSessionResult, err error) {
	ctx, span := obs.Start(ctx, "booking.request_session")
	defer func() { obs.End(span, err) }()

	platform, err := booking.NewPlatform(in.Platform)
	if err != nil {
		return nil, err
	}
	agenda, err := booking.NewAgenda(in.Agenda)
	if err != nil {
		return nil, err
	}
	date, err := booking.ParseSessionDate(in.Date)
	if err != nil {
		return nil, err
	}
	req := sessionRequest{date: date, platform: platform, agenda: agenda}
	requestHash := calculateRequestHash(in)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		if in.IdempotencyKey != nil {
			replay, err := uc.handleIdempotency(ctx, tx, *in.IdempotencyKey, userID, requestHash, now)
			if err != nil {
				return err
			}
			if replay != nil {
				res = replay
				return nil
			}
		}

		ent, err := tx.Entitlements().FindByIDForUpdate(ctx, tx.DB(), in.EntitlementID)
		if err != nil {
			if isNotFound(err) {
				return ErrEntitlementNotFound
			}
			return err
		}
		if ent.UserID() != userID {
			return ErrEntitlementNotFound
		}
		if !ent.IsUsable(now) {
			return ErrEntitlementInactive
		}
		if err := uc.policy.CheckWindow(req.date, now, ent.ExpiresAt()); err != nil {
			return err
		}
		if req.slot, err = booking.NewSlot(in.Slot); err != nil {
			return err
		}
		if err := uc.policy.CheckStart(req.date, req.slot, ent.ExpiresAt()); err != nil {
			return err
		}

		consumed, err := consumeInTx(ctx, tx, ent.ID(), now)
		if err != nil {
			switch reason, _ := entitlement.DenialOf(err); reason {
			case entitlement.DenialExhausted:
				return ErrQuotaExhausted
			case entitlement.DenialExpired, entitlement.DenialNotActive:
				return ErrEntitlementInactive
			default:
				return err
			}
		}

		b := booking.NewBooking(uuid.New(), ent.ID(), userID, req.date, req.slot, req.platform, req.agenda, now)
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}

		if in.IdempotencyKey != nil {
			err = tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *in.IdempotencyKey, userID, calculateResponseHash(b), b.ID())
			if err != nil {
				return err
			}
		}

		err = appendEvent(ctx, tx, shared.AggregateBooking, b.ID(), shared.EventBookingRequested, map[string]any{
			"bookingId":     b.ID(),
			"entitlementId": ent.ID(),
			"userId":        userID,
			"date":          b.Date().String(),
			"slot":          b.Slot().String(),
			"platform":      b.Platform(),
		}, now)
		if err != nil {
			return err
		}

		res = &RequestSessionResult{Booking: b, SessionsRemaining: consumed.SessionsRemaining()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !res.IsReplayed {
		slog.Info("session requested",
			"booking_id", res.Booking.ID(),
			"entitlement_id", in.EntitlementID,
			"user_id", userID,
			"sessions_remaining", res.SessionsRemaining)
	}
	return res, nil
}

// handleIdempotency claims the key for this request. A nil result with a nil
// error means the caller should go ahead and book.
func (uc *bookingUseCaseImpl) handleIdempotency(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string, now time.Time) (*RequestSessionResult, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, requestSessionEndpoint, requestHash, now.Add(uc.idempotencyTTL))
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().Get(ctx, tx.DB(), key, userID)
	if err != nil {
		return nil, err
	}
	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		b, err := tx.Reads().BookingByID(ctx, *existing.ResultBookingID)
		if err != nil {
			return nil, err
		}
		ent, err := tx.Reads().EntitlementByID(ctx, b.EntitlementID())
		if err != nil {
			return nil, err
		}
		return &RequestSessionResult{Booking: b, SessionsRemaining: ent.SessionsRemaining(), IsReplayed: true}, nil
	case shared.IdempotencyProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

// Cancel lets the owner withdraw a booking before it starts; the session goes
// back to the entitlement.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, userID, bookingID uuid.UUID, reason string) (*booking.Booking, error) {
	var b *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		var err error
		b, err = uc.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.UserID() != userID {
			return ErrBookingNotFound
		}

		prev := b.Status()
		if err := b.CancelByUser(reason, now, uc.policy.StartsAt(b.Date(), b.Slot())); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, tx.DB(), b, prev); err != nil {
			return err
		}
		// false when the counter is already at zero
		released, err := tx.Entitlements().ReleaseSession(ctx, tx.DB(), b.EntitlementID(), now)
		if err != nil {
			return err
		}
		return appendEvent(ctx, tx, shared.AggregateBooking, b.ID(), shared.EventBookingCancelled, map[string]any{
			"bookingId":     b.ID(),
			"entitlementId": b.EntitlementID(),
			"userId":        b.UserID(),
			"reason":        b.CancelReason(),
			"released":      released,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("booking cancelled", "booking_id", b.ID(), "user_id", userID)
	return b, nil
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, bookingID, counsellorID uuid.UUID) (*booking.Booking, error) {
	b, err := uc.transition(ctx, bookingID, shared.EventBookingConfirmed, func(b *booking.Booking, now time.Time) error {
		return b.Confirm(counsellorID, now)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) Complete(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, bookingID, shared.EventBookingCompleted, func(b *booking.Booking, now time.Time) error {
		return b.Complete(now)
	})
}

func (uc *bookingUseCaseImpl) MarkNoShow(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, bookingID, shared.EventBookingNoShow, func(b *booking.Booking, now time.Time) error {
		return b.MarkNoShow(now)
	})
}

func (uc *bookingUseCaseImpl) transition(ctx context.Context, bookingID uuid.UUID, eventType string, apply func(*booking.Booking, time.Time) error) (*booking.Booking, error) {
	var b *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		var err error
		b, err = uc.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		prev := b.Status()
		if err := apply(b, now); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, tx.DB(), b, prev); err != nil {
			return err
		}
		return appendEvent(ctx, tx, shared.AggregateBooking, b.ID(), eventType, map[string]any{
			"bookingId":     b.ID(),
			"entitlementId": b.EntitlementID(),
			"userId":        b.UserID(),
			"status":        b.Status(),
			"counsellorId":  b.CounsellorID(),
		}, now)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("booking status changed", "booking_id", b.ID(), "status", b.Status())
	return b, nil
}

func (uc *bookingUseCaseImpl) lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Idempotency().DeleteExpired(ctx, tx.DB(), uc.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("expired idempotency keys purged", "count", n)
	}
	return n, nil
}

func calculateRequestHash(in RequestSessionInput) string {
	data, _ := json.Marshal(struct {
		EntitlementID uuid.UUID `json:"entitlementId"`
		Date          string    `json:"date"`
		Slot          string    `json:"slot"`
		Platform      string    `json:"platform"`
		Agenda        string    `json:"agenda"`
	}{in.EntitlementID, in.Date, in.Slot, in.Platform, in.Agenda})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateResponseHash(b *booking.Booking) string {
	data, _ := json.Marshal(map[string]any{
		"id":            b.ID(),
		"entitlementId": b.EntitlementID(),
		"date":          b.Date().String(),
		"slot":          b.Slot().String(),
		"status":        b.Status(),
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
