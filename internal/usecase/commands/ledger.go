package commands

import (
	"context"
	"log/slog"
	"time"

	"entitlement-engine/internal/domain/catalog"
	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/pkg/clock"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConsumeResult struct {
	Allowed           bool
	Reason            entitlement.DenialReason
	SessionsUsed      int
	SessionsRemaining int
}

type RevokeResult struct {
	EntitlementID     uuid.UUID
	Status            entitlement.Status
	Applied           bool
	CancelledBookings []uuid.UUID
}

type LedgerCommands interface {
	Materialize(ctx context.Context, orderID uuid.UUID) (*entitlement.Entitlement, error)
	ConsumeSession(ctx context.Context, entitlementID uuid.UUID) (*ConsumeResult, error)
	ReleaseSession(ctx context.Context, entitlementID uuid.UUID) (bool, error)
	ExpireSweep(ctx context.Context) (int64, error)
	Revoke(ctx context.Context, entitlementID uuid.UUID, reason entitlement.RevokeReason) (*RevokeResult, error)
}

type ledgerUseCaseImpl struct {
	uow     shared.UnitOfWork
	catalog CatalogReader
	clock   clock.Clock
}

func NewLedgerUseCase(uow shared.UnitOfWork, catalog CatalogReader, clk clock.Clock) LedgerCommands {
	return &ledgerUseCaseImpl{uow: uow, catalog: catalog, clock: clk}
}

func (uc *ledgerUseCaseImpl) Materialize(ctx context.Context, orderID uuid.UUID) (*entitlement.Entitlement, error) {
	var ent *entitlement.Entitlement
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if isNotFound(err) {
				return ErrOrderNotFound
			}
			return err
		}
		if ord.State() != order.StatePaid {
			return ErrOrderNotPaid
		}
		pkg, err := uc.catalog.PackageByID(ctx, tx.DB(), ord.PackageID())
		if err != nil {
			return err
		}
		ent, _, err = materializeInTx(ctx, tx, ord, pkg, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return ent, nil
}

func (uc *ledgerUseCaseImpl) ConsumeSession(ctx context.Context, entitlementID uuid.UUID) (*ConsumeResult, error) {
	var result *ConsumeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ent, err := consumeInTx(ctx, tx, entitlementID, uc.clock.Now())
		if err != nil {
			reason, denied := entitlement.DenialOf(err)
			if !denied {
				return err
			}
			result = &ConsumeResult{Allowed: false, Reason: reason}
			if ent != nil {
				result.SessionsUsed = ent.SessionsUsed()
				result.SessionsRemaining = ent.SessionsRemaining()
			}
			return nil
		}
		result = &ConsumeResult{
			Allowed:           true,
			SessionsUsed:      ent.SessionsUsed(),
			SessionsRemaining: ent.SessionsRemaining(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ledgerUseCaseImpl) ReleaseSession(ctx context.Context, entitlementID uuid.UUID) (bool, error) {
	var released bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		released, err = tx.Entitlements().ReleaseSession(ctx, tx.DB(), entitlementID, uc.clock.Now())
		return err
	})
	return released, err
}

// ExpireSweep leaves bookings alone; already scheduled sessions still happen.
func (uc *ledgerUseCaseImpl) ExpireSweep(ctx context.Context) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Entitlements().ExpireDue(ctx, tx.DB(), uc.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("entitlements expired", "count", n)
	}
	return n, nil
}

func (uc *ledgerUseCaseImpl) Revoke(ctx context.Context, entitlementID uuid.UUID, reason entitlement.RevokeReason) (*RevokeResult, error) {
	var result *RevokeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		result, err = revokeInTx(ctx, tx, entitlementID, reason, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// materializeInTx grants the entitlement for a paid order at most once.
// The boolean is false when an entitlement already existed.
func materializeInTx(ctx context.Context, tx shared.Tx, ord *order.Order, pkg catalog.Package, now time.Time) (*entitlement.Entitlement, bool, error) {
	existing, err := tx.Entitlements().FindByOrderID(ctx, tx.DB(), ord.ID())
	if err == nil {
		return existing, false, nil
	}
	if !isNotFound(err) {
		return nil, false, err
	}

	ent, err := entitlement.Materialize(uuid.New(), ord.ID(), ord.UserID(), pkg, now)
	if err != nil {
		return nil, false, err
	}
	inserted, err := tx.Entitlements().Insert(ctx, tx.DB(), ent)
	if err != nil {
		return nil, false, err
	}
	if !inserted {
		existing, err = tx.Entitlements().FindByOrderID(ctx, tx.DB(), ord.ID())
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	err = appendEvent(ctx, tx, shared.AggregateEntitlement, ent.ID(), shared.EventEntitlementGranted, map[string]any{
		"entitlementId": ent.ID(),
		"orderId":       ord.ID(),
		"userId":        ord.UserID(),
		"packageId":     pkg.ID,
		"kind":          pkg.Kind,
		"expiresAt":     ent.ExpiresAt(),
		"maxSessions":   ent.MaxSessions(),
	}, now)
	if err != nil {
		return nil, false, err
	}
	return ent, true, nil
}

// consumeInTx takes one session with a single guarded UPDATE. When nothing was
// updated the row is read back only to explain why.
func consumeInTx(ctx context.Context, tx shared.Tx, entitlementID uuid.UUID, now time.Time) (*entitlement.Entitlement, error) {
	_, ok, err := tx.Entitlements().ConsumeSession(ctx, tx.DB(), entitlementID, now)
	if err != nil {
		return nil, err
	}

	ent, rerr := tx.Entitlements().FindByIDForUpdate(ctx, tx.DB(), entitlementID)
	if rerr != nil {
		if isNotFound(rerr) {
			return nil, ErrEntitlementNotFound
		}
		return nil, rerr
	}
	if ok {
		return ent, nil
	}

	if reason := ent.CheckConsumable(now); reason != nil {
		return ent, reason
	}
	// the row changed between the update and the read; report the quota as gone
	return ent, entitlement.ErrExhausted
}

func revokeInTx(ctx context.Context, tx shared.Tx, entitlementID uuid.UUID, reason entitlement.RevokeReason, now time.Time) (*RevokeResult, error) {
	ent, err := tx.Entitlements().FindByIDForUpdate(ctx, tx.DB(), entitlementID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEntitlementNotFound
		}
		return nil, err
	}

	prev := ent.Status()
	changed, err := ent.Revoke(reason, now)
	if err != nil {
		return nil, err
	}
	result := &RevokeResult{EntitlementID: ent.ID(), Status: ent.Status(), Applied: changed}
	if !changed {
		return result, nil
	}

	ok, err := tx.Entitlements().UpdateStatus(ctx, tx.DB(), ent.ID(), ent.Status(), prev, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Mark(errs.New("entitlement status changed during revoke"), shared.ErrStaleWrite)
	}

	cancelled, err := tx.Bookings().CancelOpenByEntitlement(ctx, tx.DB(), ent.ID(), "entitlement "+ent.Status().String(), now)
	if err != nil {
		return nil, err
	}
	result.CancelledBookings = cancelled

	err = appendEvent(ctx, tx, shared.AggregateEntitlement, ent.ID(), shared.EventEntitlementRevoked, map[string]any{
		"entitlementId":     ent.ID(),
		"userId":            ent.UserID(),
		"reason":            reason,
		"cancelledBookings": cancelled,
	}, now)
	if err != nil {
		return nil, err
	}
	return result, nil
}
