//go:build unit

package memstore

import (
	"context"
	"sort"
	"time"

	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/infra"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	outboxPending   = "pending"
	outboxPublished = "published"
	outboxFailed    = "failed"
)

type orderRepo struct{ s *Store }

func (r *orderRepo) Create(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
	if err := r.s.fail("orders.create"); err != nil {
		return err
	}
	if _, ok := r.s.state.orders[o.ID()]; ok {
		return infra.WrapRepoErr("failed to create order", nil, infra.KindDuplicateKey)
	}
	r.s.state.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r *orderRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	if o, ok := r.s.state.orders[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, notFound("order not found")
}

func (r *orderRepo) FindByGatewayRefForUpdate(_ context.Context, _ sqlc.DBTX, ref string) (*order.Order, error) {
	for _, o := range r.s.state.orders {
		if o.GatewayOrderID() != nil && *o.GatewayOrderID() == ref {
			return cloneOrder(o), nil
		}
	}
	return nil, notFound("order not found for gateway reference")
}

func (r *orderRepo) Save(_ context.Context, _ sqlc.DBTX, o *order.Order, expected order.State) error {
	if err := r.s.fail("orders.save"); err != nil {
		return err
	}
	stored, ok := r.s.state.orders[o.ID()]
	if !ok || stored.State() != expected {
		return shared.ErrStaleWrite
	}
	r.s.state.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r *orderRepo) ExpireStale(_ context.Context, _ sqlc.DBTX, now, cutoff time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, o := range r.s.state.orders {
		if !o.State().IsOpen() || !o.CreatedAt().Before(cutoff) {
			continue
		}
		p := orderParams(o)
		p.State = order.StateExpired
		p.CompletedAt = &now
		p.UpdatedAt = now
		r.s.state.orders[id] = order.Reconstruct(p)
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids, nil
}

type entitlementRepo struct{ s *Store }

func (r *entitlementRepo) Insert(_ context.Context, _ sqlc.DBTX, e *entitlement.Entitlement) (bool, error) {
	if err := r.s.fail("entitlements.insert"); err != nil {
		return false, err
	}
	for _, existing := range r.s.state.entitlements {
		if existing.OrderID() == e.OrderID() {
			return false, nil
		}
	}
	r.s.state.entitlements[e.ID()] = cloneEntitlement(e)
	return true, nil
}

func (r *entitlementRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*entitlement.Entitlement, error) {
	if e, ok := r.s.state.entitlements[id]; ok {
		return cloneEntitlement(e), nil
	}
	return nil, notFound("entitlement not found")
}

func (r *entitlementRepo) FindByOrderID(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID) (*entitlement.Entitlement, error) {
	for _, e := range r.s.state.entitlements {
		if e.OrderID() == orderID {
			return cloneEntitlement(e), nil
		}
	}
	return nil, notFound("entitlement not found for order")
}

func (r *entitlementRepo) ConsumeSession(_ context.Context, _ sqlc.DBTX, id uuid.UUID, now time.Time) (int, bool, error) {
	if err := r.s.fail("entitlements.consume"); err != nil {
		return 0, false, err
	}
	e, ok := r.s.state.entitlements[id]
	if !ok || e.Status() != entitlement.StatusActive || e.ExpiresAt().Before(now) || e.SessionsUsed() >= e.MaxSessions() {
		return 0, false, nil
	}
	p := entitlementParams(e)
	p.SessionsUsed++
	p.UpdatedAt = now
	r.s.state.entitlements[id] = entitlement.Reconstruct(p)
	return p.SessionsUsed, true, nil
}

func (r *entitlementRepo) ReleaseSession(_ context.Context, _ sqlc.DBTX, id uuid.UUID, now time.Time) (bool, error) {
	e, ok := r.s.state.entitlements[id]
	if !ok || e.SessionsUsed() == 0 {
		return false, nil
	}
	p := entitlementParams(e)
	p.SessionsUsed--
	p.UpdatedAt = now
	r.s.state.entitlements[id] = entitlement.Reconstruct(p)
	return true, nil
}

func (r *entitlementRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status, expected entitlement.Status, now time.Time) (bool, error) {
	e, ok := r.s.state.entitlements[id]
	if !ok || e.Status() != expected {
		return false, nil
	}
	p := entitlementParams(e)
	p.Status = status
	p.UpdatedAt = now
	r.s.state.entitlements[id] = entitlement.Reconstruct(p)
	return true, nil
}

func (r *entitlementRepo) ExpireDue(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	var n int64
	for id, e := range r.s.state.entitlements {
		if e.Status() != entitlement.StatusActive || !e.ExpiresAt().Before(now) {
			continue
		}
		p := entitlementParams(e)
		p.Status = entitlement.StatusExpired
		p.UpdatedAt = now
		r.s.state.entitlements[id] = entitlement.Reconstruct(p)
		n++
	}
	return n, nil
}

type bookingRepo struct{ s *Store }

func (r *bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if err := r.s.fail("bookings.create"); err != nil {
		return err
	}
	r.s.state.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	if b, ok := r.s.state.bookings[id]; ok {
		return cloneBooking(b), nil
	}
	return nil, notFound("booking not found")
}

// Save enforces the one-confirmed-booking-per-counsellor-slot index.
func (r *bookingRepo) Save(_ context.Context, _ sqlc.DBTX, b *booking.Booking, expected booking.Status) error {
	stored, ok := r.s.state.bookings[b.ID()]
	if !ok || stored.Status() != expected {
		return shared.ErrStaleWrite
	}
	if b.Status() == booking.StatusConfirmed && b.CounsellorID() != nil {
		for id, other := range r.s.state.bookings {
			if id == b.ID() || other.Status() != booking.StatusConfirmed || other.CounsellorID() == nil {
				continue
			}
			if *other.CounsellorID() == *b.CounsellorID() && other.Date() == b.Date() && other.Slot() == b.Slot() {
				return infra.WrapRepoErr("failed to update booking", nil, infra.KindDuplicateKey)
			}
		}
	}
	r.s.state.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) CancelOpenByEntitlement(_ context.Context, _ sqlc.DBTX, entitlementID uuid.UUID, reason string, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, b := range r.s.state.bookings {
		if b.EntitlementID() != entitlementID || !b.Status().IsOpen() {
			continue
		}
		cp := cloneBooking(b)
		cp.CancelByRevocation(reason, now)
		r.s.state.bookings[id] = cp
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids, nil
}

type idempotencyRepo struct{ s *Store }

func (r *idempotencyRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idempotencyKey{key, userID}
	if _, ok := r.s.state.idempotency[k]; ok {
		return false, nil
	}
	r.s.state.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *idempotencyRepo) Get(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.s.state.idempotency[idempotencyKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

func (r *idempotencyRepo) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, bookingID uuid.UUID) error {
	k := idempotencyKey{key, userID}
	rec, ok := r.s.state.idempotency[k]
	if !ok {
		return nil
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultBookingID = &bookingID
	r.s.state.idempotency[k] = rec
	return nil
}

func (r *idempotencyRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	var n int64
	for k, rec := range r.s.state.idempotency {
		if rec.ExpiresAt.Before(now) {
			delete(r.s.state.idempotency, k)
			n++
		}
	}
	return n, nil
}

type outboxRepo struct{ s *Store }

func (r *outboxRepo) Append(_ context.Context, _ sqlc.DBTX, evt shared.OutboxEvent) error {
	if err := r.s.fail("outbox.append"); err != nil {
		return err
	}
	r.s.state.outbox = append(r.s.state.outbox, &OutboxRow{
		Event:       evt,
		Status:      outboxPending,
		AvailableAt: evt.OccurredAt,
	})
	return nil
}

func (r *outboxRepo) ClaimPending(_ context.Context, _ sqlc.DBTX, now time.Time, limit int32) ([]shared.OutboxEvent, error) {
	var out []shared.OutboxEvent
	for _, row := range r.s.state.outbox {
		if int32(len(out)) >= limit {
			break
		}
		if row.Status != outboxPending || row.AvailableAt.After(now) {
			continue
		}
		evt := row.Event
		evt.Attempts = row.Attempts
		out = append(out, evt)
	}
	return out, nil
}

func (r *outboxRepo) MarkPublished(_ context.Context, _ sqlc.DBTX, id uuid.UUID, now time.Time) error {
	if row := r.find(id); row != nil {
		row.Status = outboxPublished
		row.Attempts++
		row.PublishedAt = &now
		row.LastError = ""
	}
	return nil
}

func (r *outboxRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastErr string, retryAt time.Time, maxAttempts int32) error {
	if row := r.find(id); row != nil {
		row.Attempts++
		row.LastError = lastErr
		row.AvailableAt = retryAt
		if row.Attempts >= maxAttempts {
			row.Status = outboxFailed
		}
	}
	return nil
}

func (r *outboxRepo) find(id uuid.UUID) *OutboxRow {
	for _, row := range r.s.state.outbox {
		if row.Event.ID == id {
			return row
		}
	}
	return nil
}

type gatewayEventRepo struct{ s *Store }

func (r *gatewayEventRepo) Record(_ context.Context, _ sqlc.DBTX, evt shared.GatewayEventRecord) error {
	r.s.state.gatewayEvents = append(r.s.state.gatewayEvents, evt)
	return nil
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
}
