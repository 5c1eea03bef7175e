//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use case tests. It
// follows the Postgres repositories' guarded-update semantics closely enough
// that a passing use case test says something about production behaviour.
package memstore

import (
	"context"
	"sync"
	"time"

	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/domain/order"
	"entitlement-engine/internal/infra"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type idempotencyKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

// OutboxRow is an outbox event with its relay bookkeeping.
type OutboxRow struct {
	Event       shared.OutboxEvent
	Status      string
	Attempts    int32
	LastError   string
	AvailableAt time.Time
	PublishedAt *time.Time
}

type state struct {
	orders        map[uuid.UUID]*order.Order
	entitlements  map[uuid.UUID]*entitlement.Entitlement
	bookings      map[uuid.UUID]*booking.Booking
	idempotency   map[idempotencyKey]shared.IdempotencyRecord
	outbox        []*OutboxRow
	gatewayEvents []shared.GatewayEventRecord
}

func newState() *state {
	return &state{
		orders:       map[uuid.UUID]*order.Order{},
		entitlements: map[uuid.UUID]*entitlement.Entitlement{},
		bookings:     map[uuid.UUID]*booking.Booking{},
		idempotency:  map[idempotencyKey]shared.IdempotencyRecord{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for id, o := range s.orders {
		c.orders[id] = cloneOrder(o)
	}
	for id, e := range s.entitlements {
		c.entitlements[id] = cloneEntitlement(e)
	}
	for id, b := range s.bookings {
		c.bookings[id] = cloneBooking(b)
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	for _, row := range s.outbox {
		cp := *row
		c.outbox = append(c.outbox, &cp)
	}
	c.gatewayEvents = append(c.gatewayEvents, s.gatewayEvents...)
	return c
}

// Store serialises transactions with a single mutex and rolls back by
// restoring a snapshot taken when the transaction began.
type Store struct {
	mu    sync.Mutex
	state *state

	// FailOn makes the named repository operation return the error once.
	FailOn map[string]error
}

func New() *Store {
	return &Store{state: newState(), FailOn: map[string]error{}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(ctx, &memTx{store: s}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{store: s, lock: true}
}

func (s *Store) fail(op string) error {
	if err, ok := s.FailOn[op]; ok {
		delete(s.FailOn, op)
		return err
	}
	return nil
}

// Seeding and inspection helpers. They bypass transactions.

func (s *Store) PutOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.orders[o.ID()] = cloneOrder(o)
}

func (s *Store) PutEntitlement(e *entitlement.Entitlement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.entitlements[e.ID()] = cloneEntitlement(e)
}

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.bookings[b.ID()] = cloneBooking(b)
}

func (s *Store) Order(id uuid.UUID) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.state.orders[id]; ok {
		return cloneOrder(o)
	}
	return nil
}

func (s *Store) Orders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*order.Order, 0, len(s.state.orders))
	for _, o := range s.state.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

func (s *Store) Entitlement(id uuid.UUID) *entitlement.Entitlement {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.state.entitlements[id]; ok {
		return cloneEntitlement(e)
	}
	return nil
}

func (s *Store) EntitlementsForOrder(orderID uuid.UUID) []*entitlement.Entitlement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entitlement.Entitlement
	for _, e := range s.state.entitlements {
		if e.OrderID() == orderID {
			out = append(out, cloneEntitlement(e))
		}
	}
	return out
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.state.bookings[id]; ok {
		return cloneBooking(b)
	}
	return nil
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.bookings)
}

func (s *Store) IdempotencyRecord(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.state.idempotency[idempotencyKey{key, userID}]
	return rec, ok
}

func (s *Store) Outbox() []OutboxRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OutboxRow, 0, len(s.state.outbox))
	for _, row := range s.state.outbox {
		out = append(out, *row)
	}
	return out
}

// EventTypes lists outbox event types in insertion order.
func (s *Store) EventTypes() []string {
	rows := s.Outbox()
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Event.EventType)
	}
	return out
}

func (s *Store) GatewayEvents() []shared.GatewayEventRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.GatewayEventRecord(nil), s.state.gatewayEvents...)
}

type memTx struct {
	store *Store
}

func (t *memTx) Orders() shared.OrderRepository             { return &orderRepo{t.store} }
func (t *memTx) Entitlements() shared.EntitlementRepository { return &entitlementRepo{t.store} }
func (t *memTx) Bookings() shared.BookingRepository         { return &bookingRepo{t.store} }
func (t *memTx) Idempotency() shared.IdempotencyRepository  { return &idempotencyRepo{t.store} }
func (t *memTx) Outbox() shared.OutboxRepository            { return &outboxRepo{t.store} }
func (t *memTx) GatewayEvents() shared.GatewayEventRepository {
	return &gatewayEventRepo{t.store}
}
func (t *memTx) Reads() shared.CommandReads { return &reads{store: t.store} }
func (t *memTx) DB() sqlc.DBTX              { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// reads serves CommandReads. Outside a transaction it takes the store lock.
type reads struct {
	store *Store
	lock  bool
}

func (r *reads) guard() func() {
	if !r.lock {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *reads) EntitlementByOrderID(_ context.Context, orderID uuid.UUID) (*entitlement.Entitlement, error) {
	defer r.guard()()
	for _, e := range r.store.state.entitlements {
		if e.OrderID() == orderID {
			return cloneEntitlement(e), nil
		}
	}
	return nil, notFound("entitlement not found")
}

func (r *reads) EntitlementByID(_ context.Context, id uuid.UUID) (*entitlement.Entitlement, error) {
	defer r.guard()()
	if e, ok := r.store.state.entitlements[id]; ok {
		return cloneEntitlement(e), nil
	}
	return nil, notFound("entitlement not found")
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	defer r.guard()()
	if b, ok := r.store.state.bookings[id]; ok {
		return cloneBooking(b), nil
	}
	return nil, notFound("booking not found")
}
