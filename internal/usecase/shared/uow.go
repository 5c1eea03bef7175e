package shared

import (
	"context"
	"time"

	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/domain/entitlement"
	"entitlement-engine/internal/domain/order"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrStaleWrite is returned when a guarded update matched no row because
// another transaction changed the aggregate first.
var ErrStaleWrite = errs.New("aggregate was modified concurrently")

type UnitOfWork interface {
	// Within runs fn in one transaction and may run it again on a
	// serialization failure, so fn must not have effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads serves lookups outside any transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Entitlements() EntitlementRepository
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	GatewayEvents() GatewayEventRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	EntitlementByOrderID(ctx context.Context, orderID uuid.UUID) (*entitlement.Entitlement, error)
	EntitlementByID(ctx context.Context, id uuid.UUID) (*entitlement.Entitlement, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	FindByGatewayRefForUpdate(ctx context.Context, tx sqlc.DBTX, ref string) (*order.Order, error)
	// Save persists o only if the stored state still equals expected.
	Save(ctx context.Context, tx sqlc.DBTX, o *order.Order, expected order.State) error
	ExpireStale(ctx context.Context, tx sqlc.DBTX, now, cutoff time.Time) ([]uuid.UUID, error)
}

type EntitlementRepository interface {
	// Insert returns false when the order already has an entitlement.
	Insert(ctx context.Context, tx sqlc.DBTX, e *entitlement.Entitlement) (bool, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*entitlement.Entitlement, error)
	FindByOrderID(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*entitlement.Entitlement, error)
	// ConsumeSession is a single conditional update; ok is false when the
	// entitlement was not active, past expiry or out of sessions.
	ConsumeSession(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) (used int, ok bool, err error)
	ReleaseSession(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) (bool, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status, expected entitlement.Status, now time.Time) (bool, error)
	ExpireDue(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	Save(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) error
	CancelOpenByEntitlement(ctx context.Context, tx sqlc.DBTX, entitlementID uuid.UUID, reason string, now time.Time) ([]uuid.UUID, error)
}

type IdempotencyRepository interface {
	// TryInsert returns false when the key already exists for the user.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, evt OutboxEvent) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, retryAt time.Time, maxAttempts int32) error
}

type GatewayEventRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, evt GatewayEventRecord) error
}
