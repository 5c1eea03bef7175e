package repository

import (
	"context"
	"time"

	"entitlement-engine/internal/domain/booking"
	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/infra/repository/converter"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingParams) error
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SessionBookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	CancelOpenBookingsByEntitlement(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelOpenBookingsByEntitlementParams) ([]uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.InsertBooking(ctx, tx, converter.BookingToInsertParams(b)); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map booking row", err)
	}
	return b, nil
}

// Save fails with a DUPLICATE_KEY repository error when confirming would give a
// counsellor two confirmed bookings in the same slot.
func (r *BookingRepository) Save(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, converter.BookingToUpdateParams(b, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return shared.ErrStaleWrite
	}
	return nil
}

func (r *BookingRepository) CancelOpenByEntitlement(ctx context.Context, tx sqlc.DBTX, entitlementID uuid.UUID, reason string, now time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.CancelOpenBookingsByEntitlement(ctx, tx, sqlc.CancelOpenBookingsByEntitlementParams{
		Reason:        pgconv.OptionalText(reason),
		Now:           pgconv.TimeToPgtype(now),
		EntitlementID: entitlementID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel open bookings", err)
	}
	return ids, nil
}
