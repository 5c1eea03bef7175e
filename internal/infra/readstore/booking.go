package readstore

import (
	"context"

	"entitlement-engine/internal/infra"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	"entitlement-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

const sessionDateLayout = "2006-01-02"

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SessionBookings, error)
	ListBookingsByEntitlement(ctx context.Context, db sqlc.DBTX, entitlementID uuid.UUID) ([]sqlc.SessionBookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListByEntitlement(ctx context.Context, entitlementID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByEntitlement(ctx, r.db, entitlementID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by entitlement", err)
	}
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = toBookingView(row)
	}
	return views, nil
}

func toBookingView(row sqlc.SessionBookings) *queries.BookingView {
	return &queries.BookingView{
		ID:            row.ID,
		EntitlementID: row.EntitlementID,
		UserID:        row.UserID,
		SessionDate:   pgconv.DateFromPgtype(row.SessionDate).Format(sessionDateLayout),
		Slot:          row.Slot,
		Platform:      row.Platform,
		Agenda:        row.Agenda,
		Status:        row.Status,
		CounsellorID:  pgconv.UUIDPtrFromPgtype(row.CounsellorID),
		CancelReason:  pgconv.StringPtrFromPgtype(row.CancelReason),
		CancelledAt:   pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
