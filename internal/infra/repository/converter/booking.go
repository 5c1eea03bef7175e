package converter

import (
	"entitlement-engine/internal/domain/booking"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/pkg/pgconv"
)

func BookingToInsertParams(b *booking.Booking) sqlc.InsertBookingParams {
	return sqlc.InsertBookingParams{
		ID:            b.ID(),
		EntitlementID: b.EntitlementID(),
		UserID:        b.UserID(),
		SessionDate:   pgconv.DateToPgtype(b.Date().UTC()),
		Slot:          b.Slot().String(),
		Platform:      b.Platform().String(),
		Agenda:        b.Agenda().String(),
		Status:        b.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking, expected booking.Status) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		Status:         b.Status().String(),
		CounsellorID:   pgconv.UUIDPtrToPgtype(b.CounsellorID()),
		CancelReason:   pgconv.StringPtrToPgtype(b.CancelReason()),
		CancelledAt:    pgconv.TimePtrToPgtype(b.CancelledAt()),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:             b.ID(),
		ExpectedStatus: expected.String(),
	}
}

// BookingFromRow rebuilds a booking; rows are validated on the way in, so a
// bad slot here means the data was changed outside the application.
func BookingFromRow(row sqlc.SessionBookings) (*booking.Booking, error) {
	slot, err := booking.NewSlot(row.Slot)
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking %s has slot %q", row.ID, row.Slot)
	}
	agenda, err := booking.NewAgenda(row.Agenda)
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking %s has invalid agenda", row.ID)
	}

	return booking.Reconstruct(booking.ReconstructParams{
		ID:            row.ID,
		EntitlementID: row.EntitlementID,
		UserID:        row.UserID,
		Date:          booking.DateOf(pgconv.DateFromPgtype(row.SessionDate)),
		Slot:          slot,
		Platform:      booking.Platform(row.Platform),
		Agenda:        agenda,
		Status:        booking.Status(row.Status),
		CounsellorID:  pgconv.UUIDPtrFromPgtype(row.CounsellorID),
		CancelReason:  pgconv.StringPtrFromPgtype(row.CancelReason),
		CancelledAt:   pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
