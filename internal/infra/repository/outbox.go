package repository

import (
	"context"
	"time"

	"entitlement-engine/internal/infra"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
	ClaimPendingOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPendingOutboxEventsParams) ([]sqlc.ClaimPendingOutboxEventsRow, error)
	MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventPublishedParams) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, evt shared.OutboxEvent) error {
	id := evt.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	err := r.queries.InsertOutboxEvent(ctx, tx, sqlc.InsertOutboxEventParams{
		ID:            id,
		AggregateType: evt.AggregateType,
		AggregateID:   evt.AggregateID,
		EventType:     evt.EventType,
		Payload:       evt.Payload,
		AvailableAt:   pgconv.TimeToPgtype(evt.OccurredAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

// ClaimPending locks up to limit due events; the lock lasts until tx ends.
func (r *OutboxRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimPendingOutboxEvents(ctx, tx, sqlc.ClaimPendingOutboxEventsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:            row.ID,
			AggregateType: row.AggregateType,
			AggregateID:   row.AggregateID,
			EventType:     row.EventType,
			Payload:       row.Payload,
			Attempts:      row.Attempts,
			OccurredAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	err := r.queries.MarkOutboxEventPublished(ctx, tx, sqlc.MarkOutboxEventPublishedParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, retryAt time.Time, maxAttempts int32) error {
	err := r.queries.MarkOutboxEventFailed(ctx, tx, sqlc.MarkOutboxEventFailedParams{
		LastError:   pgconv.OptionalText(lastErr),
		RetryAt:     pgconv.TimeToPgtype(retryAt),
		MaxAttempts: maxAttempts,
		ID:          id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
