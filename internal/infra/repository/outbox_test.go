//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"entitlement-engine/internal/infra"
	"entitlement-engine/internal/infra/repository"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	"entitlement-engine/internal/usecase/shared"
	repositorymock "entitlement-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Append(t *testing.T) {
	ctx := context.Background()
	occurred := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("success: event without an id gets one and is due immediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		aggID := uuid.New()
		mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error {
				assert.NotEqual(t, uuid.Nil, arg.ID)
				assert.Equal(t, aggID, arg.AggregateID)
				assert.Equal(t, shared.EventOrderCompleted, arg.EventType)
				assert.Equal(t, pgconv.TimeToPgtype(occurred), arg.AvailableAt)
				assert.JSONEq(t, `{"state":"paid"}`, string(arg.Payload))
				return nil
			})

		err := repository.NewOutboxRepository(mockQueries, mockDB).Append(ctx, mockDB, shared.OutboxEvent{
			AggregateType: shared.AggregateOrder,
			AggregateID:   aggID,
			EventType:     shared.EventOrderCompleted,
			Payload:       json.RawMessage(`{"state":"paid"}`),
			OccurredAt:    occurred,
		})

		assert.NoError(t, err)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).Return(errDBConnectionLost)

		err := repository.NewOutboxRepository(mockQueries, mockDB).Append(ctx, mockDB, shared.OutboxEvent{ID: uuid.New()})

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	now := time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC)
	created := now.Add(-time.Minute)
	row := sqlc.ClaimPendingOutboxEventsRow{
		ID:            uuid.New(),
		AggregateType: shared.AggregateEntitlement,
		AggregateID:   uuid.New(),
		EventType:     shared.EventEntitlementGranted,
		Payload:       []byte(`{}`),
		Attempts:      2,
		CreatedAt:     pgconv.TimeToPgtype(created),
	}
	mockQueries.EXPECT().ClaimPendingOutboxEvents(ctx, mockDB, sqlc.ClaimPendingOutboxEventsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: 25,
	}).Return([]sqlc.ClaimPendingOutboxEventsRow{row}, nil)

	got, err := repository.NewOutboxRepository(mockQueries, mockDB).ClaimPending(ctx, mockDB, now, 25)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, row.ID, got[0].ID)
	assert.Equal(t, int32(2), got[0].Attempts)
	assert.True(t, created.Equal(got[0].OccurredAt))
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	id := uuid.New()
	retryAt := time.Date(2025, 3, 10, 9, 0, 4, 0, time.UTC)
	mockQueries.EXPECT().MarkOutboxEventFailed(ctx, mockDB, sqlc.MarkOutboxEventFailedParams{
		LastError:   pgconv.OptionalText("broker unreachable"),
		RetryAt:     pgconv.TimeToPgtype(retryAt),
		MaxAttempts: 10,
		ID:          id,
	}).Return(nil)

	err := repository.NewOutboxRepository(mockQueries, mockDB).MarkFailed(ctx, mockDB, id, "broker unreachable", retryAt, 10)

	assert.NoError(t, err)
}
