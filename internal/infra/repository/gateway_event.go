package repository

import (
	"context"

	"entitlement-engine/internal/infra"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/pgconv"
	"entitlement-engine/internal/usecase/shared"
)

type GatewayEventWriteQueries interface {
	InsertGatewayEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertGatewayEventParams) error
}

type GatewayEventRepository struct {
	queries GatewayEventWriteQueries
	db      sqlc.DBTX
}

func NewGatewayEventRepository(queries GatewayEventWriteQueries, db sqlc.DBTX) *GatewayEventRepository {
	return &GatewayEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GatewayEventRepository) Record(ctx context.Context, tx sqlc.DBTX, evt shared.GatewayEventRecord) error {
	payload := []byte(evt.Payload)
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	err := r.queries.InsertGatewayEvent(ctx, tx, sqlc.InsertGatewayEventParams{
		GatewayOrderID: evt.GatewayOrderID,
		Outcome:        evt.Outcome,
		Payload:        payload,
		Applied:        evt.Applied,
		Flagged:        evt.Flagged,
		ReceivedAt:     pgconv.TimeToPgtype(evt.ReceivedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record gateway event", err)
	}
	return nil
}
