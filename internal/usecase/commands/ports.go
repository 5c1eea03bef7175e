package commands

import (
	"context"
	"encoding/json"
	"time"

	"entitlement-engine/internal/domain/catalog"
	"entitlement-engine/internal/domain/handoff"
	"entitlement-engine/internal/domain/order"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// CatalogReader returns ErrPackageNotFound for unknown packages. Inactive
// packages are returned with Active unset; only new orders reject them.
// Reads go through db, the caller's transaction, and are never cached.
type CatalogReader interface {
	PackageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (catalog.Package, error)
}

type GatewayOrderRequest struct {
	OrderID   uuid.UUID
	UserID    uuid.UUID
	Amount    int64
	Currency  string
	ReturnURL string
}

type GatewayOrder struct {
	GatewayOrderID   string
	PaymentSessionID string
}

// RawNotification is an inbound gateway callback exactly as received.
type RawNotification struct {
	Body      []byte
	Signature string
	Timestamp string
}

// Notification is a callback whose authenticity has been established.
type Notification struct {
	GatewayOrderID string
	Outcome        order.Outcome
	Payload        json.RawMessage
}

// PaymentGateway implementations retry transient failures themselves and
// return ErrGatewayUnavailable once they give up.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (GatewayOrder, error)
	// VerifyNotification returns ErrUntrustedNotification for anything it cannot authenticate.
	VerifyNotification(ctx context.Context, raw RawNotification) (Notification, error)
}

// HandoffCodeStore keeps credential bundles for code-mode handoff. Take is
// single use; a missing or already used code yields ErrHandoffCodeInvalid.
type HandoffCodeStore interface {
	Put(ctx context.Context, code string, cred handoff.Credential, ttl time.Duration) error
	Take(ctx context.Context, code string) (handoff.Credential, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, evt shared.OutboxEvent) error
}
