package shared

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

// OutboxEvent is a domain event written in the same transaction as the state
// change it describes and relayed to the broker afterwards.
type OutboxEvent struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       json.RawMessage
	Attempts      int32
	OccurredAt    time.Time
}

// GatewayEventRecord is the audit row kept for every verified notification.
type GatewayEventRecord struct {
	GatewayOrderID string
	Outcome        string
	Payload        json.RawMessage
	Applied        bool
	Flagged        bool
	ReceivedAt     time.Time
}

const (
	AggregateOrder       = "order"
	AggregateEntitlement = "entitlement"
	AggregateBooking     = "booking"
)

const (
	EventOrderCompleted     = "order.completed"
	EventOrderRefunded      = "order.refunded"
	EventOrderFlagged       = "order.review_required"
	EventEntitlementGranted = "entitlement.granted"
	EventEntitlementRevoked = "entitlement.revoked"
	EventBookingRequested   = "booking.requested"
	EventBookingConfirmed   = "booking.confirmed"
	EventBookingCancelled   = "booking.cancelled"
	EventBookingCompleted   = "booking.completed"
	EventBookingNoShow      = "booking.no_show"
)
