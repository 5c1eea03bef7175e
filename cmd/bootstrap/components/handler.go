package components

import (
	"entitlement-engine/internal/handler"
	"entitlement-engine/internal/handler/api"
	"entitlement-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewWebhookHandler,
		api.NewEnrollmentHandler,
		api.NewSessionHandler,
		api.NewHandoffHandler,
		api.NewCatalogHandler,
		func(
			orders *api.OrderHandler,
			webhooks *api.WebhookHandler,
			enrollments *api.EnrollmentHandler,
			sessions *api.SessionHandler,
			handoff *api.HandoffHandler,
			catalog *api.CatalogHandler,
		) handler.Handlers {
			return handler.Handlers{
				Orders:      orders,
				Webhooks:    webhooks,
				Enrollments: enrollments,
				Sessions:    sessions,
				Handoff:     handoff,
				Catalog:     catalog,
			}
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
