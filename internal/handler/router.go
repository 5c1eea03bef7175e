package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/handler/api"
	"entitlement-engine/internal/handler/middleware"
	"entitlement-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Orders      *api.OrderHandler
	Webhooks    *api.WebhookHandler
	Enrollments *api.EnrollmentHandler
	Sessions    *api.SessionHandler
	Handoff     *api.HandoffHandler
	Catalog     *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// Tracing before logging so request logs carry the trace id
	engine.Use(middleware.Tracing())
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)}

	apiGroup := engine.Group("/api")
	{
		// Authenticated by the gateway signature and the exchange secret respectively
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/payments/notify", Handler: h.Webhooks.Notify},
			{Method: http.MethodPost, Path: "/handoff/exchange", Handler: h.Handoff.Exchange},
		})
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/packages/:id", Handler: h.Catalog.Get},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())

		orders := authed.Group("/orders")
		addRoutes(orders, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Orders.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Orders.Get},
			{Method: http.MethodPost, Path: "/:id/refund", Handler: h.Orders.Refund, Mw: operator},
		})

		enrollments := authed.Group("/enrollments")
		addRoutes(enrollments, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Enrollments.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Enrollments.Get},
			{Method: http.MethodPost, Path: "/:id/sessions", Handler: h.Enrollments.RequestSession},
			{Method: http.MethodGet, Path: "/:id/sessions", Handler: h.Enrollments.ListSessions},
			{Method: http.MethodPost, Path: "/:id/revoke", Handler: h.Enrollments.Revoke, Mw: operator},
		})

		sessions := authed.Group("/sessions")
		addRoutes(sessions, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Sessions.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Sessions.Cancel},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Sessions.Confirm, Mw: operator},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Sessions.Complete, Mw: operator},
			{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Sessions.NoShow, Mw: operator},
		})

		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/handoff", Handler: h.Handoff.Issue},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
