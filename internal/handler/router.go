package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayops/internal/domain/actor"
	"stayops/internal/handler/api"
	"stayops/internal/handler/middleware"
	"stayops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	unitHandler *api.UnitHandler,
	catalogHandler *api.CatalogHandler,
	businessHandler *api.BusinessHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, unitHandler, catalogHandler, businessHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	unitHandler *api.UnitHandler,
	catalogHandler *api.CatalogHandler,
	businessHandler *api.BusinessHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public surface: registration, unit browsing, quotes.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/businesses", Handler: businessHandler.Register},
			{Method: http.MethodGet, Path: "/businesses/:id/units", Handler: unitHandler.List},
			{Method: http.MethodGet, Path: "/units/:id", Handler: unitHandler.Get},
			{Method: http.MethodGet, Path: "/quote", Handler: catalogHandler.Quote},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			desk := authMiddleware.RequireRoleAtLeast(actor.RoleStaff)
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: bookingHandler.Approve, Mw: []gin.HandlerFunc{desk}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: bookingHandler.Reject, Mw: []gin.HandlerFunc{desk}},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: bookingHandler.CheckIn, Mw: []gin.HandlerFunc{desk}},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: bookingHandler.CheckOut, Mw: []gin.HandlerFunc{desk}},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: bookingHandler.Reschedule, Mw: []gin.HandlerFunc{desk}},
				{Method: http.MethodPatch, Path: "/:id/payment", Handler: bookingHandler.SetPayment, Mw: []gin.HandlerFunc{desk}},
				{Method: http.MethodPost, Path: "/:id/promotion", Handler: bookingHandler.ApplyPromotion, Mw: []gin.HandlerFunc{desk}},
				{Method: http.MethodPost, Path: "/:id/settle", Handler: bookingHandler.Settle, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/:id/audit", Handler: bookingHandler.AuditLog, Mw: []gin.HandlerFunc{desk}},
			})
		}

		businesses := apiGroup.Group("/businesses")
		businesses.Use(authMiddleware.RequireAuth())
		{
			owner := authMiddleware.RequireRoleAtLeast(actor.RoleOwner)
			addRoutes(businesses, []route{
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: businessHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id/entitlements", Handler: businessHandler.Entitlements},
				{Method: http.MethodGet, Path: "/:id/revenue", Handler: businessHandler.Revenue, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodPost, Path: "/:id/units", Handler: unitHandler.Create, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodPost, Path: "/:id/pricing-rules", Handler: catalogHandler.CreatePricingRule, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodGet, Path: "/:id/pricing-rules", Handler: catalogHandler.ListPricingRules},
				{Method: http.MethodPatch, Path: "/:id/pricing-rules/:rule_id", Handler: catalogHandler.SetPricingRuleActive, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodPost, Path: "/:id/promotions", Handler: catalogHandler.CreatePromotion, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodGet, Path: "/:id/promotions", Handler: catalogHandler.ListPromotions},
				{Method: http.MethodPatch, Path: "/:id/promotions/:promotion_id", Handler: catalogHandler.SetPromotionActive, Mw: []gin.HandlerFunc{owner}},
			})
		}

		units := apiGroup.Group("/units")
		units.Use(authMiddleware.RequireAuth())
		{
			addRoutes(units, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: unitHandler.Update, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleOwner)}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: unitHandler.SetStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleStaff)}},
				{Method: http.MethodPatch, Path: "/:id/availability", Handler: unitHandler.SetAvailability, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleStaff)}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(actor.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPatch, Path: "/businesses/:id/status", Handler: adminHandler.SetBusinessStatus},
				{Method: http.MethodPatch, Path: "/businesses/:id/commission", Handler: adminHandler.SetCommissionOverride},
				{Method: http.MethodGet, Path: "/settlement/summary", Handler: adminHandler.SettlementSummary},
			})
		}
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
