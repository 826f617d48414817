package api

import (
	"afpromotion_server/api/auth"
	"afpromotion_server/api/cart"
	"afpromotion_server/api/catalog"
	"afpromotion_server/api/debug"
	"afpromotion_server/api/health"
	"afpromotion_server/api/management"
	"afpromotion_server/api/middleware"
	"afpromotion_server/api/orders"
	"afpromotion_server/api/profile"
	"afpromotion_server/database"
	"afpromotion_server/services"
	"afpromotion_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	catalogRoutes    *catalog.CatalogRoutesManager
	cartRoutes       *cart.CartRoutesManager
	orderRoutes      *orders.OrderRoutesManager
	profileRoutes    *profile.ProfileRoutesManager
	authRoutes       *auth.AuthRoutesManager
	managementRoutes *management.ManagementRoutesManager
	healthRoutes     *health.HealthRoutesManager
	debugRoutes      *debug.DebugRoutesManager
}

func NewRouterManager(logger *gecho.Logger, db *database.DB, cfg *structs.Config, mw *middleware.Middleware) *routerManager {
	sm := services.NewServiceManager(logger, cfg, db)

	return &routerManager{
		catalogRoutes:    catalog.NewCatalogRoutesManager(logger, sm.CatalogService, sm.CacheService),
		cartRoutes:       cart.NewCartRoutesManager(logger, sm.CartService, sm.CustomerService, mw),
		orderRoutes:      orders.NewOrderRoutesManager(logger, cfg, sm.OrderService, sm.PaymentService, sm.CartService, sm.CustomerService, mw),
		profileRoutes:    profile.NewProfileRoutesManager(logger, sm.CustomerService, sm.OrderService, mw),
		authRoutes:       auth.NewAuthRoutesManager(logger, sm.AuthService, sm.CacheService, cfg, mw),
		managementRoutes: management.NewManagementRoutesManager(logger, sm.OrderService, sm.CatalogService, sm.ReportService, sm.CacheService, mw),
		healthRoutes:     health.NewHealthRoutesManager(sm.HealthService),
		debugRoutes:      debug.NewDebugRoutesManager(sm.CacheService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.catalogRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.profileRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.managementRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
