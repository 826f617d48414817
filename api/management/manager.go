package management

import (
	"afpromotion_server/api/middleware"
	"afpromotion_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ManagementRoutesManager struct {
	logger         *gecho.Logger
	orderService   *services.OrderService
	catalogService *services.CatalogService
	reportService  *services.ReportService
	cacheService   *services.CacheService
	mw             *middleware.Middleware
}

func NewManagementRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
	catalogService *services.CatalogService,
	reportService *services.ReportService,
	cacheService *services.CacheService,
	mw *middleware.Middleware,
) *ManagementRoutesManager {
	return &ManagementRoutesManager{
		logger:         logger,
		orderService:   orderService,
		catalogService: catalogService,
		reportService:  reportService,
		cacheService:   cacheService,
		mw:             mw,
	}
}

func (mrm *ManagementRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/management", func(r chi.Router) {
		r.Use(mrm.mw.StaffAuthMiddleware)

		r.Get("/dashboard", mrm.GetDashboard)
		r.Get("/orders", mrm.ListOrders)
		r.Get("/orders/{id}/update", mrm.GetOrderForUpdate)
		r.Get("/products", mrm.ListProducts)
		r.Get("/categories", mrm.ListCategories)
		r.Get("/sales-report", mrm.GetSalesReport)
		r.Get("/sales-report/export", mrm.ExportSalesReport)

		r.Group(func(r chi.Router) {
			r.Use(mrm.mw.CSRFMiddleware())
			r.Post("/orders/{id}/update", mrm.UpdateOrder)
			r.Post("/products", mrm.CreateProduct)
			r.Put("/products/{id}", mrm.UpdateProduct)
			r.Post("/categories", mrm.CreateCategory)
		})
	})
}
