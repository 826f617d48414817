package services

import (
	"afpromotion_server/database"
	"afpromotion_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService     *AuthService
	EmailService    *EmailService
	CacheService    *CacheService
	HealthService   *HealthService
	CustomerService *CustomerService
	CatalogService  *CatalogService
	CartService     *CartService
	OrderService    *OrderService
	PaymentService  *PaymentService
	ReportService   *ReportService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(cfg, logger, db)
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg, db)
	healthService := NewHealthService(logger, db)
	customerService := NewCustomerService(logger, db)
	catalogService := NewCatalogService(logger, db)
	cartService := NewCartService(logger, db, catalogService)
	orderService := NewOrderService(logger, db, emailService)
	paymentService := NewPaymentService(logger, db, orderService, emailService)
	reportService := NewReportService(logger, db)

	return &ServiceManager{
		AuthService:     authService,
		EmailService:    emailService,
		CacheService:    cacheService,
		HealthService:   healthService,
		CustomerService: customerService,
		CatalogService:  catalogService,
		CartService:     cartService,
		OrderService:    orderService,
		PaymentService:  paymentService,
		ReportService:   reportService,
	}
}
