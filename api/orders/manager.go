package orders

import (
	"afpromotion_server/api/middleware"
	"afpromotion_server/services"
	"afpromotion_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	orderService    *services.OrderService
	paymentService  *services.PaymentService
	cartService     *services.CartService
	customerService *services.CustomerService
	mw              *middleware.Middleware
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	orderService *services.OrderService,
	paymentService *services.PaymentService,
	cartService *services.CartService,
	customerService *services.CustomerService,
	mw *middleware.Middleware,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:          logger,
		cfg:             cfg,
		orderService:    orderService,
		paymentService:  paymentService,
		cartService:     cartService,
		customerService: customerService,
		mw:              mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(orm.mw.UserAuthMiddleware)

		r.Get("/checkout", orm.PreviewCheckout)
		r.Get("/orders", orm.GetMyOrders)
		r.Get("/order/{id}", orm.GetMyOrderById)
		r.Get("/order/{id}/pay", orm.PayOrder)

		r.Group(func(r chi.Router) {
			r.Use(orm.mw.CSRFMiddleware())
			r.Post("/checkout", orm.Checkout)
		})
	})
}
