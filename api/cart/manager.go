package cart

import (
	"afpromotion_server/api/middleware"
	"afpromotion_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger          *gecho.Logger
	cartService     *services.CartService
	customerService *services.CustomerService
	mw              *middleware.Middleware
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	customerService *services.CustomerService,
	mw *middleware.Middleware,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:          logger,
		cartService:     cartService,
		customerService: customerService,
		mw:              mw,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(crm.mw.UserAuthMiddleware)

		r.Get("/", crm.GetCart)

		r.Group(func(r chi.Router) {
			r.Use(crm.mw.CSRFMiddleware())
			r.Post("/add/{productID}", crm.AddToCart)
			r.Post("/remove/{itemID}", crm.RemoveFromCart)
		})
	})
}
