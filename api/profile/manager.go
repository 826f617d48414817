package profile

import (
	"afpromotion_server/api/middleware"
	"afpromotion_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProfileRoutesManager struct {
	logger          *gecho.Logger
	customerService *services.CustomerService
	orderService    *services.OrderService
	mw              *middleware.Middleware
}

func NewProfileRoutesManager(
	logger *gecho.Logger,
	customerService *services.CustomerService,
	orderService *services.OrderService,
	mw *middleware.Middleware,
) *ProfileRoutesManager {
	return &ProfileRoutesManager{
		logger:          logger,
		customerService: customerService,
		orderService:    orderService,
		mw:              mw,
	}
}

func (prm *ProfileRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/profile", func(r chi.Router) {
		r.Use(prm.mw.UserAuthMiddleware)

		r.Get("/", prm.GetProfile)

		r.Group(func(r chi.Router) {
			r.Use(prm.mw.CSRFMiddleware())
			r.Post("/", prm.UpdateProfile)
		})
	})
}
