package orders

import (
	"errors"
	"net/http"

	"afpromotion_server/api/middleware"
	"afpromotion_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetMyOrders returns all orders for the authenticated customer
func (orm *OrderRoutesManager) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
		return
	}

	customer, err := orm.customerService.GetOrCreateByUserId(r.Context(), claims.Sub)
	if err != nil {
		orm.logger.Error("Failed to resolve customer", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.order.fetchingOrders"), gecho.Send())
		return
	}

	orders, err := orm.orderService.ListForCustomer(r.Context(), customer.Id)
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.fetchingOrders"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
			"count":  len(orders),
		}),
		gecho.Send(),
	)
}

// GetMyOrderById returns one order with items and payment. Orders owned by
// other customers read as not found.
func (orm *OrderRoutesManager) GetMyOrderById(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
		return
	}

	orderIdStr := chi.URLParam(r, "id")
	orderId, err := uuid.Parse(orderIdStr)
	if err != nil {
		orm.logger.Warn("Invalid order ID format", gecho.Field("order_id", orderIdStr))
		gecho.BadRequest(w, gecho.WithMessage("error.order.invalidOrderId"), gecho.Send())
		return
	}

	customer, err := orm.customerService.GetOrCreateByUserId(r.Context(), claims.Sub)
	if err != nil {
		orm.logger.Error("Failed to resolve customer", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.order.fetchFailed"), gecho.Send())
		return
	}

	order, err := orm.orderService.GetForCustomer(r.Context(), customer.Id, orderId)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.order.notFound"), gecho.Send())
			return
		}
		orm.logger.Error("Failed to get order", gecho.Field("error", err), gecho.Field("order_id", orderId))
		gecho.InternalServerError(w, gecho.WithMessage("error.order.fetchFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}
