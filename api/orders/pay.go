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

// PayOrder settles the simulated payment for an order. Paying twice is safe
// and returns the same success.
func (orm *OrderRoutesManager) PayOrder(w http.ResponseWriter, r *http.Request) {
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
		gecho.InternalServerError(w, gecho.WithMessage("error.payment.failed"), gecho.Send())
		return
	}

	order, err := orm.paymentService.PayOrder(r.Context(), customer, orderId)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.order.notFound"), gecho.Send())
			return
		}
		orm.logger.Error("Failed to settle payment", gecho.Field("error", err), gecho.Field("order_id", orderId))
		gecho.InternalServerError(w, gecho.WithMessage("error.payment.failed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.payment.settled"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
