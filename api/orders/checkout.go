package orders

import (
	"errors"
	"net/http"

	"afpromotion_server/api/middleware"
	"afpromotion_server/lib"
	"afpromotion_server/structs"

	"github.com/MonkyMars/gecho"
)

// PreviewCheckout returns what the checkout form needs: the customer
// profile to prefill, the cart contents and the flat shipping cost.
func (orm *OrderRoutesManager) PreviewCheckout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
		return
	}

	customer, err := orm.customerService.GetOrCreateByUserId(r.Context(), claims.Sub)
	if err != nil {
		orm.logger.Error("Failed to resolve customer", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.checkout.previewFailed"), gecho.Send())
		return
	}

	cart, err := orm.cartService.GetCart(r.Context(), customer.Id)
	if err != nil {
		orm.logger.Error("Failed to fetch cart for checkout", gecho.Field("error", err), gecho.Field("customer_id", customer.Id))
		gecho.InternalServerError(w, gecho.WithMessage("error.checkout.previewFailed"), gecho.Send())
		return
	}

	shippingCost := orm.cfg.Shop.ShippingFlatCost

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"customer":      customer,
			"cart":          cart,
			"shipping_cost": shippingCost,
			"total":         cart.Total + shippingCost,
		}),
		gecho.Send(),
	)
}

// Checkout converts the cart into an order with a pending payment.
func (orm *OrderRoutesManager) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CheckoutRequest](r)
	if err != nil {
		orm.logger.Warn("Invalid checkout request body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.checkout.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	customer, err := orm.customerService.GetOrCreateByUserId(r.Context(), claims.Sub)
	if err != nil {
		orm.logger.Error("Failed to resolve customer", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.checkout.failed"), gecho.Send())
		return
	}

	order, err := orm.orderService.Checkout(r.Context(), customer, body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrEmptyCart):
			gecho.BadRequest(w, gecho.WithMessage("error.checkout.emptyCart"), gecho.Send())
		case errors.Is(err, lib.ErrInsufficientStock):
			gecho.Conflict(w, gecho.WithMessage("error.checkout.insufficientStock"), gecho.Send())
		default:
			orm.logger.Error("Checkout failed", gecho.Field("error", err), gecho.Field("customer_id", customer.Id))
			gecho.InternalServerError(w, gecho.WithMessage("error.checkout.failed"), gecho.Send())
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.checkout.orderPlaced"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
