package cart

import (
	"errors"
	"net/http"

	"afpromotion_server/api/middleware"
	"afpromotion_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetCart returns the customer's cart items with the running total.
func (crm *CartRoutesManager) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
		return
	}

	customer, err := crm.customerService.GetOrCreateByUserId(r.Context(), claims.Sub)
	if err != nil {
		crm.logger.Error("Failed to resolve customer", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.cart.fetchFailed"), gecho.Send())
		return
	}

	cart, err := crm.cartService.GetCart(r.Context(), customer.Id)
	if err != nil {
		crm.logger.Error("Failed to fetch cart", gecho.Field("error", err), gecho.Field("customer_id", customer.Id))
		gecho.InternalServerError(w, gecho.WithMessage("error.cart.fetchFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(cart),
		gecho.Send(),
	)
}

// AddToCart puts one unit of a product into the cart, incrementing the
// quantity when the product is already there.
func (crm *CartRoutesManager) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
		return
	}

	productIdStr := chi.URLParam(r, "productID")
	productId, err := uuid.Parse(productIdStr)
	if err != nil {
		crm.logger.Warn("Invalid product ID format", gecho.Field("product_id", productIdStr))
		gecho.BadRequest(w, gecho.WithMessage("error.cart.invalidProductId"), gecho.Send())
		return
	}

	customer, err := crm.customerService.GetOrCreateByUserId(r.Context(), claims.Sub)
	if err != nil {
		crm.logger.Error("Failed to resolve customer", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.cart.addFailed"), gecho.Send())
		return
	}

	item, err := crm.cartService.AddProduct(r.Context(), customer.Id, productId)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.cart.productNotFound"), gecho.Send())
			return
		}
		crm.logger.Error("Failed to add product to cart",
			gecho.Field("error", err),
			gecho.Field("customer_id", customer.Id),
			gecho.Field("product_id", productId))
		gecho.InternalServerError(w, gecho.WithMessage("error.cart.addFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cart.productAdded"),
		gecho.WithData(item),
		gecho.Send(),
	)
}

// RemoveFromCart deletes one cart row, scoped to the requesting customer.
func (crm *CartRoutesManager) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
		return
	}

	itemIdStr := chi.URLParam(r, "itemID")
	itemId, err := uuid.Parse(itemIdStr)
	if err != nil {
		crm.logger.Warn("Invalid cart item ID format", gecho.Field("item_id", itemIdStr))
		gecho.BadRequest(w, gecho.WithMessage("error.cart.invalidItemId"), gecho.Send())
		return
	}

	customer, err := crm.customerService.GetOrCreateByUserId(r.Context(), claims.Sub)
	if err != nil {
		crm.logger.Error("Failed to resolve customer", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.cart.removeFailed"), gecho.Send())
		return
	}

	if err := crm.cartService.RemoveItem(r.Context(), customer.Id, itemId); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.cart.itemNotFound"), gecho.Send())
			return
		}
		crm.logger.Error("Failed to remove cart item",
			gecho.Field("error", err),
			gecho.Field("customer_id", customer.Id),
			gecho.Field("item_id", itemId))
		gecho.InternalServerError(w, gecho.WithMessage("error.cart.removeFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cart.itemRemoved"),
		gecho.Send(),
	)
}
