package profile

import (
	"net/http"

	"afpromotion_server/api/middleware"
	"afpromotion_server/lib"
	"afpromotion_server/structs"

	"github.com/MonkyMars/gecho"
)

// GetProfile returns the customer profile with its login identity and the
// order history.
func (prm *ProfileRoutesManager) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
		return
	}

	customer, err := prm.customerService.GetOrCreateByUserId(r.Context(), claims.Sub)
	if err != nil {
		prm.logger.Error("Failed to resolve customer", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.profile.fetchFailed"), gecho.Send())
		return
	}

	customer, err = prm.customerService.GetWithUser(r.Context(), customer.Id)
	if err != nil || customer == nil {
		prm.logger.Error("Failed to load customer profile", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.profile.fetchFailed"), gecho.Send())
		return
	}

	orders, err := prm.orderService.ListForCustomer(r.Context(), customer.Id)
	if err != nil {
		prm.logger.Error("Failed to load order history", gecho.Field("error", err), gecho.Field("customer_id", customer.Id))
		gecho.InternalServerError(w, gecho.WithMessage("error.profile.fetchFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"customer": customer,
			"orders":   orders,
		}),
		gecho.Send(),
	)
}

// UpdateProfile writes the contact and address fields on the customer and
// the name and email on its user.
func (prm *ProfileRoutesManager) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProfileUpdateRequest](r)
	if err != nil {
		prm.logger.Warn("Invalid profile update body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.profile.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	customer, err := prm.customerService.GetOrCreateByUserId(r.Context(), claims.Sub)
	if err != nil {
		prm.logger.Error("Failed to resolve customer", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.profile.updateFailed"), gecho.Send())
		return
	}

	if err := prm.customerService.UpdateProfile(r.Context(), customer, body); err != nil {
		prm.logger.Error("Failed to update profile", gecho.Field("error", err), gecho.Field("customer_id", customer.Id))
		gecho.InternalServerError(w, gecho.WithMessage("error.profile.updateFailed"), gecho.Send())
		return
	}

	customer, err = prm.customerService.GetWithUser(r.Context(), customer.Id)
	if err != nil {
		prm.logger.Error("Failed to reload profile", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.profile.updateFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.profile.updated"),
		gecho.WithData(customer),
		gecho.Send(),
	)
}
