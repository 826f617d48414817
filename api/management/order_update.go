package management

import (
	"errors"
	"net/http"

	"afpromotion_server/lib"
	"afpromotion_server/structs"
	"afpromotion_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetOrderForUpdate returns the order detail plus the status values the
// update form may choose from.
func (mrm *ManagementRoutesManager) GetOrderForUpdate(w http.ResponseWriter, r *http.Request) {
	orderIdStr := chi.URLParam(r, "id")
	orderId, err := uuid.Parse(orderIdStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.order.invalidOrderId"), gecho.Send())
		return
	}

	order, err := mrm.orderService.GetById(r.Context(), orderId)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.order.notFound"), gecho.Send())
			return
		}
		mrm.logger.Error("Failed to get order", gecho.Field("error", err), gecho.Field("order_id", orderId))
		gecho.InternalServerError(w, gecho.WithMessage("error.order.fetchFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"order":             order,
			"statuses":          tables.OrderStatuses,
			"shipping_statuses": tables.ShippingStatuses,
		}),
		gecho.Send(),
	)
}

// UpdateOrder applies the fulfillment form. Unknown status values are
// ignored rather than rejected.
func (mrm *ManagementRoutesManager) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderIdStr := chi.URLParam(r, "id")
	orderId, err := uuid.Parse(orderIdStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.order.invalidOrderId"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.FulfillmentUpdateRequest](r)
	if err != nil {
		mrm.logger.Warn("Invalid order update body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := mrm.orderService.UpdateFulfillment(r.Context(), orderId, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.order.notFound"), gecho.Send())
			return
		}
		mrm.logger.Error("Failed to update order",
			gecho.Field("error", err),
			gecho.Field("order_id", orderId))
		gecho.InternalServerError(w, gecho.WithMessage("error.order.updateFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.order.updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
