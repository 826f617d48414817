package management

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListOrders returns all orders, optionally filtered by status. An unknown
// status value yields an empty list.
func (mrm *ManagementRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	orders, err := mrm.orderService.ListAll(r.Context(), status)
	if err != nil {
		mrm.logger.Error("Failed to list orders", gecho.Field("error", err), gecho.Field("status", status))
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
			"status": status,
		}),
		gecho.Send(),
	)
}
