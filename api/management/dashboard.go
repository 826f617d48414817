package management

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetDashboard returns the staff landing figures: order totals, revenue and
// the most recent orders.
func (mrm *ManagementRoutesManager) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := mrm.reportService.Dashboard(r.Context())
	if err != nil {
		mrm.logger.Error("Failed to build dashboard", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.dashboard.fetchFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(summary),
		gecho.Send(),
	)
}
