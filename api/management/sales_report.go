package management

import (
	"net/http"

	"afpromotion_server/handling"
	"afpromotion_server/services"

	"github.com/MonkyMars/gecho"
)

// GetSalesReport returns aggregated sales figures for the optional
// start/end date window.
func (mrm *ManagementRoutesManager) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	rng := handling.ParseDateRange(r)

	report, err := mrm.reportService.SalesReport(r.Context(), rng)
	if err != nil {
		mrm.logger.Error("Failed to build sales report", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.report.fetchFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(report),
		gecho.Send(),
	)
}

// ExportSalesReport streams the same report window as a CSV attachment.
func (mrm *ManagementRoutesManager) ExportSalesReport(w http.ResponseWriter, r *http.Request) {
	rng := handling.ParseDateRange(r)

	report, err := mrm.reportService.SalesReport(r.Context(), rng)
	if err != nil {
		mrm.logger.Error("Failed to build sales report for export", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.report.exportFailed"), gecho.Send())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_report.csv"`)

	if err := services.WriteCSV(w, report); err != nil {
		mrm.logger.Error("Failed to write sales report CSV", gecho.Field("error", err))
	}
}
