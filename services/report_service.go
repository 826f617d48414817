package services

import (
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"time"

	"afpromotion_server/database"
	"afpromotion_server/lib"
	"afpromotion_server/structs"
	"afpromotion_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// ReportService backs the staff dashboard and the sales report, including
// the CSV export. Revenue counts PAID and COMPLETED orders only.
type ReportService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewReportService(logger *gecho.Logger, db *database.DB) *ReportService {
	return &ReportService{
		logger: logger,
		db:     db,
	}
}

// revenueStatuses are the order statuses that count towards revenue.
var revenueStatuses = map[tables.OrderStatus]bool{
	tables.OrderStatusPaid:      true,
	tables.OrderStatusCompleted: true,
}

// CSVHeader is the exact export header, kept stable for downstream
// spreadsheets that key on it.
var CSVHeader = []string{"Order ID", "Tanggal", "Customer", "Status", "Subtotal", "Shipping", "Total"}

// fetchOrders loads orders inside the optional date window, newest first,
// with items and customer preloaded for aggregation and rendering.
func (rs *ReportService) fetchOrders(ctx context.Context, rng structs.DateRange) ([]*tables.Order, error) {
	query := database.Query[tables.Order](rs.db).
		With("Items").
		With("Customer").
		With("Customer.User").
		OrderBy("o.created_at", database.DESC)

	if rng.Start != nil {
		query = query.WhereOp("o.created_at", ">=", rng.Start.Truncate(24*time.Hour))
	}
	if rng.End != nil {
		query = query.WhereOp("o.created_at", "<", rng.End.Truncate(24*time.Hour).Add(24*time.Hour))
	}

	orders, err := query.All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	result := make([]*tables.Order, len(orders))
	for i := range orders {
		result[i] = &orders[i]
	}
	return result, nil
}

// BuildSalesReport aggregates an order set into report figures. It is pure
// so the same numbers back both the report view and the CSV export.
func BuildSalesReport(orders []*tables.Order) *structs.SalesReport {
	report := &structs.SalesReport{
		Orders:      orders,
		TotalOrders: len(orders),
	}

	byStatus := make(map[tables.OrderStatus]int)
	byProduct := make(map[string]int64)

	for _, order := range orders {
		byStatus[order.Status]++
		if revenueStatuses[order.Status] {
			report.TotalRevenue += order.Total
		}
		for _, item := range order.Items {
			byProduct[item.ProductName] += int64(item.Quantity)
		}
	}

	// Averaged over every order in the window, not just the revenue ones.
	if len(orders) > 0 {
		report.AvgOrderValue = report.TotalRevenue / uint64(len(orders))
	}

	// Status counts in declaration order so the rendering is stable.
	for _, status := range tables.OrderStatuses {
		if count, ok := byStatus[status]; ok {
			report.ByStatus = append(report.ByStatus, structs.StatusCount{Status: status, Count: count})
		}
	}

	for name, qty := range byProduct {
		report.TopProducts = append(report.TopProducts, structs.TopProduct{ProductName: name, Quantity: qty})
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		if report.TopProducts[i].Quantity != report.TopProducts[j].Quantity {
			return report.TopProducts[i].Quantity > report.TopProducts[j].Quantity
		}
		return report.TopProducts[i].ProductName < report.TopProducts[j].ProductName
	})
	if len(report.TopProducts) > 5 {
		report.TopProducts = report.TopProducts[:5]
	}

	return report
}

// SalesReport builds the report for the given window.
func (rs *ReportService) SalesReport(ctx context.Context, rng structs.DateRange) (*structs.SalesReport, error) {
	orders, err := rs.fetchOrders(ctx, rng)
	if err != nil {
		return nil, err
	}
	return BuildSalesReport(orders), nil
}

// Dashboard summarizes all orders plus the five most recent ones.
func (rs *ReportService) Dashboard(ctx context.Context) (*structs.DashboardSummary, error) {
	orders, err := rs.fetchOrders(ctx, structs.DateRange{})
	if err != nil {
		return nil, err
	}

	report := BuildSalesReport(orders)

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &structs.DashboardSummary{
		TotalOrders:  report.TotalOrders,
		TotalRevenue: report.TotalRevenue,
		ByStatus:     report.ByStatus,
		RecentOrders: recent,
	}, nil
}

// WriteCSV streams the report's orders as the export file.
func WriteCSV(w io.Writer, report *structs.SalesReport) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return err
	}

	for _, order := range report.Orders {
		customer := order.ShippingName
		if order.Customer != nil && order.Customer.User != nil {
			customer = order.Customer.User.FullName()
		}

		row := []string{
			order.Id.String(),
			order.CreatedAt.Format("2006-01-02"),
			customer,
			string(order.Status),
			strconv.FormatUint(order.Subtotal, 10),
			strconv.FormatUint(order.ShippingCost, 10),
			strconv.FormatUint(order.Total, 10),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
