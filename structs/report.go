package structs

import (
	"time"

	"afpromotion_server/structs/tables"
)

// DateRange is an optional closed date window over order creation dates.
// A nil bound means no filter on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the range, comparing calendar
// dates the way the report filters do.
func (r DateRange) Contains(t time.Time) bool {
	day := t.Truncate(24 * time.Hour)
	if r.Start != nil && day.Before(r.Start.Truncate(24*time.Hour)) {
		return false
	}
	if r.End != nil && day.After(r.End.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

type TopProduct struct {
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

type StatusCount struct {
	Status tables.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

type SalesReport struct {
	Orders        []*tables.Order `json:"orders"`
	TotalOrders   int             `json:"total_orders"`
	TotalRevenue  uint64          `json:"total_revenue"`
	AvgOrderValue uint64          `json:"avg_order_value"`
	TopProducts   []TopProduct    `json:"top_products"`
	ByStatus      []StatusCount   `json:"by_status"`
}

type DashboardSummary struct {
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue uint64          `json:"total_revenue"`
	ByStatus     []StatusCount   `json:"by_status"`
	RecentOrders []*tables.Order `json:"recent_orders"`
}
