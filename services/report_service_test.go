package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"afpromotion_server/structs"
	"afpromotion_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOrder builds an order with the flat 20000 shipping cost baked in;
// total must cover it.
func testOrder(status tables.OrderStatus, total uint64, items ...tables.OrderItem) *tables.Order {
	if total < 20000 {
		panic("testOrder: total below the flat shipping cost")
	}
	subtotal := total - 20000
	return &tables.Order{
		Id:           uuid.New(),
		Status:       status,
		ShippingName: "Walk-in Customer",
		Subtotal:     subtotal,
		ShippingCost: 20000,
		Total:        total,
		CreatedAt:    time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC),
		Items:        items,
	}
}

func TestBuildSalesReportRevenue(t *testing.T) {
	orders := []*tables.Order{
		testOrder(tables.OrderStatusPaid, 100000),
		testOrder(tables.OrderStatusCompleted, 300000),
		testOrder(tables.OrderStatusPending, 999999),
		testOrder(tables.OrderStatusCancelled, 999999),
		testOrder(tables.OrderStatusShipped, 999999),
	}

	report := BuildSalesReport(orders)

	assert.Equal(t, 5, report.TotalOrders)
	// Only paid and completed orders count towards revenue, but the
	// average spreads it over every order in the window.
	assert.Equal(t, uint64(400000), report.TotalRevenue)
	assert.Equal(t, uint64(80000), report.AvgOrderValue)
}

func TestBuildSalesReportEmpty(t *testing.T) {
	report := BuildSalesReport(nil)

	assert.Equal(t, 0, report.TotalOrders)
	assert.Equal(t, uint64(0), report.TotalRevenue)
	assert.Equal(t, uint64(0), report.AvgOrderValue)
	assert.Empty(t, report.ByStatus)
	assert.Empty(t, report.TopProducts)
}

func TestBuildSalesReportStatusOrder(t *testing.T) {
	orders := []*tables.Order{
		testOrder(tables.OrderStatusCancelled, 50000),
		testOrder(tables.OrderStatusPaid, 50000),
		testOrder(tables.OrderStatusPending, 50000),
		testOrder(tables.OrderStatusPaid, 50000),
	}

	report := BuildSalesReport(orders)

	require.Len(t, report.ByStatus, 3)
	assert.Equal(t, []structs.StatusCount{
		{Status: tables.OrderStatusPending, Count: 1},
		{Status: tables.OrderStatusPaid, Count: 2},
		{Status: tables.OrderStatusCancelled, Count: 1},
	}, report.ByStatus)
}

func TestBuildSalesReportTopProducts(t *testing.T) {
	item := func(name string, qty int) tables.OrderItem {
		return tables.OrderItem{ProductName: name, Quantity: qty, UnitPrice: 10000}
	}

	orders := []*tables.Order{
		testOrder(tables.OrderStatusPaid, 50000, item("Roses", 2), item("Tulips", 5)),
		testOrder(tables.OrderStatusPending, 50000, item("Roses", 4), item("Lilies", 3)),
		testOrder(tables.OrderStatusPaid, 50000,
			item("Orchids", 1), item("Daisies", 1), item("Sunflowers", 1), item("Peonies", 1)),
	}

	report := BuildSalesReport(orders)

	// Quantities aggregate across all orders regardless of status,
	// sorted by quantity with name as tie-breaker, capped at five.
	require.Len(t, report.TopProducts, 5)
	assert.Equal(t, structs.TopProduct{ProductName: "Roses", Quantity: 6}, report.TopProducts[0])
	assert.Equal(t, structs.TopProduct{ProductName: "Tulips", Quantity: 5}, report.TopProducts[1])
	assert.Equal(t, structs.TopProduct{ProductName: "Lilies", Quantity: 3}, report.TopProducts[2])
	assert.Equal(t, structs.TopProduct{ProductName: "Daisies", Quantity: 1}, report.TopProducts[3])
	assert.Equal(t, structs.TopProduct{ProductName: "Orchids", Quantity: 1}, report.TopProducts[4])
}

func TestWriteCSV(t *testing.T) {
	order := testOrder(tables.OrderStatusPaid, 170000)
	order.Customer = &tables.Customer{
		User: &tables.User{FirstName: "Siti", LastName: "Rahma", Username: "siti"},
	}

	var buf bytes.Buffer
	err := WriteCSV(&buf, BuildSalesReport([]*tables.Order{order}))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "Order ID,Tanggal,Customer,Status,Subtotal,Shipping,Total", lines[0])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 7)
	assert.Equal(t, order.Id.String(), fields[0])
	assert.Equal(t, "2026-02-14", fields[1])
	assert.Equal(t, "Siti Rahma", fields[2])
	assert.Equal(t, "PAID", fields[3])
	assert.Equal(t, "150000", fields[4])
	assert.Equal(t, "20000", fields[5])
	assert.Equal(t, "170000", fields[6])
}

func TestWriteCSVFallsBackToShippingName(t *testing.T) {
	order := testOrder(tables.OrderStatusCompleted, 50000)

	var buf bytes.Buffer
	err := WriteCSV(&buf, BuildSalesReport([]*tables.Order{order}))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Walk-in Customer")
}
