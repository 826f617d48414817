package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderItemLineTotal(t *testing.T) {
	item := &OrderItem{Quantity: 3, UnitPrice: 150000}
	assert.Equal(t, uint64(450000), item.LineTotal())

	zero := &OrderItem{Quantity: 0, UnitPrice: 150000}
	assert.Equal(t, uint64(0), zero.LineTotal())
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, IsValidOrderStatus(status))
	}

	assert.False(t, IsValidOrderStatus("REFUNDED"))
	assert.False(t, IsValidOrderStatus("paid"))
	assert.False(t, IsValidOrderStatus(""))
}

func TestIsValidShippingStatus(t *testing.T) {
	for _, status := range ShippingStatuses {
		assert.True(t, IsValidShippingStatus(status))
	}

	assert.False(t, IsValidShippingStatus("LOST"))
	assert.False(t, IsValidShippingStatus("delivered"))
}
