package tables

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	tableName  struct{}  `bun:"table:orders,alias:o"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CustomerId uuid.UUID `bun:"customer_id,notnull,type:uuid" json:"customer_id"`

	Status OrderStatus `bun:"status,notnull,default:'PENDING'" json:"status"`

	// Shipping destination, snapshotted from the checkout form.
	ShippingName       string `bun:"shipping_name,notnull" json:"shipping_name"`
	ShippingPhone      string `bun:"shipping_phone,notnull" json:"shipping_phone"`
	ShippingAddress    string `bun:"shipping_address,notnull" json:"shipping_address"`
	ShippingCity       string `bun:"shipping_city,notnull" json:"shipping_city"`
	ShippingProvince   string `bun:"shipping_province,notnull" json:"shipping_province"`
	ShippingPostalCode string `bun:"shipping_postal_code,notnull" json:"shipping_postal_code"`

	CourierCode    string `bun:"courier_code,notnull" json:"courier_code"`
	CourierService string `bun:"courier_service,notnull" json:"courier_service"`

	// Money in minor currency units. Total is fixed at checkout as
	// subtotal + shipping cost and never recomputed.
	ShippingCost uint64 `bun:"shipping_cost,notnull,default:0" json:"shipping_cost"`
	Subtotal     uint64 `bun:"subtotal,notnull,default:0" json:"subtotal"`
	Total        uint64 `bun:"total,notnull,default:0" json:"total"`

	TrackingNumber string         `bun:"tracking_number" json:"tracking_number,omitempty"`
	ShippingStatus ShippingStatus `bun:"shipping_status,notnull,default:'NONE'" json:"shipping_status"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	Customer *Customer   `bun:"rel:belongs-to,join:customer_id=id" json:"customer,omitempty"`
	Items    []OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
	Payment  *Payment    `bun:"rel:has-one,join:id=order_id" json:"payment,omitempty"`
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity"`

	// Snapshot at purchase time, independent of later product edits.
	UnitPrice   uint64 `bun:"unit_price,notnull" json:"unit_price"`
	ProductName string `bun:"product_name,notnull" json:"product_name"`
}

// LineTotal is quantity times the price snapshot.
func (oi *OrderItem) LineTotal() uint64 {
	return oi.UnitPrice * uint64(oi.Quantity)
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses lists every valid order status; staff updates are checked
// against it and unknown values are ignored.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

type ShippingStatus string

const (
	ShippingStatusNone       ShippingStatus = "NONE"
	ShippingStatusOnProcess  ShippingStatus = "ON_PROCESS"
	ShippingStatusOnDelivery ShippingStatus = "ON_DELIVERY"
	ShippingStatusDelivered  ShippingStatus = "DELIVERED"
)

var ShippingStatuses = []ShippingStatus{
	ShippingStatusNone,
	ShippingStatusOnProcess,
	ShippingStatusOnDelivery,
	ShippingStatusDelivered,
}

func IsValidOrderStatus(s OrderStatus) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidShippingStatus(s ShippingStatus) bool {
	for _, v := range ShippingStatuses {
		if v == s {
			return true
		}
	}
	return false
}
