package tables

import (
	"time"

	"github.com/google/uuid"
)

// Payment is the one-to-one payment record created alongside an order at
// checkout. Only the PENDING to PAID transition is exercised by the
// simulated gateway; FAILED and EXPIRED exist for completeness.
type Payment struct {
	tableName struct{}  `bun:"table:payments,alias:pay"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,unique,type:uuid" json:"order_id"`

	Amount      uint64        `bun:"amount,notnull" json:"amount"`
	Status      PaymentStatus `bun:"status,notnull,default:'PENDING'" json:"status"`
	InvoiceId   string        `bun:"invoice_id" json:"invoice_id,omitempty"`
	PaymentLink string        `bun:"payment_link" json:"payment_link,omitempty"`

	CreatedAt time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	PaidAt    *time.Time `bun:"paid_at,nullzero" json:"paid_at,omitempty"`
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	PaymentStatusExpired PaymentStatus = "EXPIRED"
)
