package tables

import (
	"time"

	"github.com/google/uuid"
)

// CartItem holds a customer's pending selection. The (customer_id, product_id)
// pair is unique; adding a product that is already in the cart increments the
// quantity of the existing row.
type CartItem struct {
	tableName  struct{}  `bun:"table:cart_items,alias:ci"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CustomerId uuid.UUID `bun:"customer_id,notnull,type:uuid,unique:cart_customer_product" json:"customer_id"`
	ProductId  uuid.UUID `bun:"product_id,notnull,type:uuid,unique:cart_customer_product" json:"product_id"`
	Quantity   int       `bun:"quantity,notnull,default:1" json:"quantity"`
	AddedAt    time.Time `bun:"added_at,notnull,default:now()" json:"added_at"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}
