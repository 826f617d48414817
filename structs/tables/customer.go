package tables

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the storefront profile linked one-to-one to a login identity.
// Exactly one row exists per user; it is created lazily on first use.
type Customer struct {
	tableName  struct{}  `bun:"table:customers,alias:c"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId     uuid.UUID `bun:"user_id,notnull,unique,type:uuid" json:"user_id"`
	Phone      string    `bun:"phone" json:"phone" validate:"omitempty,max=20"`
	Address    string    `bun:"address" json:"address" validate:"omitempty,max=500"`
	City       string    `bun:"city" json:"city" validate:"omitempty,max=100"`
	Province   string    `bun:"province" json:"province" validate:"omitempty,max=100"`
	PostalCode string    `bun:"postal_code" json:"postal_code" validate:"omitempty,max=10"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt  time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	User *User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
}
