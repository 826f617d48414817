package tables

import (
	"time"

	"github.com/google/uuid"
)

type ProductCategory struct {
	tableName   struct{}  `bun:"table:product_categories,alias:pc"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string    `bun:"name,notnull,unique" json:"name"`
	Description string    `bun:"description" json:"description,omitempty"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
}

type Product struct {
	tableName   struct{}  `bun:"table:products,alias:p"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CategoryId  uuid.UUID `bun:"category_id,notnull,type:uuid" json:"category_id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	Description string    `bun:"description,notnull" json:"description"`
	Price       uint64    `bun:"price,notnull" json:"price"` // minor currency units
	Stock       int64     `bun:"stock,notnull,default:0" json:"stock"`
	ImageURL    string    `bun:"image_url" json:"image_url,omitempty"`
	IsActive    bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Category *ProductCategory `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}
