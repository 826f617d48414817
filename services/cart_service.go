package services

import (
	"context"
	"time"

	"afpromotion_server/database"
	"afpromotion_server/lib"
	"afpromotion_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CartService struct {
	logger  *gecho.Logger
	db      *database.DB
	catalog *CatalogService
}

func NewCartService(logger *gecho.Logger, db *database.DB, catalog *CatalogService) *CartService {
	return &CartService{
		logger:  logger,
		db:      db,
		catalog: catalog,
	}
}

// Cart is what the cart page renders: the items with their products
// preloaded plus the running total in minor units.
type Cart struct {
	Items []tables.CartItem `json:"items"`
	Total uint64            `json:"total"`
}

func (cs *CartService) GetCart(ctx context.Context, customerId uuid.UUID) (*Cart, error) {
	items, err := database.Query[tables.CartItem](cs.db).
		With("Product").
		Where("customer_id", customerId).
		OrderBy("added_at", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cart := &Cart{Items: items}
	for _, item := range items {
		if item.Product != nil {
			cart.Total += item.Product.Price * uint64(item.Quantity)
		}
	}
	return cart, nil
}

// AddProduct puts one unit of the product into the customer's cart. If the
// product is already there the existing row's quantity goes up by one.
func (cs *CartService) AddProduct(ctx context.Context, customerId, productId uuid.UUID) (*tables.CartItem, error) {
	product, err := cs.catalog.GetActiveById(ctx, productId)
	if err != nil {
		return nil, err
	}

	existing, err := database.Query[tables.CartItem](cs.db).
		Where("customer_id", customerId).
		Where("product_id", product.Id).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if existing != nil {
		_, err = database.Query[tables.CartItem](cs.db).
			Where("id", existing.Id).
			Update(ctx, map[string]any{
				"quantity": existing.Quantity + 1,
			})
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		existing.Quantity++
		return existing, nil
	}

	item := &tables.CartItem{
		Id:         uuid.New(),
		CustomerId: customerId,
		ProductId:  product.Id,
		Quantity:   1,
		AddedAt:    time.Now(),
	}

	item, err = database.Query[tables.CartItem](cs.db).Insert(ctx, item)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		// Concurrent add of the same product; retry as an increment.
		if lib.IsUniqueViolation(mappedErr) {
			return cs.AddProduct(ctx, customerId, productId)
		}
		return nil, mappedErr
	}

	cs.logger.Debug("Cart item added",
		gecho.Field("customer_id", customerId),
		gecho.Field("product_id", productId))

	return item, nil
}

// RemoveItem deletes a cart row. The customer scope means one customer can
// never remove another customer's item, it just looks absent.
func (cs *CartService) RemoveItem(ctx context.Context, customerId, itemId uuid.UUID) error {
	affected, err := database.Query[tables.CartItem](cs.db).
		Where("id", itemId).
		Where("customer_id", customerId).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// ClearCart empties the customer's cart. Checkout does its own delete inside
// the order transaction; this is the explicit "empty cart" action.
func (cs *CartService) ClearCart(ctx context.Context, customerId uuid.UUID) error {
	_, err := database.Query[tables.CartItem](cs.db).
		Where("customer_id", customerId).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	return nil
}
