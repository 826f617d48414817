package services

import (
	"context"
	"time"

	"afpromotion_server/config"
	"afpromotion_server/database"
	"afpromotion_server/lib"
	"afpromotion_server/structs"
	"afpromotion_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger *gecho.Logger
	db     *database.DB
	email  *EmailService
}

func NewOrderService(logger *gecho.Logger, db *database.DB, email *EmailService) *OrderService {
	return &OrderService{
		logger: logger,
		db:     db,
		email:  email,
	}
}

// Checkout converts the customer's cart into an order. Everything happens in
// one transaction: the order row, the item snapshots, the stock decrements,
// the pending payment and the cart cleanup all commit together or not at all.
//
// Stock is decremented conditionally (stock >= quantity); a row that does not
// match means another checkout got there first and the whole transaction
// rolls back with ErrInsufficientStock.
func (os *OrderService) Checkout(ctx context.Context, customer *tables.Customer, req *structs.CheckoutRequest) (*tables.Order, error) {
	cfg := config.GetConfig()

	var order *tables.Order

	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		var cartItems []tables.CartItem
		err := tx.NewSelect().
			Model(&cartItems).
			Relation("Product").
			Where("ci.customer_id = ?", customer.Id).
			Order("ci.added_at ASC").
			Scan(ctx)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return lib.ErrEmptyCart
		}

		orderId := uuid.New()
		now := time.Now()

		var subtotal uint64
		items := make([]tables.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			if ci.Product == nil {
				return lib.ErrNotFound
			}

			res, err := tx.NewUpdate().
				Model((*tables.Product)(nil)).
				Set("stock = stock - ?", ci.Quantity).
				Set("updated_at = ?", now).
				Where("id = ? AND stock >= ?", ci.ProductId, ci.Quantity).
				Exec(ctx)
			if err != nil {
				return err
			}
			affected, _ := res.RowsAffected()
			if affected == 0 {
				return lib.ErrInsufficientStock
			}

			items = append(items, tables.OrderItem{
				Id:          uuid.New(),
				OrderId:     orderId,
				ProductId:   ci.ProductId,
				Quantity:    ci.Quantity,
				UnitPrice:   ci.Product.Price,
				ProductName: ci.Product.Name,
			})
			subtotal += ci.Product.Price * uint64(ci.Quantity)
		}

		shippingCost := cfg.Shop.ShippingFlatCost

		order = &tables.Order{
			Id:                 orderId,
			CustomerId:         customer.Id,
			Status:             tables.OrderStatusPending,
			ShippingName:       req.ShippingName,
			ShippingPhone:      req.ShippingPhone,
			ShippingAddress:    req.ShippingAddress,
			ShippingCity:       req.ShippingCity,
			ShippingProvince:   req.ShippingProvince,
			ShippingPostalCode: req.ShippingPostalCode,
			CourierCode:        req.CourierCode,
			CourierService:     req.CourierService,
			ShippingCost:       shippingCost,
			Subtotal:           subtotal,
			Total:              subtotal + shippingCost,
			ShippingStatus:     tables.ShippingStatusNone,
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return err
		}

		invoiceId, err := lib.GenerateInvoiceId()
		if err != nil {
			return err
		}

		payment := &tables.Payment{
			Id:        uuid.New(),
			OrderId:   orderId,
			Amount:    order.Total,
			Status:    tables.PaymentStatusPending,
			InvoiceId: invoiceId,
			CreatedAt: now,
		}
		if _, err := tx.NewInsert().Model(payment).Exec(ctx); err != nil {
			return err
		}

		_, err = tx.NewDelete().
			Model((*tables.CartItem)(nil)).
			Where("customer_id = ?", customer.Id).
			Exec(ctx)
		if err != nil {
			return err
		}

		order.Items = items
		order.Payment = payment
		return nil
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	os.logger.Info("Order placed",
		gecho.Field("order_id", order.Id),
		gecho.Field("customer_id", customer.Id),
		gecho.Field("total", order.Total))

	if os.email != nil {
		go os.email.SendOrderConfirmation(context.Background(), order, customer)
	}

	return order, nil
}

// ListForCustomer returns the customer's order history, newest first.
func (os *OrderService) ListForCustomer(ctx context.Context, customerId uuid.UUID) ([]tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		With("Payment").
		Where("customer_id", customerId).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return orders, nil
}

// GetForCustomer returns one order with items and payment, scoped to the
// owning customer. Someone else's order id reads as not found.
func (os *OrderService) GetForCustomer(ctx context.Context, customerId, orderId uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		With("Items").
		With("Payment").
		Where("o.id", orderId).
		Where("o.customer_id", customerId).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// ListAll is the staff order list, optionally filtered by status. An unknown
// status value yields an empty list rather than an error.
func (os *OrderService) ListAll(ctx context.Context, status string) ([]tables.Order, error) {
	query := database.Query[tables.Order](os.db).
		With("Customer").
		With("Customer.User").
		With("Payment").
		OrderBy("created_at", database.DESC)

	if status != "" {
		query = query.Where("o.status", status)
	}

	orders, err := query.All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return orders, nil
}

// GetById is the staff order detail lookup, no ownership scope.
func (os *OrderService) GetById(ctx context.Context, orderId uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		With("Customer").
		With("Customer.User").
		With("Items").
		With("Payment").
		Where("o.id", orderId).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// UpdateFulfillment applies the staff order-update form. Status values that
// are not in the known enum lists are skipped silently; the tracking number
// is always written, including writing it back to empty.
func (os *OrderService) UpdateFulfillment(ctx context.Context, orderId uuid.UUID, req *structs.FulfillmentUpdateRequest) (*tables.Order, error) {
	order, err := os.GetById(ctx, orderId)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"tracking_number": req.TrackingNumber,
		"updated_at":      time.Now(),
	}
	if tables.IsValidOrderStatus(tables.OrderStatus(req.Status)) {
		updates["status"] = req.Status
	}
	if tables.IsValidShippingStatus(tables.ShippingStatus(req.ShippingStatus)) {
		updates["shipping_status"] = req.ShippingStatus
	}

	_, err = database.Query[tables.Order](os.db).
		Where("id", order.Id).
		Update(ctx, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	os.logger.Info("Order fulfillment updated",
		gecho.Field("order_id", order.Id),
		gecho.Field("status", req.Status),
		gecho.Field("shipping_status", req.ShippingStatus))

	return os.GetById(ctx, orderId)
}
