package services

import (
	"context"
	"time"

	"afpromotion_server/database"
	"afpromotion_server/lib"
	"afpromotion_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PaymentService drives the simulated payment gateway. Visiting the pay
// endpoint settles the pending payment; there is no external callback.
type PaymentService struct {
	logger *gecho.Logger
	db     *database.DB
	orders *OrderService
	email  *EmailService
}

func NewPaymentService(logger *gecho.Logger, db *database.DB, orders *OrderService, email *EmailService) *PaymentService {
	return &PaymentService{
		logger: logger,
		db:     db,
		orders: orders,
		email:  email,
	}
}

// PayOrder settles the order's payment. The transition is PENDING to PAID on
// both the payment and the order, in one transaction. Paying an already paid
// order is a no-op that returns the same success; paid_at keeps its original
// value.
func (ps *PaymentService) PayOrder(ctx context.Context, customer *tables.Customer, orderId uuid.UUID) (*tables.Order, error) {
	order, err := ps.orders.GetForCustomer(ctx, customer.Id, orderId)
	if err != nil {
		return nil, err
	}
	if order.Payment == nil {
		return nil, lib.ErrNotFound
	}

	if order.Payment.Status == tables.PaymentStatusPaid {
		return order, nil
	}

	now := time.Now()

	err = database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*tables.Payment)(nil)).
			Set("status = ?", tables.PaymentStatusPaid).
			Set("paid_at = ?", now).
			Where("order_id = ? AND status = ?", order.Id, tables.PaymentStatusPending).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			// Raced with another pay request; the order is settled either way.
			return nil
		}

		_, err = tx.NewUpdate().
			Model((*tables.Order)(nil)).
			Set("status = ?", tables.OrderStatusPaid).
			Set("updated_at = ?", now).
			Where("id = ?", order.Id).
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.logger.Info("Payment settled",
		gecho.Field("order_id", order.Id),
		gecho.Field("invoice_id", order.Payment.InvoiceId),
		gecho.Field("amount", order.Payment.Amount))

	if ps.email != nil {
		go ps.email.SendPaymentReceipt(context.Background(), order, customer)
	}

	return ps.orders.GetForCustomer(ctx, customer.Id, orderId)
}
