package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"afpromotion_server/database"
	"afpromotion_server/structs"
	"afpromotion_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService sends transactional mail through Resend. All sends are
// best-effort; order flow never fails because mail did not go out.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
	db     *database.DB
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		db:     db,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if es.cfg.Email.ApiKey == "" {
		es.logger.Debug("Email sending skipped, no API key configured", gecho.Field("to", to))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// recipient resolves the user behind a customer profile, preferring the
// already loaded relation.
func (es *EmailService) recipient(ctx context.Context, customer *tables.Customer) (*tables.User, error) {
	if customer.User != nil {
		return customer.User, nil
	}
	return database.Query[tables.User](es.db).Where("id", customer.UserId).First(ctx)
}

// formatRupiah renders minor units as a Rupiah amount with dot separators.
func formatRupiah(amount uint64) string {
	digits := strconv.FormatUint(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "Rp" + b.String()
}

// SendOrderConfirmation mails the checkout summary with the item list and
// the amount still to pay.
func (es *EmailService) SendOrderConfirmation(ctx context.Context, order *tables.Order, customer *tables.Customer) {
	user, err := es.recipient(ctx, customer)
	if err != nil || user == nil {
		es.logger.Warn("Order confirmation skipped, recipient unresolved",
			gecho.Field("order_id", order.Id),
			gecho.Field("error", err))
		return
	}

	var itemsBuilder strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&itemsBuilder, "<li>%dx %s - %s</li>", item.Quantity, item.ProductName, formatRupiah(item.LineTotal()))
	}

	invoiceId := ""
	if order.Payment != nil {
		invoiceId = order.Payment.InvoiceId
	}

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1a56db; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
				ul { list-style-type: none; padding: 0; }
				li { padding: 5px 0; border-bottom: 1px solid #eee; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Thank you for your order!</h1>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>Your order has been received. Below you will find the details.</p>

					<div class="order-details">
						<h3>Invoice: <strong>%s</strong></h3>
						<h4>Items:</h4>
						<ul>%s</ul>
						<p>Subtotal: %s</p>
						<p>Shipping (%s %s): %s</p>
						<p><strong>Total: %s</strong></p>

						<h4>Delivery Address:</h4>
						<p>%s<br>%s<br>%s, %s %s</p>
					</div>

					<p>Your order will be prepared as soon as your payment is confirmed.</p>
				</div>
				<div class="footer">
					<p>%s</p>
				</div>
			</div>
		</body>
		</html>
	`, user.FullName(), invoiceId, itemsBuilder.String(),
		formatRupiah(order.Subtotal), order.CourierCode, order.CourierService, formatRupiah(order.ShippingCost),
		formatRupiah(order.Total),
		order.ShippingName, order.ShippingAddress, order.ShippingCity, order.ShippingProvince, order.ShippingPostalCode,
		es.cfg.Server.AppName)

	subject := fmt.Sprintf("Order confirmation %s", invoiceId)

	if err := es.SendEmail([]string{user.Email}, subject, emailBody); err != nil {
		es.logger.Warn("Failed to send order confirmation", gecho.Field("order_id", order.Id), gecho.Field("error", err))
	}
}

// SendPaymentReceipt mails the receipt after a payment settles.
func (es *EmailService) SendPaymentReceipt(ctx context.Context, order *tables.Order, customer *tables.Customer) {
	user, err := es.recipient(ctx, customer)
	if err != nil || user == nil {
		es.logger.Warn("Payment receipt skipped, recipient unresolved",
			gecho.Field("order_id", order.Id),
			gecho.Field("error", err))
		return
	}

	invoiceId := ""
	var amount uint64
	if order.Payment != nil {
		invoiceId = order.Payment.InvoiceId
		amount = order.Payment.Amount
	}

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1a56db; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Payment received</h1>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>We received your payment of <strong>%s</strong> for invoice <strong>%s</strong>.</p>
					<p>Your order is now being prepared for shipment.</p>
				</div>
				<div class="footer">
					<p>%s</p>
				</div>
			</div>
		</body>
		</html>
	`, user.FullName(), formatRupiah(amount), invoiceId, es.cfg.Server.AppName)

	subject := fmt.Sprintf("Payment received for %s", invoiceId)

	if err := es.SendEmail([]string{user.Email}, subject, emailBody); err != nil {
		es.logger.Warn("Failed to send payment receipt", gecho.Field("order_id", order.Id), gecho.Field("error", err))
	}
}
