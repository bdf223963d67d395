// Package notify is the outbound messaging boundary. Provider integration
// is out of scope; the shipped implementation writes to the process log
// the way the original storefront did.
package notify

import (
	"context"
	"fmt"
	"log"

	"tulynx-storefront/internal/domain"
)

type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// LogSender satisfies both sender interfaces by logging the message.
type LogSender struct {
	Logger *log.Logger
}

func (s *LogSender) SendSMS(_ context.Context, phone, message string) error {
	s.Logger.Printf("sms to %s: %s", phone, message)
	return nil
}

func (s *LogSender) SendEmail(_ context.Context, to, subject, _ string) error {
	s.Logger.Printf("email to %s: %s", to, subject)
	return nil
}

// OrderMailer sends the order confirmation after a successful checkout.
// Delivery problems are logged, never surfaced to the buyer.
type OrderMailer struct {
	Email  EmailSender
	Logger *log.Logger
}

func (m *OrderMailer) OrderPlaced(ctx context.Context, order domain.Order) {
	subject := fmt.Sprintf("Order %s confirmed", order.OrderID)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour order %s for $%d.%02d has been placed and is pending.\nEstimated delivery: %s.\n\nThank you for shopping with Tulynx.",
		order.Customer.FirstName,
		order.OrderID,
		order.TotalCents/100, order.TotalCents%100,
		order.Delivery.EstimatedDelivery.Format("Jan 2, 2006"),
	)
	if err := m.Email.SendEmail(ctx, order.Customer.Email, subject, body); err != nil {
		m.Logger.Printf("order %s: send confirmation: %v", order.OrderID, err)
	}
}
