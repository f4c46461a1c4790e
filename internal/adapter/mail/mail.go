package mail

import (
	"context"
	"fmt"

	"github.com/rgladkov/shoporder/internal/adapter/config"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Notifier sends order-confirmation email over SMTP. When no mail host is
// configured every send is a silent no-op, which keeps local and test
// environments working without a mail server.
type Notifier struct {
	conf   func() *config.Mail
	logger *zap.Logger
}

func NewNotifier(conf func() *config.Mail, log *zap.Logger) (*Notifier, error) {
	return &Notifier{
		conf:   conf,
		logger: log,
	}, nil
}

func (n *Notifier) PaymentConfirmed(ctx context.Context, order *domain.Order) error {
	conf := n.conf()
	if conf.Host == "" {
		n.logger.Debug("mail not configured, skipping confirmation",
			zap.String("order", order.ID))
		return nil
	}
	if order.CustomerEmail == "" {
		return fmt.Errorf("order %s has no customer email", order.ID)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", conf.From)
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order %s confirmed", order.ID))
	m.SetBody("text/plain", fmt.Sprintf(
		"Thank you for your purchase!\n\nWe received your payment of %.2f for order %s.\nWe will let you know when it ships.\n",
		float64(order.PricePaidInCents)/100, order.ID))

	d := gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending confirmation for order %s: %w", order.ID, err)
	}

	n.logger.Info("confirmation email sent",
		zap.String("order", order.ID))
	return nil
}
