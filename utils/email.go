package utils

import (
	"fmt"
	"strings"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured reports whether enough settings exist to reach an SMTP server
func (c EmailConfig) Configured() bool {
	return c.Host != "" && c.From != ""
}

// Mailer sends transactional emails over SMTP
type Mailer struct {
	Config EmailConfig
	send   func(m *gomail.Message) error
}

// NewMailer builds a Mailer from the loaded configuration
func NewMailer(cfg *config.Config) *Mailer {
	m := &Mailer{Config: EmailConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}}
	m.send = func(msg *gomail.Message) error {
		d := gomail.NewDialer(m.Config.Host, m.Config.Port, m.Config.Username, m.Config.Password)
		return d.DialAndSend(msg)
	}
	return m
}

// DefaultMailer returns a Mailer for the current configuration
func DefaultMailer() *Mailer {
	return NewMailer(config.Current())
}

// SendEmail sends an HTML email
func (m *Mailer) SendEmail(to, subject, body string) error {
	if !m.Config.Configured() {
		return fmt.Errorf("smtp is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.send(msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendOTP emails a password reset code
func (m *Mailer) SendOTP(to, otp string) error {
	minutes := int(config.Current().Tunables.OTPTTL.Minutes())
	body := fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>Use the following code to reset your ShopSphere password:</p>
		<h1 style="color: #4CAF50; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This code will expire in %d minutes.</p>
		<p>If you didn't request this code, please ignore this email.</p>
	`, otp, minutes)
	return m.SendEmail(to, "Your ShopSphere password reset code", body)
}

// SendOrderConfirmation emails the order summary to the customer
func (m *Mailer) SendOrderConfirmation(order *models.Order) error {
	if order.Customer.Email == "" {
		return fmt.Errorf("order %d has no customer email", order.OrderNumber)
	}
	return m.SendEmail(order.Customer.Email, fmt.Sprintf("Order #%d confirmed", order.OrderNumber), orderConfirmationBody(order))
}

func orderConfirmationBody(order *models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%d</td><td>%.2f</td><td>%.2f</td></tr>",
			item.Title, item.Quantity, item.Price, item.LineTotal)
	}

	discount := ""
	if order.Discount > 0 {
		discount = fmt.Sprintf("<p>Coupon %s: -%.2f</p>", order.Coupon.Code, order.Discount)
	}

	return fmt.Sprintf(`
		<h2>Thank you for your order, %s!</h2>
		<p>Order number: <strong>#%d</strong></p>
		<table>
			<tr><th>Item</th><th>Qty</th><th>Price</th><th>Total</th></tr>
			%s
		</table>
		<p>Subtotal: %.2f</p>
		%s
		<p><strong>Total: %.2f</strong></p>
		<p>Ship to: %s</p>
	`, order.Customer.Name, order.OrderNumber, rows.String(), order.Subtotal, discount, order.Total, order.Customer.Address.String())
}
