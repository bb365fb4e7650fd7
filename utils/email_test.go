package utils

import (
	"errors"
	"testing"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func testMailer(send func(m *gomail.Message) error) *Mailer {
	m := NewMailer(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, SMTPFrom: "shop@example.com"})
	m.send = send
	return m
}

func TestMailerNotConfigured(t *testing.T) {
	m := NewMailer(&config.Config{})
	err := m.SendOTP("ann@example.com", "123456")
	assert.Error(t, err)
}

func TestMailerSendOTP(t *testing.T) {
	var sent *gomail.Message
	m := testMailer(func(msg *gomail.Message) error {
		sent = msg
		return nil
	})

	require.NoError(t, m.SendOTP("ann@example.com", "123456"))
	require.NotNil(t, sent)
	assert.Equal(t, []string{"ann@example.com"}, sent.GetHeader("To"))
}

func TestMailerSendFailure(t *testing.T) {
	m := testMailer(func(msg *gomail.Message) error { return errors.New("connection refused") })
	err := m.SendOTP("ann@example.com", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestOrderConfirmationBody(t *testing.T) {
	order := &models.Order{
		OrderNumber: 42,
		Subtotal:    200,
		Discount:    15,
		Total:       185,
		Coupon:      models.AppliedCoupon{Code: "SAVE10"},
		Customer:    models.CustomerSnapshot{Name: "Ann", Email: "ann@example.com"},
		Items:       []models.OrderItem{{Title: "Lamp", Quantity: 2, Price: 100, LineTotal: 200}},
	}
	body := orderConfirmationBody(order)
	assert.Contains(t, body, "#42")
	assert.Contains(t, body, "Lamp")
	assert.Contains(t, body, "SAVE10")
	assert.Contains(t, body, "185.00")
}

func TestSendOrderConfirmationRequiresEmail(t *testing.T) {
	m := testMailer(func(msg *gomail.Message) error { return nil })
	assert.Error(t, m.SendOrderConfirmation(&models.Order{OrderNumber: 1}))
}
