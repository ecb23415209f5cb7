package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"simple-ecommerce/config"
	"simple-ecommerce/models"
)

type Mailer interface {
	SendOTP(to, code string) error
	SendReceipt(to string, inv *models.Invoice) error
}

type MailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailService(cfg *config.Config) (*MailService, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return &MailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

func (s *MailService) SendOTP(to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset OTP")

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Password Reset Request</h2>
    <p>You have requested to reset your password. Use the following one-time code:</p>
    <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">%s</p>
    <p><strong>This code will expire in 5 minutes.</strong></p>
    <p>If you did not request a password reset, please ignore this email.</p>
</body>
</html>`, code)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *MailService) SendReceipt(to string, inv *models.Invoice) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Invoice #%d", inv.ID))

	var lines strings.Builder
	for _, item := range inv.Items {
		lines.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%d</td><td>%d</td></tr>",
			item.Name, item.Quantity, item.Price, item.Total))
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Thank you for your order, %s!</h2>
    <table border="1" cellpadding="6" cellspacing="0">
        <tr><th>Product</th><th>Qty</th><th>Price</th><th>Total</th></tr>
        %s
    </table>
    <p><strong>Grand total: %d</strong></p>
</body>
</html>`, inv.Name, lines.String(), inv.Total)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
