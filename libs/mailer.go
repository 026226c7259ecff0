package libs

import (
	"bytes"
	"crypto-cart/models"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends order confirmations over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg MailConfig) (*Mailer, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port := cfg.Port
	if port == 0 {
		port = 587
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password),
		from:   from,
	}, nil
}

var orderConfirmationTemplate = template.Must(template.New("order").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #2563eb; text-align: center; margin-bottom: 30px; }
        .order-box { background-color: #eff6ff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        td { padding: 4px 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">CryptoCart</div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Thank you for your purchase! Your order has been received and is being processed.</p>

        <div class="order-box">
            <p><strong>Order ID:</strong> {{.ID}}</p>
            <table>
                {{range .Items}}
                <tr><td>{{.ProductName}}</td><td>x{{.Quantity}}</td><td>${{.Subtotal.StringFixed 2}}</td></tr>
                {{end}}
            </table>
            <p>Subtotal: ${{.Subtotal.StringFixed 2}}<br>
               Shipping: ${{.Shipping.StringFixed 2}}<br>
               Tax: ${{.Tax.StringFixed 2}}</p>
            <p><strong>Total: ${{.Total.StringFixed 2}}</strong></p>
            <p>Payment method: {{.PaymentMethod}}</p>
        </div>

        <p>Shipping to {{.ShippingAddress.FullName}}, {{.ShippingAddress.StreetAddress}},
           {{.ShippingAddress.City}}, {{.ShippingAddress.State}} {{.ShippingAddress.PostalCode}},
           {{.ShippingAddress.Country}}</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
`))

func RenderOrderConfirmation(order *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := orderConfirmationTemplate.Execute(&buf, order); err != nil {
		return "", fmt.Errorf("failed to render order email: %w", err)
	}
	return buf.String(), nil
}

func (m *Mailer) SendOrderConfirmation(toEmail string, order *models.Order) error {
	body, err := RenderOrderConfirmation(order)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - CryptoCart", order.ID))
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
