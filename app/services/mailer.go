package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/utils/format"
)

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config MailConfig
}

func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {
	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	if err != nil {
		log.Printf("Failed to send HTML email to %s: %v", to, err)
		return fmt.Errorf("failed to send HTML email: %w", err)
	}

	return nil
}

func BuildLowStockEmailBody(productName string, stock, threshold int) string {
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>Low Stock Alert</title>
            <style>
                body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                .header { background-color: #f8f8f8; padding: 10px 0; text-align: center; border-bottom: 1px solid #ddd; }
                .content { padding: 20px; }
                .stock { font-size: 1.5em; font-weight: bold; color: #dc3545; }
            </style>
        </head>
        <body>
            <div class="container">
                <div class="header">
                    <h2>Low Stock Alert</h2>
                </div>
                <div class="content">
                    <p>Stock for <strong>%s</strong> has dropped to <span class="stock">%d</span>, at or below its threshold of %d.</p>
                    <p>Restock soon to avoid missed sales.</p>
                </div>
            </div>
        </body>
        </html>
    `, productName, stock, threshold)
}

func BuildOrderEmailBody(order *models.Order) string {
	items := ""
	for _, item := range order.OrderItems {
		items += fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%s</td></tr>", item.ProductName, item.Qty, format.FormatRupiah(item.GrandTotal))
	}
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>Order Confirmation</title>
            <style>
                body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                table { width: 100%%; border-collapse: collapse; }
                th, td { padding: 8px; border-bottom: 1px solid #ddd; text-align: left; }
            </style>
        </head>
        <body>
            <div class="container">
                <h2>Thanks for your order %s</h2>
                <table>
                    <tr><th>Product</th><th>Qty</th><th>Total</th></tr>
                    %s
                </table>
                <p>Grand total: <strong>%s</strong></p>
            </div>
        </body>
        </html>
    `, order.OrderCode, items, format.FormatRupiah(order.GrandTotal))
}
