package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/repositories"
)

// StockAlertNotifier persists notifications and mails the shop admin.
// Delivery failures are logged and never surfaced to the caller, an alert
// must not fail the operation that triggered it.
type StockAlertNotifier struct {
	notificationRepo repositories.NotificationRepositoryImpl
	mailer           *Mailer
	adminEmail       string
}

func NewStockAlertNotifier(notificationRepo repositories.NotificationRepositoryImpl, mailer *Mailer, adminEmail string) *StockAlertNotifier {
	return &StockAlertNotifier{
		notificationRepo: notificationRepo,
		mailer:           mailer,
		adminEmail:       adminEmail,
	}
}

func (n *StockAlertNotifier) NotifyLowStock(ctx context.Context, inv *models.Inventory, productName string) {
	stock := inv.StockQuantity
	threshold := inv.Threshold

	notification := &models.Notification{
		ID:      uuid.New().String(),
		Type:    models.NotificationTypeLowStock,
		Title:   fmt.Sprintf("Low stock: %s", productName),
		Message: fmt.Sprintf("Stock for %s is down to %d (threshold %d)", productName, stock, threshold),
	}
	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("NotifyLowStock: failed to persist notification for %s: %v", productName, err)
	}

	if n.mailer == nil || n.adminEmail == "" {
		return
	}
	body := BuildLowStockEmailBody(productName, stock, threshold)
	if err := n.mailer.SendHTMLEmail(n.adminEmail, "Low stock alert: "+productName, body); err != nil {
		log.Printf("NotifyLowStock: failed to email admin about %s: %v", productName, err)
	}
}

func (n *StockAlertNotifier) NotifyOrderPlaced(ctx context.Context, order *models.Order, customerEmail string) {
	notification := &models.Notification{
		ID:      uuid.New().String(),
		Type:    models.NotificationTypeOrder,
		Title:   fmt.Sprintf("New order %s", order.OrderCode),
		Message: fmt.Sprintf("Order %s placed for %s", order.OrderCode, order.GrandTotal.StringFixed(2)),
	}
	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("NotifyOrderPlaced: failed to persist notification for order %s: %v", order.OrderCode, err)
	}

	if n.mailer == nil || customerEmail == "" {
		return
	}
	body := BuildOrderEmailBody(order)
	if err := n.mailer.SendHTMLEmail(customerEmail, "Order confirmation "+order.OrderCode, body); err != nil {
		log.Printf("NotifyOrderPlaced: failed to email customer for order %s: %v", order.OrderCode, err)
	}
}
