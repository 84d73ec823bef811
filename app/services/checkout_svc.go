package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/repositories"
	"gorm.io/gorm"
)

type CheckoutService struct {
	db            Transactor
	cartRepo      repositories.CartRepositoryImpl
	cartItemRepo  repositories.CartItemRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
	variantRepo   repositories.VariantRepositoryImpl
	userRepo      repositories.UserRepositoryImpl
	orderRepo     repositories.OrderRepositoryImpl
	orderItemRepo repositories.OrderItemRepositoryImpl
	paymentRepo   repositories.PaymentRepositoryImpl
	invSvc        *InventoryService
	couponSvc     *CouponService
	gateway       PaymentGateway
	notifier      *StockAlertNotifier
}

func NewCheckoutService(
	db Transactor,
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	orderItemRepo repositories.OrderItemRepositoryImpl,
	paymentRepo repositories.PaymentRepositoryImpl,
	invSvc *InventoryService,
	couponSvc *CouponService,
	gateway PaymentGateway,
	notifier *StockAlertNotifier,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		cartRepo:      cartRepo,
		cartItemRepo:  cartItemRepo,
		productRepo:   productRepo,
		variantRepo:   variantRepo,
		userRepo:      userRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		paymentRepo:   paymentRepo,
		invSvc:        invSvc,
		couponSvc:     couponSvc,
		gateway:       gateway,
		notifier:      notifier,
	}
}

type lowStockAlert struct {
	inv         *models.Inventory
	productName string
}

// ProcessCheckout turns the user's cart into an order. Order, order
// items, sale ledger entries, the payment record and the cart teardown
// all commit in one transaction; a failed payment-intent call rolls
// everything back.
func (s *CheckoutService) ProcessCheckout(ctx context.Context, userID string, shippingCost decimal.Decimal) (*models.Order, string, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get cart: %w", err)
	}
	detailed, err := s.cartRepo.GetCartWithItems(ctx, cart.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get cart with items: %w", err)
	}
	if detailed == nil || len(detailed.CartItems) == 0 {
		return nil, "", ErrCartEmpty
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	// A FREE_SHIPPING coupon discounts no product line; it waives the
	// shipping fee here instead.
	if detailed.CouponCode != "" && shippingCost.IsPositive() {
		coupon, err := s.couponSvc.GetByCode(ctx, detailed.CouponCode)
		if err != nil {
			if !errors.Is(err, ErrCouponNotFound) {
				return nil, "", err
			}
			log.Printf("ProcessCheckout: coupon %s on cart %s no longer exists", detailed.CouponCode, cart.ID)
		} else if coupon.Type == models.CouponTypeFreeShipping {
			shippingCost = decimal.Zero
		}
	}

	var order *models.Order
	var redirectURL string
	var alerts []lowStockAlert

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem
		itemsTotal := decimal.Zero

		for _, cartItem := range detailed.CartItems {
			product, err := s.productRepo.GetByID(ctx, cartItem.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", cartItem.ProductID, err)
			}
			if product == nil {
				return ErrProductNotFound
			}

			stock := product.StockQuantity
			sku := product.Sku
			name := product.Name
			if cartItem.VariantID != nil {
				variant, err := s.variantRepo.GetByID(ctx, *cartItem.VariantID)
				if err != nil {
					return fmt.Errorf("failed to get variant %s: %w", *cartItem.VariantID, err)
				}
				if variant == nil {
					return ErrVariantNotFound
				}
				stock = variant.StockQuantity
				sku = variant.Sku
				name = fmt.Sprintf("%s (%s)", product.Name, variant.Name)
			}
			if stock < cartItem.Qty {
				return ErrInsufficientStock
			}

			inv, err := s.invSvc.RecordChangeInTx(ctx, tx, RecordChangeInput{
				ProductID:       cartItem.ProductID,
				VariantID:       cartItem.VariantID,
				ChangeType:      models.ChangeTypeSale,
				QuantityChanged: -cartItem.Qty,
				Note:            "checkout",
			})
			if err != nil {
				return fmt.Errorf("failed to deduct stock for %s: %w", name, err)
			}
			alerts = append(alerts, lowStockAlert{inv: inv, productName: name})

			orderItems = append(orderItems, models.OrderItem{
				ID:          uuid.New().String(),
				ProductID:   cartItem.ProductID,
				VariantID:   cartItem.VariantID,
				ProductName: name,
				ProductSku:  sku,
				Qty:         cartItem.Qty,
				Price:       cartItem.BasePrice,
				BaseTotal:   cartItem.BaseTotal,
				TaxAmount:   cartItem.TaxAmount,
				TaxPercent:  cartItem.TaxPercent,
				GrandTotal:  cartItem.GrandTotal,
			})
			itemsTotal = itemsTotal.Add(cartItem.GrandTotal)
		}

		orderCode := fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8])
		grandTotal := itemsTotal.Sub(detailed.DiscountAmount).Add(shippingCost)
		if grandTotal.IsNegative() {
			grandTotal = decimal.Zero
		}

		order = &models.Order{
			ID:             uuid.New().String(),
			UserID:         userID,
			OrderCode:      orderCode,
			OrderDate:      time.Now(),
			BaseTotalPrice: detailed.BaseTotalPrice,
			TaxAmount:      detailed.TaxAmount,
			TaxPercent:     detailed.TaxPercent,
			DiscountAmount: detailed.DiscountAmount,
			CouponCode:     detailed.CouponCode,
			ShippingCost:   shippingCost,
			GrandTotal:     grandTotal,
			PaymentStatus:  "pending",
			Status:         models.OrderStatusPending,
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := s.orderItemRepo.BulkCreate(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		order.OrderItems = orderItems

		intent, err := s.gateway.CreateIntent(order, user)
		if err != nil {
			return err
		}

		payment := &models.Payment{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			Number:      order.OrderCode,
			Amount:      order.GrandTotal,
			Method:      "Midtrans Snap",
			Status:      "pending",
			PaymentType: "snap",
			Token:       intent.Token,
		}
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to create payment record: %w", err)
		}

		if err := s.orderRepo.UpdatePaymentDetails(ctx, tx, order.ID, intent.Token, intent.RedirectURL); err != nil {
			return fmt.Errorf("failed to store payment details: %w", err)
		}
		order.PaymentToken = intent.Token
		order.PaymentURL = intent.RedirectURL
		redirectURL = intent.RedirectURL

		return s.cartItemRepo.ClearCartItems(ctx, tx, cart.ID)
	})
	if err != nil {
		return nil, "", err
	}

	if err := s.cartRepo.DeleteCart(ctx, cart.ID); err != nil {
		log.Printf("ProcessCheckout: failed to delete emptied cart %s: %v", cart.ID, err)
	}

	for _, a := range alerts {
		s.invSvc.AlertLowStock(ctx, a.inv, a.productName)
	}

	log.Printf("Checkout completed for order %s", order.OrderCode)
	return order, redirectURL, nil
}

// ConfirmPayment applies a gateway status callback to the order. It is
// safe to call repeatedly for the same order; a settled order that sees a
// second settlement notification is left as is and coupon usage is
// recorded at most once.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, orderCode, transactionStatus string) (*models.Order, error) {
	order, err := s.orderRepo.FindByCode(ctx, orderCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %w", orderCode, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	switch transactionStatus {
	case "settlement", "capture":
		if order.Status == models.OrderStatusProcessing || order.Status == models.OrderStatusCompleted {
			return order, nil
		}
		err := s.db.Transaction(func(tx *gorm.DB) error {
			return s.orderRepo.UpdatePaymentStatusAndOrderStatus(ctx, tx, order.ID, "paid", models.OrderStatusProcessing)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to mark order paid: %w", err)
		}
		if err := s.updatePaymentRow(ctx, order.ID, "paid"); err != nil {
			return nil, err
		}
		if order.CouponCode != "" {
			if err := s.couponSvc.RecordUsage(ctx, order.CouponCode, order.ID, order.UserID, order.DiscountAmount); err != nil {
				log.Printf("ConfirmPayment: failed to record coupon usage for order %s: %v", order.OrderCode, err)
			}
		}
		if s.notifier != nil {
			user, err := s.userRepo.FindByID(ctx, order.UserID)
			email := ""
			if err == nil && user != nil {
				email = user.Email
			}
			s.notifier.NotifyOrderPlaced(ctx, order, email)
		}
		order.PaymentStatus = "paid"
		order.Status = models.OrderStatusProcessing
		return order, nil

	case "deny", "cancel", "expire":
		if order.Status == models.OrderStatusCancelled {
			return order, nil
		}
		if err := s.cancelAndRestock(ctx, order); err != nil {
			return nil, err
		}
		order.PaymentStatus = transactionStatus
		order.Status = models.OrderStatusCancelled
		return order, nil

	default:
		// pending and such; nothing to apply yet
		return order, nil
	}
}

// cancelAndRestock returns every deducted unit to inventory with
// compensating RETURN ledger entries and cancels the order, atomically.
func (s *CheckoutService) cancelAndRestock(ctx context.Context, order *models.Order) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.OrderItems {
			_, err := s.invSvc.RecordChangeInTx(ctx, tx, RecordChangeInput{
				ProductID:       item.ProductID,
				VariantID:       item.VariantID,
				ChangeType:      models.ChangeTypeReturn,
				QuantityChanged: item.Qty,
				Note:            fmt.Sprintf("order %s cancelled", order.OrderCode),
			})
			if err != nil {
				return fmt.Errorf("failed to restock %s: %w", item.ProductName, err)
			}
		}
		return s.orderRepo.UpdatePaymentStatusAndOrderStatus(ctx, tx, order.ID, "failed", models.OrderStatusCancelled)
	})
	if err != nil {
		return err
	}

	if err := s.updatePaymentRow(ctx, order.ID, "failed"); err != nil {
		log.Printf("cancelAndRestock: %v", err)
	}
	return nil
}

func (s *CheckoutService) updatePaymentRow(ctx context.Context, orderID, status string) error {
	payment, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to find payment for order %s: %w", orderID, err)
	}
	if payment == nil {
		return nil
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.paymentRepo.UpdateStatus(ctx, tx, payment.ID, status)
	})
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	return nil
}

func (s *CheckoutService) GetOrder(ctx context.Context, orderCode string) (*models.Order, error) {
	order, err := s.orderRepo.FindByCode(ctx, orderCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %w", orderCode, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *CheckoutService) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.FindByUserID(ctx, userID)
}
