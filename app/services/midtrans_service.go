package services

import (
	"fmt"
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
)

// PaymentIntent is what the gateway hands back for a freshly created
// payment session.
type PaymentIntent struct {
	Token       string
	RedirectURL string
}

type PaymentGateway interface {
	CreateIntent(order *models.Order, user *models.User) (*PaymentIntent, error)
}

type MidtransGateway struct {
	snapClient snap.Client
	appBaseURL string
}

func NewMidtransGateway(snapClient snap.Client, appBaseURL string) *MidtransGateway {
	return &MidtransGateway{snapClient: snapClient, appBaseURL: appBaseURL}
}

func (g *MidtransGateway) CreateIntent(order *models.Order, user *models.User) (*PaymentIntent, error) {
	var itemDetails []midtrans.ItemDetails
	for _, item := range order.OrderItems {
		itemName := item.ProductName
		if len(itemName) > 50 {
			itemName = itemName[:50]
		}
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    item.ProductID,
			Name:  itemName,
			Price: item.GrandTotal.Round(0).IntPart(),
			Qty:   int32(item.Qty),
		})
	}

	if order.ShippingCost.GreaterThan(decimal.Zero) {
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    "SHIPPING_FEE",
			Name:  "Shipping fee",
			Price: order.ShippingCost.Round(0).IntPart(),
			Qty:   1,
		})
	}

	if order.DiscountAmount.GreaterThan(decimal.Zero) {
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    "DISCOUNT",
			Name:  fmt.Sprintf("Discount (%s)", order.CouponCode),
			Price: order.DiscountAmount.Round(0).Neg().IntPart(),
			Qty:   1,
		})
	}

	// Midtrans rejects requests where the item lines do not sum to the
	// gross amount, so rounding drift gets its own line.
	itemsTotal := decimal.Zero
	for _, item := range itemDetails {
		itemsTotal = itemsTotal.Add(decimal.NewFromInt(item.Price).Mul(decimal.NewFromInt32(item.Qty)))
	}
	grossAmount := order.GrandTotal.Round(0)
	if diff := grossAmount.Sub(itemsTotal); !diff.IsZero() {
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    "ADJUSTMENT",
			Name:  "Rounding adjustment",
			Price: diff.IntPart(),
			Qty:   1,
		})
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderCode,
			GrossAmt: grossAmount.IntPart(),
		},
		Items: &itemDetails,
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FirstName,
			LName: user.LastName,
			Email: user.Email,
			Phone: user.Phone,
		},
		EnabledPayments: snap.AllSnapPaymentType,
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/checkout/finish?order_code=%s", g.appBaseURL, order.OrderCode),
		},
	}

	snapResp, err := g.snapClient.CreateTransaction(snapReq)
	if err != nil {
		log.Printf("CreateIntent: midtrans CreateTransaction failed for order %s: %v", order.OrderCode, err)
		return nil, fmt.Errorf("failed to initiate midtrans transaction: %w", err)
	}
	if snapResp == nil || snapResp.Token == "" || snapResp.RedirectURL == "" {
		return nil, fmt.Errorf("midtrans returned an incomplete response for order %s", order.OrderCode)
	}

	return &PaymentIntent{Token: snapResp.Token, RedirectURL: snapResp.RedirectURL}, nil
}
