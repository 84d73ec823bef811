package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/services"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	checkoutSvc *services.CheckoutService
	render      *render.Render
}

func NewCheckoutHandler(checkoutSvc *services.CheckoutService, rnd *render.Render) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc, render: rnd}
}

type checkoutRequest struct {
	ShippingCost decimal.Decimal `json:"shipping_cost"`
}

type paymentNotification struct {
	OrderID           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	order, redirectURL, err := h.checkoutSvc.ProcessCheckout(r.Context(), userID, req.ShippingCost)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusCreated, map[string]interface{}{
		"order":        order,
		"redirect_url": redirectURL,
	})
}

// PaymentNotification receives the gateway's server-to-server status
// callback. Midtrans retries deliveries, so this endpoint is idempotent.
func (h *CheckoutHandler) PaymentNotification(w http.ResponseWriter, r *http.Request) {
	var req paymentNotification
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	order, err := h.checkoutSvc.ConfirmPayment(r.Context(), req.OrderID, req.TransactionStatus)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{
		"order_code":     order.OrderCode,
		"payment_status": order.PaymentStatus,
		"status":         order.Status,
	})
}

func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	order, err := h.checkoutSvc.GetOrder(r.Context(), code)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, order)
}

func (h *CheckoutHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	orders, err := h.checkoutSvc.ListUserOrders(r.Context(), userID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"orders": orders})
}
