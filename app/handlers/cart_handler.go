package handlers

import (
	"net/http"

	"github.com/tokosembilan/go-commerce/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, rnd *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, render: rnd}
}

type cartItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	VariantID *string `json:"variant_id"`
	Qty       int     `json:"qty" validate:"required,gt=0"`
}

type cartQtyRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	VariantID *string `json:"variant_id"`
	Qty       int     `json:"qty" validate:"gte=0"`
}

type applyCouponRequest struct {
	Code string `json:"code" validate:"required,max=50"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	cart, err := h.cartSvc.GetUserCart(r.Context(), userID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	cart, err := h.cartSvc.AddItemToCart(r.Context(), userID, req.ProductID, req.VariantID, req.Qty)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, cart)
}

func (h *CartHandler) UpdateQty(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	var req cartQtyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	cart, err := h.cartSvc.UpdateCartItemQty(r.Context(), userID, req.ProductID, req.VariantID, req.Qty)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	cart, err := h.cartSvc.RemoveItemFromCart(r.Context(), userID, req.ProductID, req.VariantID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, cart)
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	var req applyCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	cart, err := h.cartSvc.ApplyCoupon(r.Context(), userID, req.Code)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	cart, err := h.cartSvc.RemoveCoupon(r.Context(), userID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, cart)
}
