package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/services"
	"github.com/unrolled/render"
)

type CouponHandler struct {
	couponSvc *services.CouponService
	render    *render.Render
}

func NewCouponHandler(couponSvc *services.CouponService, rnd *render.Render) *CouponHandler {
	return &CouponHandler{couponSvc: couponSvc, render: rnd}
}

type createCouponRequest struct {
	Code            string          `json:"code" validate:"required,max=50"`
	Type            string          `json:"type" validate:"required,oneof=PERCENTAGE FIXED_AMOUNT FREE_SHIPPING"`
	Value           decimal.Decimal `json:"value"`
	MinimumPurchase decimal.Decimal `json:"minimum_purchase"`
	MaxDiscount     decimal.Decimal `json:"max_discount"`
	UsageLimit      int             `json:"usage_limit" validate:"gte=0"`
	PerUserLimit    int             `json:"per_user_limit" validate:"gte=0"`
	StartDate       time.Time       `json:"start_date" validate:"required"`
	EndDate         time.Time       `json:"end_date" validate:"required"`
}

type validateCouponRequest struct {
	Subtotal decimal.Decimal `json:"subtotal" validate:"required"`
}

func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	coupon, err := h.couponSvc.Create(r.Context(), services.CreateCouponInput{
		Code:            req.Code,
		Type:            req.Type,
		Value:           req.Value,
		MinimumPurchase: req.MinimumPurchase,
		MaxDiscount:     req.MaxDiscount,
		UsageLimit:      req.UsageLimit,
		PerUserLimit:    req.PerUserLimit,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusCreated, coupon)
}

func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponSvc.List(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"coupons": coupons})
}

func (h *CouponHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	coupon, err := h.couponSvc.GetByCode(r.Context(), code)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, coupon)
}

func (h *CouponHandler) Disable(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	coupon, err := h.couponSvc.Disable(r.Context(), code)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, coupon)
}

func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if err := h.couponSvc.Delete(r.Context(), code); err != nil {
		writeError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Validate dry-runs a coupon against a subtotal without touching any
// usage counters.
func (h *CouponHandler) Validate(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	var req validateCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	coupon, discount, err := h.couponSvc.Apply(r.Context(), code, userID, req.Subtotal)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{
		"coupon":   coupon,
		"discount": discount,
	})
}
