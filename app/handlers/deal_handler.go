package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/services"
	"github.com/unrolled/render"
)

type DealHandler struct {
	dealSvc *services.DealService
	render  *render.Render
}

func NewDealHandler(dealSvc *services.DealService, rnd *render.Render) *DealHandler {
	return &DealHandler{dealSvc: dealSvc, render: rnd}
}

type dealRequest struct {
	Name      string          `json:"name" validate:"required,max=255"`
	DealType  string          `json:"deal_type" validate:"required,oneof=FLASH TRENDING DEAL_OF_DAY"`
	Discount  decimal.Decimal `json:"discount"`
	StartTime time.Time       `json:"start_time" validate:"required"`
	EndTime   time.Time       `json:"end_time" validate:"required"`
}

type dealProductsRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1"`
}

func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	deal, err := h.dealSvc.Create(r.Context(), services.CreateDealInput{
		Name:      req.Name,
		DealType:  req.DealType,
		Discount:  req.Discount,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusCreated, deal)
}

func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("active") == "true" {
		deals, err := h.dealSvc.ListActive(r.Context())
		if err != nil {
			writeError(h.render, w, err)
			return
		}
		writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"deals": deals})
		return
	}

	deals, err := h.dealSvc.List(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"deals": deals})
}

func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deal, err := h.dealSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, deal)
}

func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	deal, err := h.dealSvc.Update(r.Context(), id, services.CreateDealInput{
		Name:      req.Name,
		DealType:  req.DealType,
		Discount:  req.Discount,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, deal)
}

func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.dealSvc.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DealHandler) AddProducts(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dealProductsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	deal, err := h.dealSvc.AddProducts(r.Context(), id, req.ProductIDs)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, deal)
}

func (h *DealHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.dealSvc.RemoveProduct(r.Context(), vars["id"], vars["productID"]); err != nil {
		writeError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
