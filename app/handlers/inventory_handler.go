package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/services"
	"github.com/unrolled/render"
)

type InventoryHandler struct {
	invSvc *services.InventoryService
	render *render.Render
}

func NewInventoryHandler(invSvc *services.InventoryService, rnd *render.Render) *InventoryHandler {
	return &InventoryHandler{invSvc: invSvc, render: rnd}
}

type recordChangeRequest struct {
	VariantID       *string `json:"variant_id"`
	ChangeType      string  `json:"change_type" validate:"required,oneof=RESTOCK SALE RETURN MANUAL"`
	QuantityChanged int     `json:"quantity_changed" validate:"required"`
	Note            string  `json:"note" validate:"max=500"`
}

type updateInventoryRequest struct {
	VariantID        *string `json:"variant_id"`
	StockQuantity    *int    `json:"stock_quantity" validate:"omitempty,gte=0"`
	ReservedQuantity *int    `json:"reserved_quantity" validate:"omitempty,gte=0"`
	Threshold        *int    `json:"threshold" validate:"omitempty,gte=0"`
}

// inventoryView attaches the derived fields a stored record never
// carries.
func inventoryView(inv *models.Inventory) map[string]interface{} {
	return map[string]interface{}{
		"product_id":         inv.ProductID,
		"variant_id":         inv.VariantID,
		"stock_quantity":     inv.StockQuantity,
		"reserved_quantity":  inv.ReservedQuantity,
		"threshold":          inv.Threshold,
		"available_quantity": inv.AvailableQuantity(),
		"is_low_stock":       inv.IsLowStock(),
		"last_restocked_at":  inv.LastRestockedAt,
	}
}

func variantIDParam(r *http.Request) *string {
	if v := r.URL.Query().Get("variant_id"); v != "" {
		return &v
	}
	return nil
}

func (h *InventoryHandler) RecordChange(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var req recordChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	inv, err := h.invSvc.RecordChange(r.Context(), services.RecordChangeInput{
		ProductID:       productID,
		VariantID:       req.VariantID,
		ChangeType:      req.ChangeType,
		QuantityChanged: req.QuantityChanged,
		Note:            req.Note,
	})
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, inventoryView(inv))
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	inv, err := h.invSvc.GetInventory(r.Context(), productID, variantIDParam(r))
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, inventoryView(inv))
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var req updateInventoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	inv, err := h.invSvc.UpdateFields(r.Context(), productID, req.VariantID, services.UpdateInventoryInput{
		StockQuantity:    req.StockQuantity,
		ReservedQuantity: req.ReservedQuantity,
		Threshold:        req.Threshold,
	})
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, inventoryView(inv))
}

func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.invSvc.GetLowStockItems(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	views := make([]map[string]interface{}, 0, len(items))
	for i := range items {
		views = append(views, inventoryView(&items[i]))
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"items": views})
}

func (h *InventoryHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	page, perPage := pageParams(r)
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	logs, total, err := h.invSvc.ListLogs(r.Context(), productID, variantIDParam(r), perPage, (page-1)*perPage)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"logs": logs, "total": total})
}
