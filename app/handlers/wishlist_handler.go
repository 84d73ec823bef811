package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tokosembilan/go-commerce/app/services"
	"github.com/unrolled/render"
)

type WishlistHandler struct {
	wishlistSvc *services.WishlistService
	render      *render.Render
}

func NewWishlistHandler(wishlistSvc *services.WishlistService, rnd *render.Render) *WishlistHandler {
	return &WishlistHandler{wishlistSvc: wishlistSvc, render: rnd}
}

type wishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	wishlist, err := h.wishlistSvc.GetUserWishlist(r.Context(), userID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, wishlist)
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	var req wishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	wishlist, err := h.wishlistSvc.AddProduct(r.Context(), userID, req.ProductID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, wishlist)
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	productID := mux.Vars(r)["productID"]

	wishlist, err := h.wishlistSvc.RemoveProduct(r.Context(), userID, productID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, wishlist)
}
