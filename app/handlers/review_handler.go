package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tokosembilan/go-commerce/app/services"
	"github.com/unrolled/render"
)

type ReviewHandler struct {
	reviewSvc *services.ReviewService
	render    *render.Render
}

func NewReviewHandler(reviewSvc *services.ReviewService, rnd *render.Render) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc, render: rnd}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	productID := mux.Vars(r)["id"]

	var req createReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	review, err := h.reviewSvc.Create(r.Context(), userID, productID, req.Rating, req.Comment)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusCreated, review)
}

func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	page, perPage := pageParams(r)

	summary, err := h.reviewSvc.ListByProduct(r.Context(), productID, page, perPage)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, summary)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.render, w, r)
	if !ok {
		return
	}

	productID := mux.Vars(r)["id"]

	if err := h.reviewSvc.Delete(r.Context(), userID, productID); err != nil {
		writeError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
