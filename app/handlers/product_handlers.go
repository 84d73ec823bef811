package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/services"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	catalogSvc *services.CatalogService
	reviewSvc  *services.ReviewService
	render     *render.Render
}

func NewProductHandler(catalogSvc *services.CatalogService, reviewSvc *services.ReviewService, rnd *render.Render) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc, reviewSvc: reviewSvc, render: rnd}
}

type createProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Sku         string          `json:"sku" validate:"max=100"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Weight      decimal.Decimal `json:"weight"`
	BrandID     *string         `json:"brand_id"`
	CategoryIDs []string        `json:"category_ids"`
}

type createVariantRequest struct {
	Name  string          `json:"name" validate:"required,max=255"`
	Sku   string          `json:"sku" validate:"max=100"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

type createCategoryRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	ParentID *string `json:"parent_id"`
}

type createBrandRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	return page, perPage
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)

	if keyword := r.URL.Query().Get("q"); keyword != "" {
		products, total, err := h.catalogSvc.SearchProducts(r.Context(), keyword, page, perPage)
		if err != nil {
			writeError(h.render, w, err)
			return
		}
		writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"products": products, "total": total})
		return
	}

	products, total, err := h.catalogSvc.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"products": products, "total": total})
}

func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.catalogSvc.GetProductBySlug(r.Context(), slug)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, product)
}

func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	products, err := h.catalogSvc.ListProductsByCategory(r.Context(), slug)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	product, err := h.catalogSvc.CreateProduct(r.Context(), services.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Sku:         req.Sku,
		Price:       req.Price,
		Weight:      req.Weight,
		BrandID:     req.BrandID,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusCreated, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalogSvc.DeleteProduct(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var req createVariantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	variant, err := h.catalogSvc.CreateVariant(r.Context(), productID, services.CreateVariantInput{
		Name:  req.Name,
		Sku:   req.Sku,
		Price: req.Price,
	})
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusCreated, variant)
}

func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogSvc.ListCategories(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *ProductHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	category, err := h.catalogSvc.CreateCategory(r.Context(), req.Name, req.ParentID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusCreated, category)
}

func (h *ProductHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalogSvc.ListBrands(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{"brands": brands})
}

func (h *ProductHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req createBrandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(h.render, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	brand, err := h.catalogSvc.CreateBrand(r.Context(), req.Name)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusCreated, brand)
}
