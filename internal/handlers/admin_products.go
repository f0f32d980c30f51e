package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

// AdminProductsHandler обслуживает админ-CRUD товаров магазина
type AdminProductsHandler struct {
	productService domain.ProductService
	logger         *zap.Logger
}

func NewAdminProductsHandler(productService domain.ProductService, logger *zap.Logger) *AdminProductsHandler {
	return &AdminProductsHandler{
		productService: productService,
		logger:         logger,
	}
}

func (h *AdminProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter domain.ProductFilter
	filter.Search = q.Get("search")
	if category := q.Get("category"); category != "" {
		filter.Category = &category
	}
	if activeRaw := q.Get("active"); activeRaw != "" {
		active, err := strconv.ParseBool(activeRaw)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		filter.Active = &active
	}

	products, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, products, h.logger)
}

func (h *AdminProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	created, err := h.productService.CreateProduct(r.Context(), &product)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to create product", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created, h.logger)
}

func (h *AdminProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var upd domain.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	updated, err := h.productService.UpdateProduct(r.Context(), productID, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			h.logger.Error("failed to update product", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated, h.logger)
}

func (h *AdminProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete product", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
