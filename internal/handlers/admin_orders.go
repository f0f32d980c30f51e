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

// AdminOrdersHandler обслуживает управление заказами и метрики магазина
type AdminOrdersHandler struct {
	fulfillmentService domain.FulfillmentService
	reportingService   domain.ReportingService
	logger             *zap.Logger
}

func NewAdminOrdersHandler(fulfillmentService domain.FulfillmentService, reportingService domain.ReportingService, logger *zap.Logger) *AdminOrdersHandler {
	return &AdminOrdersHandler{
		fulfillmentService: fulfillmentService,
		reportingService:   reportingService,
		logger:             logger,
	}
}

func (h *AdminOrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter domain.OrderFilter
	if s := q.Get("status"); s != "" {
		status := domain.OrderStatus(s)
		if !status.IsValid() {
			http.Error(w, "Invalid status", http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}
	filter.Search = q.Get("search")

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.fulfillmentService.ListOrders(r.Context(), filter, page, limit)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result, h.logger)
}

type updateStatusRequest struct {
	Status       domain.OrderStatus `json:"status"`
	TrackingCode *string            `json:"tracking_code,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
}

func (h *AdminOrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !req.Status.IsValid() {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	order, err := h.fulfillmentService.UpdateStatus(r.Context(), orderID, req.Status, req.TrackingCode, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidTransition):
			http.Error(w, "Invalid status transition", http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrOrderConflict):
			http.Error(w, "Conflict", http.StatusConflict)
		default:
			h.logger.Error("failed to update order status", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, order, h.logger)
}

type cancelOrderRequest struct {
	Reason       string `json:"reason"`
	RefundPoints bool   `json:"refund_points"`
}

type cancelOrderResponse struct {
	RefundedPoints int64 `json:"refunded_points"`
}

func (h *AdminOrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req cancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	refunded, err := h.fulfillmentService.CancelOrder(r.Context(), orderID, req.Reason, req.RefundPoints)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidTransition):
			http.Error(w, "Order cannot be canceled", http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrOrderConflict):
			http.Error(w, "Conflict", http.StatusConflict)
		default:
			h.logger.Error("failed to cancel order", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, cancelOrderResponse{RefundedPoints: refunded}, h.logger)
}

func (h *AdminOrdersHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.reportingService.GetStoreMetrics(r.Context())
	if err != nil {
		h.logger.Error("failed to get store metrics", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, metrics, h.logger)
}
