package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

// RewardsHandler обслуживает каталог наград и обмен баллов
type RewardsHandler struct {
	catalogService    domain.CatalogService
	redemptionService domain.RedemptionService
	logger            *zap.Logger
}

func NewRewardsHandler(catalogService domain.CatalogService, redemptionService domain.RedemptionService, logger *zap.Logger) *RewardsHandler {
	return &RewardsHandler{
		catalogService:    catalogService,
		redemptionService: redemptionService,
		logger:            logger,
	}
}

func (h *RewardsHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetClaims(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rewards, err := h.catalogService.ListAvailableRewards(r.Context(), claims.UserID, claims.IsPremium)
	if err != nil {
		h.logger.Error("failed to list rewards", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, rewards, h.logger)
}

type redeemRequest struct {
	RewardID int64                `json:"reward_id"`
	Shipping *domain.ShippingInfo `json:"shipping,omitempty"`
}

func (h *RewardsHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetClaims(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.RewardID <= 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var idempotencyKey *string
	if key := r.Header.Get("Idempotency-Key"); key != "" {
		idempotencyKey = &key
	}

	redemption, err := h.redemptionService.Redeem(r.Context(), domain.RedeemRequest{
		UserID:         claims.UserID,
		IsPremium:      claims.IsPremium,
		RewardID:       req.RewardID,
		Shipping:       req.Shipping,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRewardNotFound), errors.Is(err, domain.ErrRewardInactive):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInsufficientBalance):
			http.Error(w, "Payment Required", http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrOutOfStock):
			http.Error(w, "Out of stock", http.StatusConflict)
		case errors.Is(err, domain.ErrNotEligible):
			http.Error(w, "Forbidden", http.StatusForbidden)
		case errors.Is(err, domain.ErrShippingRequired):
			http.Error(w, "Shipping info required", http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrIdempotencyConflict):
			http.Error(w, "Idempotency key conflict", http.StatusConflict)
		case errors.Is(err, domain.ErrUnavailable):
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		default:
			h.logger.Error("failed to redeem reward", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, redemption, h.logger)
}

func (h *RewardsHandler) GetRedemptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	redemptions, err := h.redemptionService.GetRedemptions(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get redemptions", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(redemptions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, redemptions, h.logger)
}

type couponRequest struct {
	Code string `json:"code"`
}

func (h *RewardsHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req couponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	discount, err := h.redemptionService.ApplyCoupon(r.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCouponNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrCouponAlreadyUsed):
			http.Error(w, "Coupon already used", http.StatusConflict)
		default:
			h.logger.Error("failed to apply coupon", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, discount, h.logger)
}

func (h *RewardsHandler) UseCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req couponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.redemptionService.MarkCouponUsed(r.Context(), userID, req.Code); err != nil {
		switch {
		case errors.Is(err, domain.ErrCouponNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrCouponAlreadyUsed):
			http.Error(w, "Coupon already used", http.StatusConflict)
		default:
			h.logger.Error("failed to mark coupon used", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
