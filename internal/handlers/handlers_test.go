package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neuroplan/rewards-engine/internal/domain"
	domainmocks "github.com/neuroplan/rewards-engine/internal/domain/mocks"
	"github.com/neuroplan/rewards-engine/internal/utils/jwt"
)

func withClaims(req *http.Request, userID int64, isPremium bool, role string) *http.Request {
	claims := &jwt.Claims{UserID: userID, IsPremium: isPremium, Role: role}
	ctx := context.WithValue(req.Context(), ClaimsKey, claims)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestBalanceHandler_GetBalance(t *testing.T) {
	mockService := domainmocks.NewLedgerServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBalanceHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		balance := &domain.Balance{Balance: 500, TotalEarned: 700, TotalSpent: 200}
		mockService.EXPECT().GetBalance(mock.Anything, int64(1)).Return(balance, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
		w := httptest.NewRecorder()

		handler.GetBalance(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Balance
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, int64(500), result.Balance)
		assert.Equal(t, int64(700), result.TotalEarned)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
		w := httptest.NewRecorder()

		handler.GetBalance(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRewardsHandler_Redeem(t *testing.T) {
	mockCatalog := domainmocks.NewCatalogServiceMock(t)
	mockRedemption := domainmocks.NewRedemptionServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewRewardsHandler(mockCatalog, mockRedemption, logger)

	t.Run("Success", func(t *testing.T) {
		key := "client-key-1"
		redemption := &domain.Redemption{ID: 10, UserID: 1, RewardID: 2, PointsSpent: 200, Status: domain.RedemptionStatusCompleted}
		mockRedemption.EXPECT().Redeem(mock.Anything, mock.MatchedBy(func(req domain.RedeemRequest) bool {
			return req.UserID == 1 && req.RewardID == 2 && req.IdempotencyKey != nil && *req.IdempotencyKey == key
		})).Return(redemption, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/rewards/redeem", bytes.NewBufferString(`{"reward_id":2}`))
		req.Header.Set("Idempotency-Key", key)
		w := httptest.NewRecorder()

		handler.Redeem(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusCreated, w.Code)

		var result domain.Redemption
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, int64(10), result.ID)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		mockRedemption.EXPECT().Redeem(mock.Anything, mock.Anything).Return(nil, domain.ErrInsufficientBalance).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/rewards/redeem", bytes.NewBufferString(`{"reward_id":2}`))
		w := httptest.NewRecorder()

		handler.Redeem(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Out of stock", func(t *testing.T) {
		mockRedemption.EXPECT().Redeem(mock.Anything, mock.Anything).Return(nil, domain.ErrOutOfStock).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/rewards/redeem", bytes.NewBufferString(`{"reward_id":2}`))
		w := httptest.NewRecorder()

		handler.Redeem(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Shipping required", func(t *testing.T) {
		mockRedemption.EXPECT().Redeem(mock.Anything, mock.Anything).Return(nil, domain.ErrShippingRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/rewards/redeem", bytes.NewBufferString(`{"reward_id":3}`))
		w := httptest.NewRecorder()

		handler.Redeem(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Premium only reward", func(t *testing.T) {
		mockRedemption.EXPECT().Redeem(mock.Anything, mock.Anything).Return(nil, domain.ErrNotEligible).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/rewards/redeem", bytes.NewBufferString(`{"reward_id":4}`))
		w := httptest.NewRecorder()

		handler.Redeem(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Idempotency key conflict", func(t *testing.T) {
		mockRedemption.EXPECT().Redeem(mock.Anything, mock.Anything).Return(nil, domain.ErrIdempotencyConflict).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/rewards/redeem", bytes.NewBufferString(`{"reward_id":2}`))
		req.Header.Set("Idempotency-Key", "client-key-1")
		w := httptest.NewRecorder()

		handler.Redeem(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/rewards/redeem", bytes.NewBufferString(`{"reward_id":}`))
		w := httptest.NewRecorder()

		handler.Redeem(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/rewards/redeem", bytes.NewBufferString(`{"reward_id":2}`))
		w := httptest.NewRecorder()

		handler.Redeem(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRewardsHandler_ListRewards(t *testing.T) {
	mockCatalog := domainmocks.NewCatalogServiceMock(t)
	mockRedemption := domainmocks.NewRedemptionServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewRewardsHandler(mockCatalog, mockRedemption, logger)

	t.Run("Premium flag passed through", func(t *testing.T) {
		rewards := []*domain.AvailableReward{
			{Reward: domain.Reward{ID: 1, PointsCost: 100}, CanRedeem: true},
		}
		mockCatalog.EXPECT().ListAvailableRewards(mock.Anything, int64(1), true).Return(rewards, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/rewards", nil)
		w := httptest.NewRecorder()

		handler.ListRewards(w, withClaims(req, 1, true, jwt.RoleUser))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRewardsHandler_ApplyCoupon(t *testing.T) {
	mockCatalog := domainmocks.NewCatalogServiceMock(t)
	mockRedemption := domainmocks.NewRedemptionServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewRewardsHandler(mockCatalog, mockRedemption, logger)

	t.Run("Success", func(t *testing.T) {
		discount := &domain.CouponDiscount{Valid: true, DiscountType: domain.DiscountTypePercentage, DiscountValue: 15}
		mockRedemption.EXPECT().ApplyCoupon(mock.Anything, int64(1), "NP-ABC23456").Return(discount, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/coupons/apply", bytes.NewBufferString(`{"code":"NP-ABC23456"}`))
		w := httptest.NewRecorder()

		handler.ApplyCoupon(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.CouponDiscount
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, int64(15), result.DiscountValue)
	})

	t.Run("Already used", func(t *testing.T) {
		mockRedemption.EXPECT().ApplyCoupon(mock.Anything, int64(1), "NP-ABC23456").Return(nil, domain.ErrCouponAlreadyUsed).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/coupons/apply", bytes.NewBufferString(`{"code":"NP-ABC23456"}`))
		w := httptest.NewRecorder()

		handler.ApplyCoupon(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unknown coupon", func(t *testing.T) {
		mockRedemption.EXPECT().ApplyCoupon(mock.Anything, int64(1), "NP-XXXXXXXX").Return(nil, domain.ErrCouponNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/coupons/apply", bytes.NewBufferString(`{"code":"NP-XXXXXXXX"}`))
		w := httptest.NewRecorder()

		handler.ApplyCoupon(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Empty code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/coupons/apply", bytes.NewBufferString(`{"code":""}`))
		w := httptest.NewRecorder()

		handler.ApplyCoupon(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventsHandler_CreditPoints(t *testing.T) {
	mockService := domainmocks.NewLedgerServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewEventsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		tx := &domain.Transaction{ID: 1, UserID: 7, Amount: 50, Type: domain.TransactionTypeEarned}
		mockService.EXPECT().Credit(mock.Anything, int64(7), int64(50), "task:completed:42").Return(tx, nil).Once()

		body := `{"user_id":7,"amount":50,"reason":"task:completed:42"}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/points", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreditPoints(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		mockService.EXPECT().Credit(mock.Anything, int64(7), int64(0), "task:completed:42").Return(nil, domain.ErrInvalidAmount).Once()

		body := `{"user_id":7,"amount":0,"reason":"task:completed:42"}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/points", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreditPoints(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Missing reason", func(t *testing.T) {
		body := `{"user_id":7,"amount":50}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/points", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreditPoints(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminOrdersHandler_UpdateStatus(t *testing.T) {
	mockFulfillment := domainmocks.NewFulfillmentServiceMock(t)
	mockReporting := domainmocks.NewReportingServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAdminOrdersHandler(mockFulfillment, mockReporting, logger)

	t.Run("Success", func(t *testing.T) {
		tracking := "BR123456789"
		order := &domain.Order{ID: 1, Status: domain.OrderStatusShipped, TrackingCode: &tracking}
		mockFulfillment.EXPECT().UpdateStatus(mock.Anything, int64(1), domain.OrderStatusShipped, &tracking, (*string)(nil)).Return(order, nil).Once()

		body := `{"status":"SHIPPED","tracking_code":"BR123456789"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/1/status", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.UpdateStatus(w, withURLParam(req, "orderID", "1"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid transition", func(t *testing.T) {
		mockFulfillment.EXPECT().UpdateStatus(mock.Anything, int64(1), domain.OrderStatusDelivered, (*string)(nil), (*string)(nil)).Return(nil, domain.ErrInvalidTransition).Once()

		body := `{"status":"DELIVERED"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/1/status", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.UpdateStatus(w, withURLParam(req, "orderID", "1"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Concurrent admin change", func(t *testing.T) {
		mockFulfillment.EXPECT().UpdateStatus(mock.Anything, int64(1), domain.OrderStatusProcessing, (*string)(nil), (*string)(nil)).Return(nil, domain.ErrOrderConflict).Once()

		body := `{"status":"PROCESSING"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/1/status", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.UpdateStatus(w, withURLParam(req, "orderID", "1"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unknown status", func(t *testing.T) {
		body := `{"status":"TELEPORTED"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/1/status", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.UpdateStatus(w, withURLParam(req, "orderID", "1"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminOrdersHandler_CancelOrder(t *testing.T) {
	mockFulfillment := domainmocks.NewFulfillmentServiceMock(t)
	mockReporting := domainmocks.NewReportingServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAdminOrdersHandler(mockFulfillment, mockReporting, logger)

	t.Run("Cancel with refund", func(t *testing.T) {
		mockFulfillment.EXPECT().CancelOrder(mock.Anything, int64(1), "damaged in stock", true).Return(int64(500), nil).Once()

		body := `{"reason":"damaged in stock","refund_points":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/1/cancel", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CancelOrder(w, withURLParam(req, "orderID", "1"))
		assert.Equal(t, http.StatusOK, w.Code)

		var result cancelOrderResponse
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, int64(500), result.RefundedPoints)
	})

	t.Run("Delivered order cannot be canceled", func(t *testing.T) {
		mockFulfillment.EXPECT().CancelOrder(mock.Anything, int64(2), "", false).Return(int64(0), domain.ErrInvalidTransition).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/2/cancel", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()

		handler.CancelOrder(w, withURLParam(req, "orderID", "2"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestOrdersHandler_GetOrder(t *testing.T) {
	mockFulfillment := domainmocks.NewFulfillmentServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockFulfillment, logger)

	t.Run("Success", func(t *testing.T) {
		order := &domain.Order{ID: 1, UserID: 7, OrderNumber: "NP20260901-ABC234"}
		mockFulfillment.EXPECT().GetOrder(mock.Anything, int64(7), int64(1)).Return(order, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/orders/1", nil)
		req = withClaims(req, 7, false, jwt.RoleUser)
		w := httptest.NewRecorder()

		handler.GetOrder(w, withURLParam(req, "orderID", "1"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Foreign order hidden", func(t *testing.T) {
		mockFulfillment.EXPECT().GetOrder(mock.Anything, int64(7), int64(2)).Return(nil, domain.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/orders/2", nil)
		req = withClaims(req, 7, false, jwt.RoleUser)
		w := httptest.NewRecorder()

		handler.GetOrder(w, withURLParam(req, "orderID", "2"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(123, true, jwt.RoleUser)
	require.NoError(t, err)

	middleware := AuthMiddleware(jwtManager)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int64(123), claims.UserID)
		assert.True(t, claims.IsPremium)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	middleware := RequireRole(jwt.RoleAdmin)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, withClaims(req, 1, false, jwt.RoleAdmin))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Regular user forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, withClaims(req, 1, false, jwt.RoleUser))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("No claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
