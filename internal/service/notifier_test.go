package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

func TestWebhookNotifier_Notify(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var received domain.IssuanceEvent
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := NewWebhookNotifier(server.URL, zap.NewNop())

		code := "NP-ABC23456"
		event := domain.IssuanceEvent{RedemptionID: 5, UserID: 7, RewardID: 2, Kind: "coupon_issued", CouponCode: &code}

		err := notifier.Notify(context.Background(), event)
		require.NoError(t, err)
		assert.Equal(t, int64(5), received.RedemptionID)
		assert.Equal(t, "coupon_issued", received.Kind)
		require.NotNil(t, received.CouponCode)
		assert.Equal(t, code, *received.CouponCode)
	})

	t.Run("Retries on server error", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := NewWebhookNotifier(server.URL, zap.NewNop())

		err := notifier.Notify(context.Background(), domain.IssuanceEvent{RedemptionID: 6, Kind: "order_created"})
		require.NoError(t, err)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("Client error is not retried", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		notifier := NewWebhookNotifier(server.URL, zap.NewNop())

		err := notifier.Notify(context.Background(), domain.IssuanceEvent{RedemptionID: 6, Kind: "order_created"})
		assert.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}
