package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/neuroplan/rewards-engine/internal/domain"
	"go.uber.org/zap"
)

// WebhookNotifier доставляет события выдачи внешнему коллаборатору
// (выпуск купона, регистрация отгрузки). Доставка at-least-once:
// принимающая сторона дедуплицирует по redemption_id.
type WebhookNotifier struct {
	client *retryablehttp.Client
	url    string
}

// NewWebhookNotifier создает новый WebhookNotifier с ограниченными
// повторами и бэкоффом
func NewWebhookNotifier(url string, logger *zap.Logger) *WebhookNotifier {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = retryLogger{logger.Sugar()}

	return &WebhookNotifier{
		client: client,
		url:    url,
	}
}

// retryLogger адаптирует zap к retryablehttp.LeveledLogger
type retryLogger struct {
	l *zap.SugaredLogger
}

func (r retryLogger) Error(msg string, kv ...interface{}) { r.l.Errorw(msg, kv...) }
func (r retryLogger) Info(msg string, kv ...interface{})  { r.l.Infow(msg, kv...) }
func (r retryLogger) Debug(msg string, kv ...interface{}) { r.l.Debugw(msg, kv...) }
func (r retryLogger) Warn(msg string, kv ...interface{})  { r.l.Warnw(msg, kv...) }

// Notify отправляет событие выдачи
func (n *WebhookNotifier) Notify(ctx context.Context, event domain.IssuanceEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notifier: failed to marshal event: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.url, body)
	if err != nil {
		return fmt.Errorf("notifier: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notifier: failed to deliver event for redemption %d: %w", event.RedemptionID, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notifier: unexpected status code %d for redemption %d", resp.StatusCode, event.RedemptionID)
	}

	return nil
}
