package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/neuroplan/rewards-engine/internal/domain"
)

const (
	retryAttempts    = 3
	retryBackoffBase = 50 * time.Millisecond
)

// isRetryable сообщает, стоит ли повторить операцию.
// Повторяем только транзиентные ошибки конкурентного доступа.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 40001 serialization_failure, 40P01 deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// withRetry выполняет fn с ограниченным числом повторов и бэкоффом.
// После исчерпания попыток возвращает domain.ErrUnavailable;
// нетранзиентные ошибки отдаются сразу.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		err = fn()
		if err == nil || !isRetryable(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoffBase << attempt):
		}
	}

	return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
}
