package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/neuroplan/rewards-engine/internal/domain"
)

// LedgerRepository реализует domain.LedgerRepository поверх
// append-only таблицы transactions. Баланс всегда производный:
// SUM(amount) по пользователю.
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// CreditWithLock начисляет баллы под advisory-блокировкой счета.
// Блокировка нужна только ради согласованного balance_after;
// начисление само по себе не может увести баланс в минус.
func (r *LedgerRepository) CreditWithLock(ctx context.Context, userID, amount int64, txType domain.TransactionType, reason string, redemptionID *int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var result *domain.Transaction
	err := withRetry(ctx, func() error {
		var err error
		result, err = r.appendWithLock(ctx, userID, amount, txType, reason, redemptionID)
		return err
	})
	return result, err
}

// DebitWithLock атомарно проверяет баланс и записывает списание.
// При нехватке средств транзакция не записывается вовсе.
func (r *LedgerRepository) DebitWithLock(ctx context.Context, userID, amount int64, reason string, redemptionID *int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var result *domain.Transaction
	err := withRetry(ctx, func() error {
		var err error
		result, err = r.appendWithLock(ctx, userID, -amount, domain.TransactionTypeSpent, reason, redemptionID)
		return err
	})
	return result, err
}

// appendWithLock — общий путь записи в леджер: advisory lock по
// user_id, пересчет баланса, проверка на овердрафт, вставка.
func (r *LedgerRepository) appendWithLock(ctx context.Context, userID, amount int64, txType domain.TransactionType, reason string, redemptionID *int64) (*domain.Transaction, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Блокировка по user_id защищает от параллельных списаний
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1`,
		userID,
	).Scan(&balance)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	balanceAfter := balance + amount
	if balanceAfter < 0 {
		return nil, domain.ErrInsufficientBalance
	}

	record := &domain.Transaction{
		UserID:       userID,
		Amount:       amount,
		Type:         txType,
		Reason:       reason,
		RedemptionID: redemptionID,
		BalanceAfter: balanceAfter,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO transactions (user_id, amount, type, reason, redemption_id, balance_after)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		userID, amount, txType, reason, redemptionID, balanceAfter,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		// Частичный уникальный индекс гарантирует один REFUND на обмен
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && txType == domain.TransactionTypeRefund {
			return nil, domain.ErrAlreadyRefunded
		}
		return nil, fmt.Errorf("repository: failed to insert transaction for user %d: %w", userID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit transaction for user %d: %w", userID, err)
	}

	return record, nil
}

// GetBalance получает производный баланс пользователя
func (r *LedgerRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance := &domain.Balance{UserID: userID}

	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount), 0) AS balance,
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) AS total_earned,
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) AS total_spent
		 FROM transactions
		 WHERE user_id = $1`,
		userID,
	).Scan(&balance.Balance, &balance.TotalEarned, &balance.TotalSpent)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM redemptions WHERE user_id = $1 AND status = $2`,
		userID, domain.RedemptionStatusPending,
	).Scan(&balance.PendingRedemptions)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to count pending redemptions for user %d: %w", userID, err)
	}

	return balance, nil
}

// GetTransactions получает историю операций пользователя
func (r *LedgerRepository) GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, amount, type, reason, redemption_id, balance_after, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		t := &domain.Transaction{}
		err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Reason, &t.RedemptionID, &t.BalanceAfter, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}
