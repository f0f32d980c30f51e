package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

const (
	defaultTransactionLimit = 20
	maxTransactionLimit     = 100
)

// LedgerService предоставляет операции со счетом баллов.
// Единственный внешний путь записи — Credit: события начисления
// (завершение задачи, стрик и т.д.) приходят от остального приложения.
type LedgerService struct {
	ledgerRepo domain.LedgerRepository
}

// NewLedgerService создает новый LedgerService
func NewLedgerService(ledgerRepo domain.LedgerRepository) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

// Credit начисляет баллы за событие из внешнего приложения
func (s *LedgerService) Credit(ctx context.Context, userID, amount int64, reason string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	txType := domain.TransactionTypeEarned
	if strings.HasPrefix(reason, "bonus:") {
		txType = domain.TransactionTypeBonus
	}

	tx, err := s.ledgerRepo.CreditWithLock(ctx, userID, amount, txType, reason, nil)
	if err != nil {
		return nil, fmt.Errorf("ledger service: failed to credit %d points to user %d: %w", amount, userID, err)
	}

	return tx, nil
}

// GetBalance получает производный баланс пользователя
func (s *LedgerService) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger service: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// GetTransactions получает историю операций пользователя
func (s *LedgerService) GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}
	if offset < 0 {
		offset = 0
	}

	transactions, err := s.ledgerRepo.GetTransactions(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ledger service: failed to get transactions for user %d: %w", userID, err)
	}

	return transactions, nil
}
