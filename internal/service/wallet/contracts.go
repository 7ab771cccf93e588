package wallet

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// WalletRepository интерфейс репозитория кошелька
type WalletRepository interface {
	GetBalance(ctx context.Context, userID int64) (*domain.CreditBalance, error)
	CreditBalance(ctx context.Context, userID int64, amountCents int64) (int64, error)
	DebitBalance(ctx context.Context, userID int64, amountCents int64) (int64, error)
	InsertTransaction(ctx context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error)
	GetTransactions(ctx context.Context, userID int64, limit int) ([]*domain.CreditTransaction, error)
	GetTransactionByReference(ctx context.Context, userID int64, referenceID, referenceType string, txType domain.TransactionType) (*domain.CreditTransaction, error)
}

// TransactionManager интерфейс менеджера транзакций БД
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
