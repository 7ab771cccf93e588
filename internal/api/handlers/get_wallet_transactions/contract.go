package get_wallet_transactions

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

type WalletService interface {
	Transactions(ctx context.Context, userID int64, limit int) ([]*domain.CreditTransaction, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
