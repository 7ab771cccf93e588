package get_wallet_balance

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
)

type WalletService interface {
	GetBalance(ctx context.Context, userID int64) (*models.Balance, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
