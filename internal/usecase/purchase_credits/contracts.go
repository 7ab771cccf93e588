package purchase_credits

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/integrations/paymentservice"
	walletModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
)

// PaymentClient интерфейс клиента платежного сервиса
type PaymentClient interface {
	GetPaymentIntent(ctx context.Context, intentID string) (*paymentservice.PaymentIntent, error)
}

// WalletService интерфейс сервиса кошелька
type WalletService interface {
	AddCredits(ctx context.Context, req *walletModels.AddCreditsRequest) (*walletModels.OperationResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
