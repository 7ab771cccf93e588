package purchase_credits

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/purchase_credits/models"
)

type PurchaseCreditsUseCase interface {
	PurchaseCredits(ctx context.Context, req *models.PurchaseCreditsRequest) (*models.PurchaseCreditsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
