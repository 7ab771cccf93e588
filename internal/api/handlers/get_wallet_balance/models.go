package get_wallet_balance

import (
	"time"

	svcModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
)

// BalanceResponse HTTP response model
type BalanceResponse struct {
	UserID       int64   `json:"userId"`
	BalanceCents int64   `json:"balanceCents"`
	LastUpdated  *string `json:"lastUpdated,omitempty"`
}

// FromServiceResponse конвертирует баланс сервиса в HTTP response
func FromServiceResponse(b *svcModels.Balance) *BalanceResponse {
	resp := &BalanceResponse{
		UserID:       b.UserID,
		BalanceCents: b.BalanceCents,
	}
	if !b.LastUpdated.IsZero() {
		s := b.LastUpdated.Format(time.RFC3339)
		resp.LastUpdated = &s
	}
	return resp
}
