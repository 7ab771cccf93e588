package purchase_credits

import (
	ucModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/purchase_credits/models"
)

// PurchaseCreditsRequest HTTP request model
type PurchaseCreditsRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

// PurchaseCreditsResponse HTTP response model
type PurchaseCreditsResponse struct {
	AmountCents     int64 `json:"amountCents"`
	NewBalanceCents int64 `json:"newBalanceCents"`
	AlreadyApplied  bool  `json:"alreadyApplied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *ucModels.PurchaseCreditsResponse) *PurchaseCreditsResponse {
	return &PurchaseCreditsResponse{
		AmountCents:     resp.AmountCents,
		NewBalanceCents: resp.NewBalanceCents,
		AlreadyApplied:  resp.AlreadyApplied,
	}
}
