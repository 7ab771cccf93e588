package models

// PurchaseCreditsRequest запрос на зачисление купленных кредитов
type PurchaseCreditsRequest struct {
	UserID          int64
	PaymentIntentID string
}

// PurchaseCreditsResponse результат зачисления
type PurchaseCreditsResponse struct {
	AmountCents     int64
	NewBalanceCents int64
	// AlreadyApplied=true означает идемпотентный повтор: этот платеж уже
	// был зачислен ранее
	AlreadyApplied bool
}
