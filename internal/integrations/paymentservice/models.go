package paymentservice

// Статусы платежного намерения на стороне платежного шлюза
const (
	IntentStatusSucceeded = "succeeded"
	IntentStatusPending   = "pending"
	IntentStatusFailed    = "failed"
)

// PaymentIntent модель платежного намерения из платежного сервиса
type PaymentIntent struct {
	ID          string `json:"id"`
	UserID      int64  `json:"user_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// IsSucceeded сообщает, что платеж завершен успешно
func (p *PaymentIntent) IsSucceeded() bool {
	return p.Status == IntentStatusSucceeded
}

// ErrorResponse модель ошибки от платежного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
