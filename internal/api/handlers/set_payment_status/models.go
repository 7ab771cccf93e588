package set_payment_status

import "github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"

// SetPaymentStatusRequest HTTP request model
type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"` // unpaid | paid | refunded
}

// ToDomain конвертирует статус запроса в доменный тип
func (r *SetPaymentStatusRequest) ToDomain() domain.PaymentStatus {
	return domain.PaymentStatus(r.PaymentStatus)
}
