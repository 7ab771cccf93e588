package models

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// Balance текущее состояние кошелька пользователя.
// Отсутствие строки баланса в БД эквивалентно нулевому балансу.
type Balance struct {
	UserID       int64
	BalanceCents int64
	LastUpdated  time.Time
}

// AddCreditsRequest запрос на пополнение кошелька
type AddCreditsRequest struct {
	UserID      int64
	AmountCents int64
	Description string
	// Внешняя ссылка для идемпотентности: повторное пополнение с тем же
	// reference не применяется дважды
	ReferenceID   *string
	ReferenceType *string
}

// DeductCreditsRequest запрос на списание из кошелька
type DeductCreditsRequest struct {
	UserID        int64
	AmountCents   int64
	Description   string
	ReferenceID   *string
	ReferenceType *string
}

// OperationResult результат операции по кошельку
type OperationResult struct {
	Transaction     *domain.CreditTransaction
	NewBalanceCents int64
	// Applied=false означает, что операция уже была применена ранее
	// (идемпотентный повтор) и состояние не менялось
	Applied bool
}
