package purchase_credits

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("purchase_credits: invalid input data")

	// ErrPaymentNotFound возвращается, когда платежное намерение не найдено
	ErrPaymentNotFound = errors.New("purchase_credits: payment intent not found")

	// ErrPaymentNotSucceeded возвращается, когда платеж не завершен успешно
	ErrPaymentNotSucceeded = errors.New("purchase_credits: payment not succeeded")

	// ErrPaymentMismatch возвращается, когда платеж принадлежит другому пользователю
	ErrPaymentMismatch = errors.New("purchase_credits: payment belongs to another user")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("purchase_credits: internal error")
)
