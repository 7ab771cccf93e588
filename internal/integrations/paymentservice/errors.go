package paymentservice

import "errors"

var (
	// ErrIntentNotFound возвращается, когда платежное намерение не найдено
	ErrIntentNotFound = errors.New("paymentservice client: payment intent not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
