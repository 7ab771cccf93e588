package wallet

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wallet: invalid input data")

	// ErrInsufficientBalance возвращается, когда списание превышает баланс
	ErrInsufficientBalance = errors.New("wallet: insufficient balance")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wallet: internal error")
)
