package book_car_wash

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_car_wash: invalid input data")

	// ErrSlotUnavailable возвращается, когда запрошенный слот мойки занят
	ErrSlotUnavailable = errors.New("book_car_wash: slot unavailable")

	// ErrInsufficientBalance возвращается, когда на кошельке не хватает средств
	ErrInsufficientBalance = errors.New("book_car_wash: insufficient wallet balance")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("book_car_wash: internal error")
)
