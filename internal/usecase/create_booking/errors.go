package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrVehicleUnavailable возвращается, когда запрошенный интервал занят
	ErrVehicleUnavailable = errors.New("create_booking: vehicle unavailable for requested period")

	// ErrInsufficientBalance возвращается, когда на кошельке не хватает средств
	ErrInsufficientBalance = errors.New("create_booking: insufficient wallet balance")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_booking: internal error")
)
