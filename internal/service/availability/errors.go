package availability

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("availability: vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	// Ошибки доступа к данным не глотаются - проверка доступности обязана
	// падать громко, а не тихо отвечать "свободно"
	ErrInternal = errors.New("availability: internal error")
)
