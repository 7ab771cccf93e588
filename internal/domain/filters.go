package domain

import "time"

// VehicleRentalsFilter фильтр выборки активных арендных бронирований.
// Идентификационные поля работают как OR-префильтр: точная атрибуция
// бронирования к автомобилю выполняется на уровне сервиса доступности.
type VehicleRentalsFilter struct {
	NameLike  string     // подстрока display name (регистронезависимо)
	VehicleID *int64     // стабильный идентификатор автомобиля
	Plate     *string    // госномер
	Period    *TimeRange // временное окно (nil - без ограничения)
}

// CarWashBookingsFilter фильтр выборки моечных бронирований на дату
type CarWashBookingsFilter struct {
	Date             time.Time
	ExcludeBookingID *int64 // исключить бронирование (для edit-in-place)
}
