package availability

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByDisplayName(ctx context.Context, name string) (*domain.Vehicle, error)
	ListByDisplayNames(ctx context.Context, names []string) ([]*domain.Vehicle, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveRentals(ctx context.Context, filter domain.VehicleRentalsFilter) ([]*domain.Booking, error)
	GetCarWashByDate(ctx context.Context, filter domain.CarWashBookingsFilter) ([]*domain.Booking, error)
}

// ReservationRepository интерфейс репозитория админских резерваций
type ReservationRepository interface {
	GetActiveByVehicle(ctx context.Context, vehicleID int64, period *domain.TimeRange) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
