package reservations

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetActiveByVehicle(ctx context.Context, vehicleID int64, period *domain.TimeRange) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	SetBlackout(ctx context.Context, id int64, v *domain.Vehicle) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
