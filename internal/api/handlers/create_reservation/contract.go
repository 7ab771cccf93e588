package create_reservation

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

type ReservationsService interface {
	CreateReservation(ctx context.Context, vehicleID int64, period domain.TimeRange, reason *string) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
