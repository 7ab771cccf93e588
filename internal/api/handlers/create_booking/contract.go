package create_booking

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/create_booking/models"
)

type CreateBookingUseCase interface {
	CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
