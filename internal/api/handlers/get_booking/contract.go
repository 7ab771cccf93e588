package get_booking

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

type BookingsService interface {
	Get(ctx context.Context, bookingID, requesterID int64, isAdmin bool) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
