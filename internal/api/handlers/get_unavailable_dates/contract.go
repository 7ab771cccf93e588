package get_unavailable_dates

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	UnavailableDateRanges(ctx context.Context, vehicleName string) ([]models.DateRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
