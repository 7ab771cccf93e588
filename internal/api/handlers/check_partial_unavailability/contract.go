package check_partial_unavailability

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	CheckPartialDay(ctx context.Context, req *models.PartialDayRequest) (*models.PartialDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
