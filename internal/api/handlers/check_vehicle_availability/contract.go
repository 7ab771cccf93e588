package check_vehicle_availability

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	CheckVehicle(ctx context.Context, req *models.CheckVehicleRequest) (*models.CheckVehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
