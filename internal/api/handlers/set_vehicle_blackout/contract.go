package set_vehicle_blackout

import (
	"context"
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

type ReservationsService interface {
	SetVehicleBlackout(
		ctx context.Context,
		vehicleID int64,
		from, until *time.Time,
		fromTime, untilTime *types.TimeString,
		reason *string,
	) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
