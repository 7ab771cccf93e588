package domain

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

// VehicleStatus represents the operational status of a vehicle
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleRetired     VehicleStatus = "retired"
)

// Vehicle represents a unit of the fleet.
// The Unavailable* fields describe a same-day partial blackout window kept as
// metadata on the vehicle record (e.g. the car is away for detailing until noon).
type Vehicle struct {
	ID          int64
	DisplayName string
	Plate       string
	Status      VehicleStatus

	UnavailableFrom      *time.Time        // first blacked-out date
	UnavailableUntil     *time.Time        // last blacked-out date
	UnavailableFromTime  *types.TimeString // optional time bound within the day
	UnavailableUntilTime *types.TimeString // optional time bound within the day
	UnavailableReason    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBlackout returns true when the vehicle carries any blackout metadata
func (v *Vehicle) HasBlackout() bool {
	return v.UnavailableFrom != nil || v.UnavailableUntil != nil
}

// BlackoutCoversDate reports whether the given calendar date falls inside the
// blackout window. Open-ended bounds are treated as unbounded.
func (v *Vehicle) BlackoutCoversDate(date time.Time) bool {
	if !v.HasBlackout() {
		return false
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if v.UnavailableFrom != nil {
		from := *v.UnavailableFrom
		fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, date.Location())
		if day.Before(fromDay) {
			return false
		}
	}
	if v.UnavailableUntil != nil {
		until := *v.UnavailableUntil
		untilDay := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, date.Location())
		if day.After(untilDay) {
			return false
		}
	}
	return true
}

// HasBlackoutTimeBounds returns true when the blackout is limited to part of the day
func (v *Vehicle) HasBlackoutTimeBounds() bool {
	return v.UnavailableFromTime != nil || v.UnavailableUntilTime != nil
}
