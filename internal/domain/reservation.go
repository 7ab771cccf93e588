package domain

import "time"

// ReservationStatus represents the status of an admin-originated vehicle block
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationPending   ReservationStatus = "pending"
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is an admin-originated block of a vehicle (maintenance, manual
// hold, transfer between locations). Unlike customer bookings it is keyed
// strictly by vehicle identity, never by display name.
type Reservation struct {
	ID        int64
	VehicleID int64
	StartAt   time.Time
	EndAt     time.Time
	Status    ReservationStatus
	Reason    *string
	CreatedAt time.Time
}

// IsActive returns true while the reservation blocks the vehicle
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationConfirmed ||
		r.Status == ReservationPending ||
		r.Status == ReservationActive
}

// Range returns the blocked interval
func (r *Reservation) Range() TimeRange {
	return TimeRange{Start: r.StartAt, End: r.EndAt}
}
