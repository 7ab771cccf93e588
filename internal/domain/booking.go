package domain

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusHeld      BookingStatus = "held"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// ServiceType distinguishes the kinds of bookings the business takes
type ServiceType string

const (
	ServiceRental     ServiceType = "rental"
	ServiceCarWash    ServiceType = "car_wash"
	ServiceMechanical ServiceType = "mechanical"
)

// Booking represents a rental or a service appointment.
// Rentals occupy [PickupAt, DropoffAt); car-wash and mechanical appointments
// use AppointmentDate/AppointmentTime with a duration derived from the price tariff.
type Booking struct {
	ID          int64
	UserID      int64
	ServiceType ServiceType

	// Vehicle identity. VehicleID is the stable reference; legacy records carry
	// only a display name and (sometimes) a plate.
	VehicleID    *int64
	VehicleName  string
	VehiclePlate *string

	// Rental interval
	PickupAt  time.Time
	DropoffAt time.Time

	// Appointment slot (car wash / mechanical)
	AppointmentDate *time.Time
	AppointmentTime *types.TimeString

	PriceTotalCents int64
	Status          BookingStatus
	PaymentStatus   PaymentStatus
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the booking still occupies its resource
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusHeld
}

// IsRental returns true for vehicle rental bookings
func (b *Booking) IsRental() bool {
	return b.ServiceType == ServiceRental
}

// RentalRange returns the occupied interval of a rental booking
func (b *Booking) RentalRange() TimeRange {
	return TimeRange{Start: b.PickupAt, End: b.DropoffAt}
}

// HasSpecificVehicle returns true when the booking is tied to a concrete
// vehicle by its stable identifier
func (b *Booking) HasSpecificVehicle() bool {
	return b.VehicleID != nil
}

// CarWashDurationMinutes returns the appointment duration derived from the
// price tariff: one hour per started €25 tier
func (b *Booking) CarWashDurationMinutes() int {
	return CarWashDurationMinutes(b.PriceTotalCents)
}
