package get_booking

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	ServiceType     string  `json:"serviceType"`
	VehicleName     string  `json:"vehicleName"`
	VehicleID       *int64  `json:"vehicleId,omitempty"`
	PickupAt        *string `json:"pickupAt,omitempty"`
	DropoffAt       *string `json:"dropoffAt,omitempty"`
	AppointmentDate *string `json:"appointmentDate,omitempty"`
	AppointmentTime *string `json:"appointmentTime,omitempty"`
	PriceTotalCents int64   `json:"priceTotalCents"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceType:     string(b.ServiceType),
		VehicleName:     b.VehicleName,
		VehicleID:       b.VehicleID,
		PriceTotalCents: b.PriceTotalCents,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}

	if b.IsRental() {
		pickup := b.PickupAt.Format(time.RFC3339)
		dropoff := b.DropoffAt.Format(time.RFC3339)
		resp.PickupAt = &pickup
		resp.DropoffAt = &dropoff
	}
	if b.AppointmentDate != nil {
		date := b.AppointmentDate.Format(domain.DateFormat)
		resp.AppointmentDate = &date
	}
	if b.AppointmentTime != nil {
		t := b.AppointmentTime.String()
		resp.AppointmentTime = &t
	}

	return resp
}
