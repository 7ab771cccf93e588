package get_user_bookings

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// BookingItem элемент списка бронирований
type BookingItem struct {
	ID              int64   `json:"id"`
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
	CreatedAt       string  `json:"createdAt"`
}

// UserBookingsResponse HTTP response model
type UserBookingsResponse struct {
	Bookings []BookingItem `json:"bookings"`
}

// FromDomain конвертирует список доменных моделей в HTTP response
func FromDomain(list []*domain.Booking) *UserBookingsResponse {
	items := make([]BookingItem, 0, len(list))
	for _, b := range list {
		item := BookingItem{
			ID:              b.ID,
			ServiceType:     string(b.ServiceType),
			VehicleName:     b.VehicleName,
			VehicleID:       b.VehicleID,
			PriceTotalCents: b.PriceTotalCents,
			Status:          string(b.Status),
			PaymentStatus:   string(b.PaymentStatus),
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		}

		if b.IsRental() {
			pickup := b.PickupAt.Format(time.RFC3339)
			dropoff := b.DropoffAt.Format(time.RFC3339)
			item.PickupAt = &pickup
			item.DropoffAt = &dropoff
		}
		if b.AppointmentDate != nil {
			date := b.AppointmentDate.Format(domain.DateFormat)
			item.AppointmentDate = &date
		}
		if b.AppointmentTime != nil {
			t := b.AppointmentTime.String()
			item.AppointmentTime = &t
		}

		items = append(items, item)
	}

	return &UserBookingsResponse{Bookings: items}
}
