package book_car_wash

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	ucModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/book_car_wash/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

// BookCarWashRequest HTTP request model
type BookCarWashRequest struct {
	VehicleName     string  `json:"vehicleName"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-09-15"
	AppointmentTime string  `json:"appointmentTime"` // "10:00"
	PriceTotalCents int64   `json:"priceTotalCents"`
	Notes           *string `json:"notes,omitempty"`
	PayWithWallet   bool    `json:"payWithWallet"`
}

// CarWashBookingResponse HTTP response model
type CarWashBookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	ServiceType     string  `json:"serviceType"`
	VehicleName     string  `json:"vehicleName"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceTotalCents int64   `json:"priceTotalCents"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	Notes           *string `json:"notes,omitempty"`
	TicketsIssued   int     `json:"ticketsIssued"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookCarWashRequest) ToUseCaseRequest(userID int64) (*ucModels.BookCarWashRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, err
	}

	return &ucModels.BookCarWashRequest{
		UserID:          userID,
		VehicleName:     r.VehicleName,
		AppointmentDate: date,
		AppointmentTime: startTime,
		PriceTotalCents: r.PriceTotalCents,
		Notes:           r.Notes,
		PayWithWallet:   r.PayWithWallet,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *ucModels.BookCarWashResponse) *CarWashBookingResponse {
	b := resp.Booking

	date := ""
	if b.AppointmentDate != nil {
		date = b.AppointmentDate.Format(domain.DateFormat)
	}
	timeStr := ""
	if b.AppointmentTime != nil {
		timeStr = b.AppointmentTime.String()
	}

	return &CarWashBookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceType:     string(b.ServiceType),
		VehicleName:     b.VehicleName,
		AppointmentDate: date,
		AppointmentTime: timeStr,
		DurationMinutes: resp.DurationMinutes,
		PriceTotalCents: b.PriceTotalCents,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		Notes:           b.Notes,
		TicketsIssued:   resp.TicketsIssued,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
