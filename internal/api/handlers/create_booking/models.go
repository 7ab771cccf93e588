package create_booking

import (
	"time"

	ucModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/create_booking/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VehicleName     string  `json:"vehicleName"`
	VehicleID       *int64  `json:"vehicleId,omitempty"`
	PickupAt        string  `json:"pickupAt"`  // RFC3339
	DropoffAt       string  `json:"dropoffAt"` // RFC3339
	PriceTotalCents int64   `json:"priceTotalCents"`
	Notes           *string `json:"notes,omitempty"`
	PayWithWallet   bool    `json:"payWithWallet"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	ServiceType     string  `json:"serviceType"`
	VehicleName     string  `json:"vehicleName"`
	VehicleID       *int64  `json:"vehicleId,omitempty"`
	PickupAt        string  `json:"pickupAt"`
	DropoffAt       string  `json:"dropoffAt"`
	PriceTotalCents int64   `json:"priceTotalCents"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	Notes           *string `json:"notes,omitempty"`
	TicketsIssued   int     `json:"ticketsIssued"`
	CreatedAt       string  `json:"createdAt"`
}

// ConflictResponse занятый интервал в ответе об отказе
type ConflictResponse struct {
	Source       string `json:"source"`
	Start        string `json:"start"`
	End          string `json:"end"`
	BlockedUntil string `json:"blockedUntil"`
}

// UnavailableResponse ответ при занятом интервале
type UnavailableResponse struct {
	Error     string             `json:"error"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*ucModels.CreateBookingRequest, error) {
	pickupAt, err := time.Parse(time.RFC3339, r.PickupAt)
	if err != nil {
		return nil, err
	}
	dropoffAt, err := time.Parse(time.RFC3339, r.DropoffAt)
	if err != nil {
		return nil, err
	}

	return &ucModels.CreateBookingRequest{
		UserID:          userID,
		VehicleName:     r.VehicleName,
		VehicleID:       r.VehicleID,
		PickupAt:        pickupAt,
		DropoffAt:       dropoffAt,
		PriceTotalCents: r.PriceTotalCents,
		Notes:           r.Notes,
		PayWithWallet:   r.PayWithWallet,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *ucModels.CreateBookingResponse) *BookingResponse {
	b := resp.Booking
	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceType:     string(b.ServiceType),
		VehicleName:     b.VehicleName,
		VehicleID:       b.VehicleID,
		PickupAt:        b.PickupAt.Format(time.RFC3339),
		DropoffAt:       b.DropoffAt.Format(time.RFC3339),
		PriceTotalCents: b.PriceTotalCents,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		Notes:           b.Notes,
		TicketsIssued:   resp.TicketsIssued,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

// ConflictsFromUseCase конвертирует конфликты use case в HTTP формат
func ConflictsFromUseCase(resp *ucModels.CreateBookingResponse, message string) *UnavailableResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			Source:       string(c.Source),
			Start:        c.Range.Start.Format(time.RFC3339),
			End:          c.Range.End.Format(time.RFC3339),
			BlockedUntil: c.BlockedUntil.Format(time.RFC3339),
		})
	}
	return &UnavailableResponse{
		Error:     message,
		Conflicts: conflicts,
	}
}
