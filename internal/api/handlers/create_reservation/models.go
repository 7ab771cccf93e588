package create_reservation

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	VehicleID int64   `json:"vehicleId"`
	StartAt   string  `json:"startAt"` // RFC3339
	EndAt     string  `json:"endAt"`   // RFC3339
	Reason    *string `json:"reason,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64   `json:"id"`
	VehicleID int64   `json:"vehicleId"`
	StartAt   string  `json:"startAt"`
	EndAt     string  `json:"endAt"`
	Status    string  `json:"status"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// Period парсит интервал запроса
func (r *CreateReservationRequest) Period() (domain.TimeRange, error) {
	start, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return domain.TimeRange{}, err
	}
	end, err := time.Parse(time.RFC3339, r.EndAt)
	if err != nil {
		return domain.TimeRange{}, err
	}
	return domain.TimeRange{Start: start, End: end}, nil
}

// FromDomain конвертирует резервацию в HTTP response
func FromDomain(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        res.ID,
		VehicleID: res.VehicleID,
		StartAt:   res.StartAt.Format(time.RFC3339),
		EndAt:     res.EndAt.Format(time.RFC3339),
		Status:    string(res.Status),
		Reason:    res.Reason,
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
	}
}
