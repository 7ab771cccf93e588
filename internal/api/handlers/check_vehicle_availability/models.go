package check_vehicle_availability

import (
	"time"

	svcModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

// CheckVehicleRequest HTTP request model
type CheckVehicleRequest struct {
	VehicleName string `json:"vehicleName"`
	VehicleID   *int64 `json:"vehicleId,omitempty"`
	PickupAt    string `json:"pickupAt"`  // RFC3339
	DropoffAt   string `json:"dropoffAt"` // RFC3339
}

// ConflictItem занятый интервал в ответе
type ConflictItem struct {
	Source       string `json:"source"`
	ID           int64  `json:"id"`
	VehicleName  string `json:"vehicleName,omitempty"`
	VehicleID    *int64 `json:"vehicleId,omitempty"`
	Start        string `json:"start"`
	End          string `json:"end"`
	BlockedUntil string `json:"blockedUntil"`
	Specific     bool   `json:"specific"`
}

// CheckVehicleResponse HTTP response model
type CheckVehicleResponse struct {
	Available bool           `json:"available"`
	Conflicts []ConflictItem `json:"conflicts"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CheckVehicleRequest) ToServiceRequest() (*svcModels.CheckVehicleRequest, error) {
	pickupAt, err := time.Parse(time.RFC3339, r.PickupAt)
	if err != nil {
		return nil, err
	}
	dropoffAt, err := time.Parse(time.RFC3339, r.DropoffAt)
	if err != nil {
		return nil, err
	}

	return &svcModels.CheckVehicleRequest{
		VehicleName:     r.VehicleName,
		PickupAt:        pickupAt,
		DropoffAt:       dropoffAt,
		TargetVehicleID: r.VehicleID,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *svcModels.CheckVehicleResponse) *CheckVehicleResponse {
	return &CheckVehicleResponse{
		Available: resp.Available,
		Conflicts: ConflictItemsFrom(resp.Conflicts),
	}
}

// ConflictItemsFrom конвертирует конфликты сервиса в HTTP формат
func ConflictItemsFrom(conflicts []svcModels.Conflict) []ConflictItem {
	items := make([]ConflictItem, 0, len(conflicts))
	for _, c := range conflicts {
		items = append(items, ConflictItem{
			Source:       string(c.Source),
			ID:           c.ID,
			VehicleName:  c.VehicleName,
			VehicleID:    c.VehicleID,
			Start:        c.Range.Start.Format(time.RFC3339),
			End:          c.Range.End.Format(time.RFC3339),
			BlockedUntil: c.BlockedUntil.Format(time.RFC3339),
			Specific:     c.Specific,
		})
	}
	return items
}
