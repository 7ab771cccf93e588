package check_carwash_availability

import (
	svcModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

// CarWashAvailabilityResponse HTTP response model
type CarWashAvailabilityResponse struct {
	Available       bool   `json:"available"`
	DurationMinutes int    `json:"durationMinutes"`
	ConflictID      *int64 `json:"conflictId,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *svcModels.CarWashResponse) *CarWashAvailabilityResponse {
	out := &CarWashAvailabilityResponse{
		Available:       resp.Available,
		DurationMinutes: resp.DurationMinutes,
	}
	if resp.Conflict != nil {
		out.ConflictID = &resp.Conflict.ID
	}
	return out
}
