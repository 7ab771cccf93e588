package check_partial_unavailability

import (
	svcModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

// PartialUnavailabilityResponse HTTP response model
type PartialUnavailabilityResponse struct {
	Blocked        bool    `json:"blocked"`
	FullDay        bool    `json:"fullDay"`
	Reason         *string `json:"reason,omitempty"`
	From           *string `json:"from,omitempty"`           // "HH:MM"
	Until          *string `json:"until,omitempty"`          // "HH:MM"
	AvailableAgain *string `json:"availableAgain,omitempty"` // "HH:MM", конец окна + буфер
	PickupBlocked  *bool   `json:"pickupBlocked,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *svcModels.PartialDayResponse) *PartialUnavailabilityResponse {
	out := &PartialUnavailabilityResponse{
		Blocked:       resp.Blocked,
		FullDay:       resp.FullDay,
		Reason:        resp.Reason,
		PickupBlocked: resp.PickupBlocked,
	}

	if resp.From != nil {
		s := resp.From.String()
		out.From = &s
	}
	if resp.Until != nil {
		s := resp.Until.String()
		out.Until = &s
	}
	if resp.AvailableAgain != nil {
		s := resp.AvailableAgain.String()
		out.AvailableAgain = &s
	}

	return out
}
