package get_unavailable_dates

import (
	"time"

	svcModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

// DateRangeItem занятый диапазон дат
type DateRangeItem struct {
	Start string `json:"start"` // RFC3339
	End   string `json:"end"`   // RFC3339
}

// UnavailableDatesResponse HTTP response model
type UnavailableDatesResponse struct {
	VehicleName string          `json:"vehicleName"`
	Ranges      []DateRangeItem `json:"ranges"`
}

// FromServiceResponse конвертирует диапазоны сервиса в HTTP response
func FromServiceResponse(vehicleName string, ranges []svcModels.DateRange) *UnavailableDatesResponse {
	items := make([]DateRangeItem, 0, len(ranges))
	for _, r := range ranges {
		items = append(items, DateRangeItem{
			Start: r.Start.Format(time.RFC3339),
			End:   r.End.Format(time.RFC3339),
		})
	}
	return &UnavailableDatesResponse{
		VehicleName: vehicleName,
		Ranges:      items,
	}
}
