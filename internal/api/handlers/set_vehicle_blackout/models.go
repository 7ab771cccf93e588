package set_vehicle_blackout

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

// SetBlackoutRequest HTTP request model.
// Все поля nil снимают blackout с автомобиля.
type SetBlackoutRequest struct {
	From      *string `json:"from,omitempty"`      // YYYY-MM-DD
	Until     *string `json:"until,omitempty"`     // YYYY-MM-DD
	FromTime  *string `json:"fromTime,omitempty"`  // HH:MM
	UntilTime *string `json:"untilTime,omitempty"` // HH:MM
	Reason    *string `json:"reason,omitempty"`
}

// Blackout парсит границы окна недоступности
func (r *SetBlackoutRequest) Blackout() (from, until *time.Time, fromTime, untilTime *types.TimeString, err error) {
	if r.From != nil {
		parsed, parseErr := time.Parse(domain.DateFormat, *r.From)
		if parseErr != nil {
			return nil, nil, nil, nil, parseErr
		}
		from = &parsed
	}
	if r.Until != nil {
		parsed, parseErr := time.Parse(domain.DateFormat, *r.Until)
		if parseErr != nil {
			return nil, nil, nil, nil, parseErr
		}
		until = &parsed
	}
	if r.FromTime != nil {
		parsed, parseErr := types.NewTimeStringFromString(*r.FromTime)
		if parseErr != nil {
			return nil, nil, nil, nil, parseErr
		}
		fromTime = &parsed
	}
	if r.UntilTime != nil {
		parsed, parseErr := types.NewTimeStringFromString(*r.UntilTime)
		if parseErr != nil {
			return nil, nil, nil, nil, parseErr
		}
		untilTime = &parsed
	}
	return from, until, fromTime, untilTime, nil
}
