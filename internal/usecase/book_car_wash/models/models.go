package models

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	availabilityModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

// BookCarWashRequest запрос на запись на мойку
type BookCarWashRequest struct {
	UserID          int64
	VehicleName     string
	AppointmentDate time.Time
	AppointmentTime types.TimeString
	PriceTotalCents int64
	Notes           *string
	PayWithWallet   bool
}

// BookCarWashResponse результат записи на мойку
type BookCarWashResponse struct {
	Booking         *domain.Booking
	DurationMinutes int
	TicketsIssued   int
	// Conflict заполняется при отказе из-за занятого слота
	Conflict *availabilityModels.Conflict
}
