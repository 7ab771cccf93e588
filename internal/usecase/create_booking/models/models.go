package models

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	availabilityModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

// CreateBookingRequest запрос на создание аренды
type CreateBookingRequest struct {
	UserID          int64
	VehicleName     string
	VehicleID       *int64
	PickupAt        time.Time
	DropoffAt       time.Time
	PriceTotalCents int64
	Notes           *string
	// PayWithWallet - списать стоимость с кредитного кошелька в той же
	// транзакции и сразу подтвердить бронирование
	PayWithWallet bool
}

// CreateBookingResponse результат создания аренды
type CreateBookingResponse struct {
	Booking       *domain.Booking
	TicketsIssued int
	// Conflicts заполняется при отказе из-за занятости интервала
	Conflicts []availabilityModels.Conflict
}
