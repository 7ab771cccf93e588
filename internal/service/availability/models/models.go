package models

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

// ConflictSource источник конфликта
type ConflictSource string

const (
	SourceBooking     ConflictSource = "booking"
	SourceReservation ConflictSource = "reservation"
)

// Conflict описывает существующее обязательство, пересекающееся с запросом
type Conflict struct {
	Source       ConflictSource
	ID           int64
	VehicleName  string
	VehicleID    *int64
	Range        domain.TimeRange
	BlockedUntil time.Time // конец обязательства плюс turnaround-буфер
	Specific     bool      // атрибутировано конкретному автомобилю (id/госномер), а не по имени
}

// CheckVehicleRequest запрос проверки доступности автомобиля
type CheckVehicleRequest struct {
	VehicleName     string
	PickupAt        time.Time
	DropoffAt       time.Time
	TargetVehicleID *int64 // конкретный экземпляр (опционально)
}

// CheckVehicleResponse результат проверки: пустой список конфликтов = свободно
type CheckVehicleResponse struct {
	Available bool
	Conflicts []Conflict
}

// GroupMember участник пула взаимозаменяемых автомобилей
type GroupMember struct {
	Name string
	ID   *int64
}

// CheckGroupRequest запрос проверки доступности пула
type CheckGroupRequest struct {
	Members   []GroupMember
	PickupAt  time.Time
	DropoffAt time.Time
}

// CheckGroupResponse результат проверки пула
type CheckGroupResponse struct {
	Available       bool
	ChosenName      string     // предложенный свободный участник (первый не заблокированный)
	ChosenID        *int64
	Conflicts       []Conflict
	NextAvailableAt *time.Time // наивная подсказка: ближайший конец обязательства + буфер
}

// DateRange занятый диапазон дат (сырые границы, без буфера)
type DateRange struct {
	Start time.Time
	End   time.Time
}

// PartialDayRequest запрос проверки частичной недоступности в течение дня
type PartialDayRequest struct {
	VehicleName string
	Date        time.Time
	PickupTime  *types.TimeString // кандидатское время выдачи (опционально)
}

// PartialDayResponse описание blackout-окна автомобиля на дату
type PartialDayResponse struct {
	Blocked        bool
	FullDay        bool              // недоступен весь день (нет временных границ)
	Reason         *string
	From           *types.TimeString // начало blackout-окна
	Until          *types.TimeString // конец blackout-окна
	AvailableAgain *types.TimeString // конец окна + turnaround-буфер
	PickupBlocked  *bool             // заполняется, если в запросе было время выдачи
}

// CarWashRequest запрос проверки доступности мойки
type CarWashRequest struct {
	Date             time.Time
	StartTime        types.TimeString
	PriceCents       int64
	ExcludeBookingID *int64 // исключить бронирование (edit-in-place)
}

// CarWashResponse результат проверки мойки
type CarWashResponse struct {
	Available       bool
	DurationMinutes int // длительность, выведенная из тарифа
	Conflict        *Conflict
}
