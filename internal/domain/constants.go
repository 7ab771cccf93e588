package domain

import "time"

// TurnaroundBuffer is added to the end of every existing rental or reservation
// before overlap testing. It models vehicle turnaround time (return handling,
// cleaning, refuelling) between two customers.
const TurnaroundBuffer = 90 * time.Minute

// Car wash tariff: every started €25 of the service price costs one hour of
// slot time (€25 = 1h, €49 = 2h, €75 = 3h, €99 = 4h).
const CarWashTierCents int64 = 2500

// CarWashDurationMinutes derives the appointment duration from the price
func CarWashDurationMinutes(priceCents int64) int {
	if priceCents <= 0 {
		return 60
	}
	hours := (priceCents + CarWashTierCents - 1) / CarWashTierCents
	return int(hours) * 60
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxRentalDays               = 60
)

// DefaultTransactionsLimit количество транзакций кошелька по умолчанию
const DefaultTransactionsLimit = 50

// ActiveBookingStatuses список статусов, при которых бронирование занимает ресурс
var ActiveBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusHeld,
	StatusCompleted,
}

// ActiveReservationStatuses список статусов, при которых админская резервация блокирует автомобиль
var ActiveReservationStatuses = []ReservationStatus{
	ReservationConfirmed,
	ReservationPending,
	ReservationActive,
}
