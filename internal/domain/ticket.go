package domain

import "time"

// TicketStatus статус лотерейного билета
type TicketStatus string

const (
	TicketActive TicketStatus = "active"
	TicketWinner TicketStatus = "winner"
	TicketVoid   TicketStatus = "void"
)

// Ticket is one promotional lottery ticket. Tickets are issued automatically
// for qualifying paid bookings, one per started tariff tier of the total.
type Ticket struct {
	ID           int64
	TicketNumber string // uuid, printed on the customer's receipt
	UserID       int64
	BookingID    *int64
	Status       TicketStatus
	IssuedAt     time.Time
}
