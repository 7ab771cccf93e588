package get_user_tickets

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// TicketItem билет в ответе
type TicketItem struct {
	ID           int64  `json:"id"`
	TicketNumber string `json:"ticketNumber"`
	BookingID    *int64 `json:"bookingId,omitempty"`
	Status       string `json:"status"`
	IssuedAt     string `json:"issuedAt"`
}

// UserTicketsResponse HTTP response model
type UserTicketsResponse struct {
	Tickets []TicketItem `json:"tickets"`
}

// FromDomain конвертирует билеты в HTTP response
func FromDomain(list []*domain.Ticket) *UserTicketsResponse {
	items := make([]TicketItem, 0, len(list))
	for _, t := range list {
		items = append(items, TicketItem{
			ID:           t.ID,
			TicketNumber: t.TicketNumber,
			BookingID:    t.BookingID,
			Status:       string(t.Status),
			IssuedAt:     t.IssuedAt.Format(time.RFC3339),
		})
	}
	return &UserTicketsResponse{Tickets: items}
}
