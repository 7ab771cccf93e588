package get_user_tickets

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

type TicketService interface {
	ListForUser(ctx context.Context, userID int64) ([]*domain.Ticket, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
