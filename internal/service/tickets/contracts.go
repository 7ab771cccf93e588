package tickets

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// TicketRepository интерфейс репозитория лотерейных билетов
type TicketRepository interface {
	CreateBatch(ctx context.Context, tickets []*domain.Ticket) error
	CountByBookingID(ctx context.Context, bookingID int64) (int, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Ticket, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
