package tickets

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// Service сервис промо-лотереи: выпуск билетов за оплаченные бронирования.
// Один билет за каждый начатый тарифный шаг итоговой суммы.
type Service struct {
	repo            TicketRepository
	enabled         bool
	centsPerTicket  int64
	minBookingCents int64
	logger          Logger
}

// NewService создает новый экземпляр сервиса билетов
func NewService(repo TicketRepository, enabled bool, centsPerTicket, minBookingCents int64, logger Logger) *Service {
	return &Service{
		repo:            repo,
		enabled:         enabled,
		centsPerTicket:  centsPerTicket,
		minBookingCents: minBookingCents,
		logger:          logger,
	}
}

// IssueForBooking выпускает билеты за оплаченное бронирование.
//
// Выпуск идемпотентен по booking_id: если билеты за это бронирование уже
// существуют, повторный вызов ничего не делает. Бронирования дешевле
// минимального порога билетов не получают.
func (s *Service) IssueForBooking(ctx context.Context, userID, bookingID, totalCents int64) ([]*domain.Ticket, error) {
	if userID <= 0 || bookingID <= 0 {
		return nil, fmt.Errorf("%w: user id and booking id must be positive", ErrInvalidInput)
	}

	if !s.enabled || totalCents < s.minBookingCents {
		return nil, nil
	}

	existing, err := s.repo.CountByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: IssueForBooking - count existing: %v", ErrInternal, err)
	}
	if existing > 0 {
		s.logger.Info("IssueForBooking: booking %d already has %d tickets, skipping", bookingID, existing)
		return nil, nil
	}

	count := (totalCents + s.centsPerTicket - 1) / s.centsPerTicket

	batch := make([]*domain.Ticket, 0, count)
	for i := int64(0); i < count; i++ {
		batch = append(batch, &domain.Ticket{
			TicketNumber: uuid.NewString(),
			UserID:       userID,
			BookingID:    &bookingID,
			Status:       domain.TicketActive,
		})
	}

	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("%w: IssueForBooking - create batch: %v", ErrInternal, err)
	}

	s.logger.Info("IssueForBooking: issued %d tickets for booking %d (total %d cents)",
		len(batch), bookingID, totalCents)
	return batch, nil
}

// ListForUser возвращает билеты пользователя
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]*domain.Ticket, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	list, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForUser - get tickets: %v", ErrInternal, err)
	}

	return list, nil
}
