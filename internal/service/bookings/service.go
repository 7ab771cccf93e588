package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	bookingRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/booking"
)

// Service сервис чтения и управления жизненным циклом бронирований.
// Создание бронирований с проверкой доступности живет в usecase-слое.
type Service struct {
	repo   BookingRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает бронирование по ID.
// Обычный пользователь видит только свои бронирования, админ - любые.
func (s *Service) Get(ctx context.Context, bookingID, requesterID int64, isAdmin bool) (*domain.Booking, error) {
	booking, err := s.getByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && booking.UserID != requesterID {
		s.logger.Warn("Get: user %d tried to read booking %d owned by %d",
			requesterID, bookingID, booking.UserID)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// ListForUser возвращает бронирования пользователя, опционально по статусу
func (s *Service) ListForUser(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	list, err := s.repo.GetByUserID(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForUser - get bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// Cancel отменяет бронирование.
// Отмена разрешена владельцу или админу и только из статусов, допускающих
// отмену. Повторная отмена уже отмененного бронирования - ошибка.
func (s *Service) Cancel(ctx context.Context, bookingID, requesterID int64, isAdmin bool, reason string) error {
	booking, err := s.getByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if !isAdmin && booking.UserID != requesterID {
		return ErrAccessDenied
	}
	if !booking.CanBeCancelled() {
		return fmt.Errorf("%w: status is %s", ErrCannotCancel, booking.Status)
	}
	if len(reason) > domain.MaxNotesLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "cancelled by user"
	}

	if err := s.repo.Cancel(ctx, bookingID, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: Cancel - cancel booking: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking %d cancelled by user %d (admin=%t)", bookingID, requesterID, isAdmin)
	return nil
}

// SetPaymentStatus обновляет платежный статус бронирования.
// Вызывается интеграционным слоем после подтверждения оплаты.
func (s *Service) SetPaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	switch status {
	case domain.PaymentUnpaid, domain.PaymentPaid, domain.PaymentRefunded:
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, status)
	}

	if err := s.repo.UpdatePaymentStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: SetPaymentStatus - update: %v", ErrInternal, err)
	}

	s.logger.Info("SetPaymentStatus: booking %d -> %s", bookingID, status)
	return nil
}

// Delete удаляет бронирование насовсем. Админская операция: проверка роли
// выполняется на уровне маршрутизации.
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	if err := s.repo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: Delete - delete booking: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking %d removed", bookingID)
	return nil
}

func (s *Service) getByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: getByID - get booking: %v", ErrInternal, err)
	}

	return booking, nil
}
