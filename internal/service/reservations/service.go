package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	reservationRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/reservation"
	vehicleRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/vehicle"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

// Service сервис админских операций над парком: резервации автомобилей и
// blackout-окна на карточках.
// Резервация блокирует автомобиль принудительно: проверка конфликтов с
// клиентскими бронированиями здесь не выполняется, админ решает сам.
type Service struct {
	reservations ReservationRepository
	vehicles     VehicleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(reservations ReservationRepository, vehicles VehicleRepository, logger Logger) *Service {
	return &Service{
		reservations: reservations,
		vehicles:     vehicles,
		logger:       logger,
	}
}

// CreateReservation создает резервацию автомобиля на интервал
func (s *Service) CreateReservation(ctx context.Context, vehicleID int64, period domain.TimeRange, reason *string) (*domain.Reservation, error) {
	if vehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicle id must be positive", ErrInvalidInput)
	}
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("%w: CreateReservation - get vehicle: %v", ErrInternal, err)
	}

	created, err := s.reservations.Create(ctx, &domain.Reservation{
		VehicleID: vehicleID,
		StartAt:   period.Start,
		EndAt:     period.End,
		Status:    domain.ReservationConfirmed,
		Reason:    reason,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: CreateReservation - create: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReservation: vehicle %d blocked %s - %s (id=%d)",
		vehicleID, period.Start, period.End, created.ID)
	return created, nil
}

// SetVehicleBlackout записывает окно недоступности на карточке автомобиля.
// Все границы nil снимают блокировку. Временные границы без дат не имеют
// смысла и отклоняются.
func (s *Service) SetVehicleBlackout(
	ctx context.Context,
	vehicleID int64,
	from, until *time.Time,
	fromTime, untilTime *types.TimeString,
	reason *string,
) error {
	if vehicleID <= 0 {
		return fmt.Errorf("%w: vehicle id must be positive", ErrInvalidInput)
	}
	if from != nil && until != nil && until.Before(*from) {
		return fmt.Errorf("%w: blackout end date is before start date", ErrInvalidInput)
	}
	if (fromTime != nil || untilTime != nil) && from == nil && until == nil {
		return fmt.Errorf("%w: time bounds require a date window", ErrInvalidInput)
	}
	if fromTime != nil {
		if err := fromTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid blackout start time: %v", ErrInvalidInput, err)
		}
	}
	if untilTime != nil {
		if err := untilTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid blackout end time: %v", ErrInvalidInput, err)
		}
	}
	if fromTime != nil && untilTime != nil && untilTime.IsBefore(*fromTime) {
		return fmt.Errorf("%w: blackout end time is before start time", ErrInvalidInput)
	}

	err := s.vehicles.SetBlackout(ctx, vehicleID, &domain.Vehicle{
		UnavailableFrom:      from,
		UnavailableUntil:     until,
		UnavailableFromTime:  fromTime,
		UnavailableUntilTime: untilTime,
		UnavailableReason:    reason,
	})
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("%w: SetVehicleBlackout - update vehicle: %v", ErrInternal, err)
	}

	if from == nil && until == nil {
		s.logger.Info("SetVehicleBlackout: vehicle %d blackout cleared", vehicleID)
	} else {
		s.logger.Info("SetVehicleBlackout: vehicle %d blackout updated", vehicleID)
	}
	return nil
}

// CancelReservation снимает резервацию
func (s *Service) CancelReservation(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	if err := s.reservations.Cancel(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("%w: CancelReservation - cancel: %v", ErrInternal, err)
	}

	s.logger.Info("CancelReservation: reservation %d cancelled", id)
	return nil
}
