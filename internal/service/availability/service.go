package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	vehicleRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/vehicle"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

// Service сервис проверки доступности временных ресурсов: автомобилей,
// пулов взаимозаменяемых автомобилей и слотов мойки.
//
// Сервис только читает - никакой записи. Транзакционная связка
// "проверка + вставка" живет в usecase создания бронирования.
type Service struct {
	vehicles     VehicleRepository
	bookings     BookingRepository
	reservations ReservationRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	vehicles VehicleRepository,
	bookings BookingRepository,
	reservations ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		vehicles:     vehicles,
		bookings:     bookings,
		reservations: reservations,
		logger:       logger,
	}
}

// CheckVehicle проверяет доступность автомобиля на интервал аренды.
// Пустой список конфликтов означает, что интервал свободен.
//
// Объединяет два источника обязательств: клиентские бронирования и админские
// резервации. К концу каждого существующего обязательства добавляется
// turnaround-буфер.
func (s *Service) CheckVehicle(ctx context.Context, req *models.CheckVehicleRequest) (*models.CheckVehicleResponse, error) {
	if err := validateRentalInterval(req.PickupAt, req.DropoffAt); err != nil {
		return nil, err
	}
	if req.VehicleName == "" && req.TargetVehicleID == nil {
		return nil, fmt.Errorf("%w: vehicle name or id is required", ErrInvalidInput)
	}

	s.logger.Info("CheckVehicle: name=%q, pickup=%s, dropoff=%s",
		req.VehicleName, req.PickupAt.Format(time.RFC3339), req.DropoffAt.Format(time.RFC3339))

	vehicle, err := s.resolveVehicle(ctx, req.VehicleName, req.TargetVehicleID)
	if err != nil {
		return nil, err
	}

	candidate := domain.TimeRange{Start: req.PickupAt, End: req.DropoffAt}

	conflicts, err := s.collectConflicts(ctx, req.VehicleName, req.TargetVehicleID, vehicle, candidate)
	if err != nil {
		return nil, err
	}

	return &models.CheckVehicleResponse{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// CheckGroup проверяет доступность пула взаимозаменяемых автомобилей.
//
// Эвристика подсчета ёмкости: участники с конфликтом, атрибутированным им
// конкретно, выбывают целиком; каждый "генерический" конфликт (без привязки к
// экземпляру) съедает одну единицу пула. Остаток > 0 - пул доступен, предлагаем
// первый незаблокированный участник. Это подсчет ёмкости, а не точное
// паросочетание - при чередовании конкретных и генерических бронирований
// возможна ошибка в обе стороны.
func (s *Service) CheckGroup(ctx context.Context, req *models.CheckGroupRequest) (*models.CheckGroupResponse, error) {
	if err := validateRentalInterval(req.PickupAt, req.DropoffAt); err != nil {
		return nil, err
	}
	if len(req.Members) == 0 {
		return nil, fmt.Errorf("%w: group must have at least one member", ErrInvalidInput)
	}

	s.logger.Info("CheckGroup: members=%d, pickup=%s, dropoff=%s",
		len(req.Members), req.PickupAt.Format(time.RFC3339), req.DropoffAt.Format(time.RFC3339))

	names := make([]string, len(req.Members))
	for i, m := range req.Members {
		names[i] = m.Name
	}

	resolved, err := s.vehicles.ListByDisplayNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("%w: CheckGroup - list vehicles: %v", ErrInternal, err)
	}
	byName := make(map[string]*domain.Vehicle, len(resolved))
	for _, v := range resolved {
		byName[normalizeName(v.DisplayName)] = v
	}

	candidate := domain.TimeRange{Start: req.PickupAt, End: req.DropoffAt}

	blocked := make([]bool, len(req.Members))
	genericSeen := make(map[int64]bool)
	allConflicts := make([]models.Conflict, 0)

	for i, member := range req.Members {
		vehicle := byName[normalizeName(member.Name)]
		targetID := member.ID
		if targetID == nil && vehicle != nil {
			targetID = &vehicle.ID
		}

		conflicts, err := s.collectConflicts(ctx, member.Name, targetID, vehicle, candidate)
		if err != nil {
			return nil, err
		}

		for _, c := range conflicts {
			if c.Specific {
				if !blocked[i] {
					blocked[i] = true
					allConflicts = append(allConflicts, c)
				}
				continue
			}
			// Генерический конфликт виден из каждого участника пула -
			// учитываем каждое бронирование один раз
			if c.Source == models.SourceBooking && genericSeen[c.ID] {
				continue
			}
			if c.Source == models.SourceBooking {
				genericSeen[c.ID] = true
			}
			allConflicts = append(allConflicts, c)
		}
	}

	blockedCount := 0
	for _, b := range blocked {
		if b {
			blockedCount++
		}
	}

	remaining := len(req.Members) - blockedCount - len(genericSeen)

	if remaining > 0 {
		for i, member := range req.Members {
			if blocked[i] {
				continue
			}
			chosenID := member.ID
			if chosenID == nil {
				if v := byName[normalizeName(member.Name)]; v != nil {
					chosenID = &v.ID
				}
			}
			s.logger.Info("CheckGroup: pool available, offering %q (%d/%d units free)",
				member.Name, remaining, len(req.Members))
			return &models.CheckGroupResponse{
				Available:  true,
				ChosenName: member.Name,
				ChosenID:   chosenID,
			}, nil
		}
	}

	s.logger.Info("CheckGroup: pool exhausted, %d specific blocks + %d generic conflicts over %d members",
		blockedCount, len(genericSeen), len(req.Members))

	return &models.CheckGroupResponse{
		Available:       false,
		Conflicts:       allConflicts,
		NextAvailableAt: earliestRelease(allConflicts),
	}, nil
}

// UnavailableDateRanges возвращает занятые диапазоны дат автомобиля:
// объединение неотмененных бронирований и админских резерваций.
// Буфер здесь не применяется - календарю нужны сырые границы.
func (s *Service) UnavailableDateRanges(ctx context.Context, vehicleName string) ([]models.DateRange, error) {
	if vehicleName == "" {
		return nil, fmt.Errorf("%w: vehicle name is required", ErrInvalidInput)
	}

	vehicle, err := s.resolveVehicle(ctx, vehicleName, nil)
	if err != nil {
		return nil, err
	}

	filter := domain.VehicleRentalsFilter{NameLike: vehicleName}
	if vehicle != nil {
		filter.VehicleID = &vehicle.ID
		filter.Plate = &vehicle.Plate
	}

	rentals, err := s.bookings.GetActiveRentals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: UnavailableDateRanges - get rentals: %v", ErrInternal, err)
	}

	var plate *string
	var targetID *int64
	if vehicle != nil {
		plate = &vehicle.Plate
		targetID = &vehicle.ID
	}

	ranges := make([]models.DateRange, 0, len(rentals))
	for _, b := range rentals {
		if attributeBooking(b, vehicleName, targetID, plate) == attrNone {
			continue
		}
		ranges = append(ranges, models.DateRange{Start: b.PickupAt, End: b.DropoffAt})
	}

	if vehicle != nil {
		reservations, err := s.reservations.GetActiveByVehicle(ctx, vehicle.ID, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: UnavailableDateRanges - get reservations: %v", ErrInternal, err)
		}
		for _, r := range reservations {
			ranges = append(ranges, models.DateRange{Start: r.StartAt, End: r.EndAt})
		}
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Start.Before(ranges[j].Start)
	})

	return ranges, nil
}

// CheckPartialDay описывает частичную недоступность автомобиля в течение дня
// по blackout-метаданным на записи автомобиля.
//
// Без временных границ - блокировка на весь день. С границами вычисляется
// время "снова доступен" = конец окна + turnaround-буфер; если передано
// кандидатское время выдачи, проверяется попадание в окно [from, until+буфер).
func (s *Service) CheckPartialDay(ctx context.Context, req *models.PartialDayRequest) (*models.PartialDayResponse, error) {
	if req.VehicleName == "" {
		return nil, fmt.Errorf("%w: vehicle name is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	vehicle, err := s.vehicles.GetByDisplayName(ctx, req.VehicleName)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("%w: CheckPartialDay - get vehicle: %v", ErrInternal, err)
	}

	resp := &models.PartialDayResponse{}

	if !vehicle.BlackoutCoversDate(req.Date) {
		return resp, nil
	}

	resp.Blocked = true
	resp.Reason = vehicle.UnavailableReason

	if !vehicle.HasBlackoutTimeBounds() {
		resp.FullDay = true
		if req.PickupTime != nil {
			blocked := true
			resp.PickupBlocked = &blocked
		}
		return resp, nil
	}

	resp.From = vehicle.UnavailableFromTime
	resp.Until = vehicle.UnavailableUntilTime

	if vehicle.UnavailableUntilTime != nil {
		untilMinutes, err := vehicle.UnavailableUntilTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: CheckPartialDay - parse blackout end: %v", ErrInternal, err)
		}
		// Буфер, выходящий за полночь, не переносится на следующий день:
		// AvailableAgain остается пустым, остаток дня заблокирован
		if untilMinutes+int(domain.TurnaroundBuffer.Minutes()) < minutesPerDay {
			availableAgain, err := vehicle.UnavailableUntilTime.AddMinutes(int(domain.TurnaroundBuffer.Minutes()))
			if err != nil {
				return nil, fmt.Errorf("%w: CheckPartialDay - compute available-again time: %v", ErrInternal, err)
			}
			resp.AvailableAgain = &availableAgain
		}
	}

	if req.PickupTime != nil {
		blocked := pickupFallsInBlackout(*req.PickupTime, vehicle.UnavailableFromTime, resp.AvailableAgain)
		resp.PickupBlocked = &blocked
	}

	return resp, nil
}

// CheckCarWash проверяет доступность слота мойки на дату.
// Длительность выводится из тарифа (час за каждые начатые €25), пересечение
// проверяется строго, без буфера.
func (s *Service) CheckCarWash(ctx context.Context, req *models.CarWashRequest) (*models.CarWashResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if req.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	duration := domain.CarWashDurationMinutes(req.PriceCents)

	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	sameDay, err := s.bookings.GetCarWashByDate(ctx, domain.CarWashBookingsFilter{
		Date:             req.Date,
		ExcludeBookingID: req.ExcludeBookingID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: CheckCarWash - get bookings: %v", ErrInternal, err)
	}

	for _, b := range sameDay {
		if b.AppointmentTime == nil {
			continue
		}
		existingStart, err := b.AppointmentTime.Minutes()
		if err != nil {
			s.logger.Warn("CheckCarWash: booking id=%d has unparseable appointment time %q, skipping",
				b.ID, b.AppointmentTime.String())
			continue
		}

		if carWashOverlaps(startMinutes, duration, existingStart, b.CarWashDurationMinutes()) {
			s.logger.Info("CheckCarWash: slot %s conflicts with booking id=%d", req.StartTime, b.ID)
			return &models.CarWashResponse{
				Available:       false,
				DurationMinutes: duration,
				Conflict: &models.Conflict{
					Source:      models.SourceBooking,
					ID:          b.ID,
					VehicleName: b.VehicleName,
					VehicleID:   b.VehicleID,
				},
			}, nil
		}
	}

	return &models.CarWashResponse{
		Available:       true,
		DurationMinutes: duration,
	}, nil
}

const minutesPerDay = 24 * 60

// Вспомогательные методы

// resolveVehicle находит автомобиль по ID или имени. Нерезолвящееся имя -
// не ошибка: легаси-записи могут ссылаться на автомобили только по имени,
// проверка продолжается в режиме сопоставления по имени.
func (s *Service) resolveVehicle(ctx context.Context, name string, targetID *int64) (*domain.Vehicle, error) {
	if targetID != nil {
		vehicle, err := s.vehicles.GetByID(ctx, *targetID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return nil, ErrVehicleNotFound
			}
			return nil, fmt.Errorf("%w: resolveVehicle - get by id: %v", ErrInternal, err)
		}
		return vehicle, nil
	}

	vehicle, err := s.vehicles.GetByDisplayName(ctx, name)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("resolveVehicle: no vehicle record for name %q, falling back to name matching", name)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: resolveVehicle - get by name: %v", ErrInternal, err)
	}
	return vehicle, nil
}

// collectConflicts собирает конфликты кандидатского интервала по двум
// источникам: бронированиям и резервациям
func (s *Service) collectConflicts(
	ctx context.Context,
	requestedName string,
	targetID *int64,
	vehicle *domain.Vehicle,
	candidate domain.TimeRange,
) ([]models.Conflict, error) {
	// Окно выборки расширено на буфер: обязательство, закончившееся меньше
	// чем за буфер до начала кандидата, все еще конфликтует
	window := domain.TimeRange{
		Start: candidate.Start.Add(-domain.TurnaroundBuffer),
		End:   candidate.End,
	}

	filter := domain.VehicleRentalsFilter{
		NameLike: requestedName,
		Period:   &window,
	}
	var plate *string
	if vehicle != nil {
		filter.VehicleID = &vehicle.ID
		plate = &vehicle.Plate
		filter.Plate = plate
	}
	if targetID != nil {
		filter.VehicleID = targetID
	}

	rentals, err := s.bookings.GetActiveRentals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: collectConflicts - get rentals: %v", ErrInternal, err)
	}

	conflicts := make([]models.Conflict, 0)

	for _, b := range rentals {
		attr := attributeBooking(b, requestedName, targetID, plate)
		if attr == attrNone {
			continue
		}
		if !rentalConflicts(candidate, b.RentalRange()) {
			continue
		}
		if attr == attrGeneric {
			s.logger.Warn("collectConflicts: booking id=%d matched %q by name only (no stable vehicle id)",
				b.ID, requestedName)
		}
		conflicts = append(conflicts, models.Conflict{
			Source:       models.SourceBooking,
			ID:           b.ID,
			VehicleName:  b.VehicleName,
			VehicleID:    b.VehicleID,
			Range:        b.RentalRange(),
			BlockedUntil: b.DropoffAt.Add(domain.TurnaroundBuffer),
			Specific:     attr == attrSpecific,
		})
	}

	// Резервации привязаны строго к vehicle_id - без резолва автомобиля
	// проверять нечего
	reservationVehicleID := targetID
	if reservationVehicleID == nil && vehicle != nil {
		reservationVehicleID = &vehicle.ID
	}
	if reservationVehicleID != nil {
		reservations, err := s.reservations.GetActiveByVehicle(ctx, *reservationVehicleID, &window)
		if err != nil {
			return nil, fmt.Errorf("%w: collectConflicts - get reservations: %v", ErrInternal, err)
		}
		for _, r := range reservations {
			if !rentalConflicts(candidate, r.Range()) {
				continue
			}
			conflicts = append(conflicts, models.Conflict{
				Source:       models.SourceReservation,
				ID:           r.ID,
				VehicleID:    &r.VehicleID,
				Range:        r.Range(),
				BlockedUntil: r.EndAt.Add(domain.TurnaroundBuffer),
				Specific:     true,
			})
		}
	}

	return conflicts, nil
}

func validateRentalInterval(pickupAt, dropoffAt time.Time) error {
	if pickupAt.IsZero() || dropoffAt.IsZero() {
		return fmt.Errorf("%w: pickup and dropoff times are required", ErrInvalidInput)
	}
	if !dropoffAt.After(pickupAt) {
		return fmt.Errorf("%w: dropoff must be after pickup", ErrInvalidInput)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// earliestRelease возвращает ближайший момент освобождения ресурса
// (минимальный BlockedUntil среди конфликтов)
func earliestRelease(conflicts []models.Conflict) *time.Time {
	var earliest *time.Time
	for i := range conflicts {
		t := conflicts[i].BlockedUntil
		if t.IsZero() {
			continue
		}
		if earliest == nil || t.Before(*earliest) {
			earliest = &t
		}
	}
	return earliest
}

// pickupFallsInBlackout проверяет попадание времени выдачи в окно
// [from, availableAgain). Открытые границы трактуются как неограниченные.
func pickupFallsInBlackout(pickup types.TimeString, from *types.TimeString, availableAgain *types.TimeString) bool {
	if from != nil && pickup.IsBefore(*from) {
		return false
	}
	if availableAgain != nil && !pickup.IsBefore(*availableAgain) {
		return false
	}
	return true
}
