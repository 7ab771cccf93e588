package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/integrations/notifyservice"
	availabilityModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
	walletService "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet"
	walletModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/create_booking/models"
)

const walletReferenceType = "booking"

// UseCase сценарий создания аренды автомобиля.
//
// Проверка доступности и вставка бронирования выполняются в одной
// сериализуемой транзакции: репозитории внутри транзакции добавляют
// FOR UPDATE к выборкам, поэтому два конкурентных запроса на один интервал
// не могут пройти проверку одновременно. Оплата кошельком списывается в той
// же транзакции - откат отменяет и бронирование, и списание.
type UseCase struct {
	availability AvailabilityService
	bookings     BookingRepository
	wallet       WalletService
	tickets      TicketService
	notify       NotifyClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр сценария создания аренды
func NewUseCase(
	availability AvailabilityService,
	bookings BookingRepository,
	wallet WalletService,
	tickets TicketService,
	notify NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		bookings:     bookings,
		wallet:       wallet,
		tickets:      tickets,
		notify:       notify,
		txManager:    txManager,
		logger:       logger,
	}
}

// CreateBooking создает аренду с атомарной проверкой доступности
func (u *UseCase) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	u.logger.Info("CreateBooking: user=%d, vehicle=%q, pickup=%s, dropoff=%s, wallet=%t",
		req.UserID, req.VehicleName,
		req.PickupAt.Format(time.RFC3339), req.DropoffAt.Format(time.RFC3339), req.PayWithWallet)

	var (
		booking   *domain.Booking
		tickets   int
		conflicts []availabilityModels.Conflict
	)

	err := u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		check, err := u.availability.CheckVehicle(ctx, &availabilityModels.CheckVehicleRequest{
			VehicleName:     req.VehicleName,
			PickupAt:        req.PickupAt,
			DropoffAt:       req.DropoffAt,
			TargetVehicleID: req.VehicleID,
		})
		if err != nil {
			return fmt.Errorf("check availability: %w", err)
		}
		if !check.Available {
			conflicts = check.Conflicts
			return ErrVehicleUnavailable
		}

		created, err := u.bookings.Create(ctx, &domain.Booking{
			UserID:          req.UserID,
			ServiceType:     domain.ServiceRental,
			VehicleID:       req.VehicleID,
			VehicleName:     req.VehicleName,
			PickupAt:        req.PickupAt,
			DropoffAt:       req.DropoffAt,
			PriceTotalCents: req.PriceTotalCents,
			Status:          domain.StatusPending,
			PaymentStatus:   domain.PaymentUnpaid,
			Notes:           req.Notes,
		})
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		booking = created

		if req.PayWithWallet {
			if err := u.payWithWallet(ctx, booking); err != nil {
				return err
			}
		}

		// Билеты выпускаются только за оплаченные бронирования
		if booking.PaymentStatus == domain.PaymentPaid {
			issued, err := u.tickets.IssueForBooking(ctx, req.UserID, booking.ID, req.PriceTotalCents)
			if err != nil {
				return fmt.Errorf("issue tickets: %w", err)
			}
			tickets = len(issued)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrVehicleUnavailable):
			u.logger.Info("CreateBooking: interval is taken, user=%d, vehicle=%q, conflicts=%d",
				req.UserID, req.VehicleName, len(conflicts))
			return &models.CreateBookingResponse{Conflicts: conflicts}, ErrVehicleUnavailable
		case errors.Is(err, walletService.ErrInsufficientBalance):
			return nil, ErrInsufficientBalance
		default:
			return nil, fmt.Errorf("%w: CreateBooking - transaction: %v", ErrInternal, err)
		}
	}

	u.sendConfirmation(ctx, booking)

	u.logger.Info("CreateBooking: booking %d created for user %d, tickets=%d",
		booking.ID, req.UserID, tickets)

	return &models.CreateBookingResponse{
		Booking:       booking,
		TicketsIssued: tickets,
	}, nil
}

// payWithWallet списывает стоимость аренды с кошелька и подтверждает
// бронирование. Выполняется внутри внешней транзакции.
func (u *UseCase) payWithWallet(ctx context.Context, booking *domain.Booking) error {
	refID := fmt.Sprintf("%d", booking.ID)
	refType := walletReferenceType

	_, err := u.wallet.DeductCredits(ctx, &walletModels.DeductCreditsRequest{
		UserID:        booking.UserID,
		AmountCents:   booking.PriceTotalCents,
		Description:   fmt.Sprintf("Rental booking #%d: %s", booking.ID, booking.VehicleName),
		ReferenceID:   &refID,
		ReferenceType: &refType,
	})
	if err != nil {
		if errors.Is(err, walletService.ErrInsufficientBalance) {
			return err
		}
		return fmt.Errorf("deduct credits: %w", err)
	}

	if err := u.bookings.UpdatePaymentStatus(ctx, booking.ID, domain.PaymentPaid); err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}
	if err := u.bookings.UpdateStatus(ctx, booking.ID, domain.StatusConfirmed); err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	booking.PaymentStatus = domain.PaymentPaid
	booking.Status = domain.StatusConfirmed
	return nil
}

// sendConfirmation отправляет уведомление о бронировании.
// Ошибка доставки не откатывает бронирование - только пишется в лог.
func (u *UseCase) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	err := u.notify.SendBookingConfirmation(ctx, &notifyservice.BookingNotification{
		UserID:      booking.UserID,
		BookingID:   booking.ID,
		ServiceType: string(booking.ServiceType),
		VehicleName: booking.VehicleName,
		StartsAt:    booking.PickupAt.Format(time.RFC3339),
		TotalCents:  booking.PriceTotalCents,
	})
	if err != nil {
		u.logger.Warn("sendConfirmation: booking %d notification failed: %v", booking.ID, err)
	}
}

func validateRequest(req *models.CreateBookingRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.VehicleName) == "" && req.VehicleID == nil {
		return fmt.Errorf("%w: vehicle name or id is required", ErrInvalidInput)
	}
	if req.PickupAt.IsZero() || req.DropoffAt.IsZero() {
		return fmt.Errorf("%w: pickup and dropoff times are required", ErrInvalidInput)
	}
	if !req.DropoffAt.After(req.PickupAt) {
		return fmt.Errorf("%w: dropoff must be after pickup", ErrInvalidInput)
	}
	if req.DropoffAt.Sub(req.PickupAt) > domain.MaxRentalDays*24*time.Hour {
		return fmt.Errorf("%w: rental period exceeds %d days", ErrInvalidInput, domain.MaxRentalDays)
	}
	if req.PriceTotalCents <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	return nil
}
