package book_car_wash

import (
	"context"
	"errors"
	"fmt"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/integrations/notifyservice"
	availabilityModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
	walletService "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet"
	walletModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/book_car_wash/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/ptr"
)

const walletReferenceType = "booking"

// UseCase сценарий записи на мойку.
//
// Та же транзакционная форма, что и у аренды: проверка слота и вставка
// выполняются в одной сериализуемой транзакции с FOR UPDATE. Длительность
// слота выводится из тарифа, пересечение проверяется без turnaround-буфера.
type UseCase struct {
	availability AvailabilityService
	bookings     BookingRepository
	wallet       WalletService
	tickets      TicketService
	notify       NotifyClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр сценария записи на мойку
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

// BookCarWash создает запись на мойку с атомарной проверкой слота
func (u *UseCase) BookCarWash(ctx context.Context, req *models.BookCarWashRequest) (*models.BookCarWashResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	u.logger.Info("BookCarWash: user=%d, date=%s, time=%s, price=%d",
		req.UserID, req.AppointmentDate.Format(domain.DateFormat), req.AppointmentTime, req.PriceTotalCents)

	var (
		booking  *domain.Booking
		duration int
		tickets  int
		conflict *availabilityModels.Conflict
	)

	err := u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		check, err := u.availability.CheckCarWash(ctx, &availabilityModels.CarWashRequest{
			Date:       req.AppointmentDate,
			StartTime:  req.AppointmentTime,
			PriceCents: req.PriceTotalCents,
		})
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		duration = check.DurationMinutes
		if !check.Available {
			conflict = check.Conflict
			return ErrSlotUnavailable
		}

		created, err := u.bookings.Create(ctx, &domain.Booking{
			UserID:          req.UserID,
			ServiceType:     domain.ServiceCarWash,
			VehicleName:     req.VehicleName,
			AppointmentDate: ptr.Ptr(req.AppointmentDate),
			AppointmentTime: ptr.Ptr(req.AppointmentTime),
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
		case errors.Is(err, ErrSlotUnavailable):
			u.logger.Info("BookCarWash: slot %s %s is taken, user=%d",
				req.AppointmentDate.Format(domain.DateFormat), req.AppointmentTime, req.UserID)
			return &models.BookCarWashResponse{
				DurationMinutes: duration,
				Conflict:        conflict,
			}, ErrSlotUnavailable
		case errors.Is(err, walletService.ErrInsufficientBalance):
			return nil, ErrInsufficientBalance
		default:
			return nil, fmt.Errorf("%w: BookCarWash - transaction: %v", ErrInternal, err)
		}
	}

	u.sendConfirmation(ctx, booking)

	u.logger.Info("BookCarWash: booking %d created for user %d, duration=%dm, tickets=%d",
		booking.ID, req.UserID, duration, tickets)

	return &models.BookCarWashResponse{
		Booking:         booking,
		DurationMinutes: duration,
		TicketsIssued:   tickets,
	}, nil
}

func (u *UseCase) payWithWallet(ctx context.Context, booking *domain.Booking) error {
	refID := fmt.Sprintf("%d", booking.ID)
	refType := walletReferenceType

	_, err := u.wallet.DeductCredits(ctx, &walletModels.DeductCreditsRequest{
		UserID:        booking.UserID,
		AmountCents:   booking.PriceTotalCents,
		Description:   fmt.Sprintf("Car wash booking #%d", booking.ID),
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

func (u *UseCase) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	startsAt := ""
	if booking.AppointmentDate != nil && booking.AppointmentTime != nil {
		startsAt = fmt.Sprintf("%sT%s:00",
			booking.AppointmentDate.Format(domain.DateFormat), booking.AppointmentTime.String())
	}

	err := u.notify.SendBookingConfirmation(ctx, &notifyservice.BookingNotification{
		UserID:      booking.UserID,
		BookingID:   booking.ID,
		ServiceType: string(booking.ServiceType),
		VehicleName: booking.VehicleName,
		StartsAt:    startsAt,
		TotalCents:  booking.PriceTotalCents,
	})
	if err != nil {
		u.logger.Warn("sendConfirmation: booking %d notification failed: %v", booking.ID, err)
	}
}

func validateRequest(req *models.BookCarWashRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.AppointmentDate.IsZero() {
		return fmt.Errorf("%w: appointment date is required", ErrInvalidInput)
	}
	if err := req.AppointmentTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid appointment time: %v", ErrInvalidInput, err)
	}
	if req.PriceTotalCents <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	return nil
}
