package create_booking

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/integrations/notifyservice"
	availabilityModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
	walletModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
)

// AvailabilityService интерфейс сервиса проверки доступности
type AvailabilityService interface {
	CheckVehicle(ctx context.Context, req *availabilityModels.CheckVehicleRequest) (*availabilityModels.CheckVehicleResponse, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

// WalletService интерфейс сервиса кошелька
type WalletService interface {
	DeductCredits(ctx context.Context, req *walletModels.DeductCreditsRequest) (*walletModels.OperationResult, error)
}

// TicketService интерфейс сервиса лотерейных билетов
type TicketService interface {
	IssueForBooking(ctx context.Context, userID, bookingID, totalCents int64) ([]*domain.Ticket, error)
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	SendBookingConfirmation(ctx context.Context, n *notifyservice.BookingNotification) error
}

// TransactionManager интерфейс менеджера транзакций БД
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
