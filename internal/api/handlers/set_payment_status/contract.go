package set_payment_status

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

type BookingsService interface {
	SetPaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
