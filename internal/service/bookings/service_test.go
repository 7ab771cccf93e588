package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	bookingRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	reasons  map[int64]string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		bookings: make(map[int64]*domain.Booking),
		reasons:  make(map[int64]string),
	}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) UpdatePaymentStatus(_ context.Context, id int64, status domain.PaymentStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.PaymentStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	f.reasons[id] = reason
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

func confirmedBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      userID,
		ServiceType: domain.ServiceRental,
		VehicleName: "Urus",
		Status:      domain.StatusConfirmed,
	}
}

func TestService_Get_AccessControl(t *testing.T) {
	svc := NewService(newFakeBookingRepo(confirmedBooking(1, 10)), nopLogger{})
	ctx := context.Background()

	// Владелец видит свое бронирование
	booking, err := svc.Get(ctx, 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)

	// Чужое бронирование закрыто
	_, err = svc.Get(ctx, 1, 20, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Админ видит любые
	_, err = svc.Get(ctx, 1, 20, true)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, 99, 10, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1, 10))
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.Cancel(ctx, 1, 10, false, ""))
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	assert.Equal(t, "cancelled by user", repo.reasons[1])

	// Повторная отмена - ошибка
	err := svc.Cancel(ctx, 1, 10, false, "")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_AccessDenied(t *testing.T) {
	svc := NewService(newFakeBookingRepo(confirmedBooking(1, 10)), nopLogger{})

	err := svc.Cancel(context.Background(), 1, 20, false, "not mine")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel_CompletedBooking(t *testing.T) {
	completed := confirmedBooking(1, 10)
	completed.Status = domain.StatusCompleted
	svc := NewService(newFakeBookingRepo(completed), nopLogger{})

	err := svc.Cancel(context.Background(), 1, 10, false, "")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_ListForUser_StatusFilter(t *testing.T) {
	cancelled := confirmedBooking(2, 10)
	cancelled.Status = domain.StatusCancelled

	svc := NewService(newFakeBookingRepo(confirmedBooking(1, 10), cancelled), nopLogger{})
	ctx := context.Background()

	all, err := svc.ListForUser(ctx, 10, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	status := domain.StatusConfirmed
	confirmed, err := svc.ListForUser(ctx, 10, &status)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, int64(1), confirmed[0].ID)
}

func TestService_SetPaymentStatus(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1, 10))
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.SetPaymentStatus(ctx, 1, domain.PaymentPaid))
	assert.Equal(t, domain.PaymentPaid, repo.bookings[1].PaymentStatus)

	// Неизвестный статус отклоняется до обращения к хранилищу
	err := svc.SetPaymentStatus(ctx, 1, domain.PaymentStatus("voided"))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, domain.PaymentPaid, repo.bookings[1].PaymentStatus)

	assert.ErrorIs(t, svc.SetPaymentStatus(ctx, 99, domain.PaymentRefunded), ErrBookingNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1, 10))
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	assert.Empty(t, repo.bookings)

	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrBookingNotFound)
}
