package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/integrations/notifyservice"
	availabilityModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
	walletService "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet"
	walletModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/create_booking/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAvailability struct {
	conflicts []availabilityModels.Conflict
	err       error
}

func (f *fakeAvailability) CheckVehicle(_ context.Context, _ *availabilityModels.CheckVehicleRequest) (*availabilityModels.CheckVehicleResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &availabilityModels.CheckVehicleResponse{
		Available: len(f.conflicts) == 0,
		Conflicts: f.conflicts,
	}, nil
}

type fakeBookingRepo struct {
	created        *domain.Booking
	statusUpdates  []domain.BookingStatus
	paymentUpdates []domain.PaymentStatus
	nextID         int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	stored := *booking
	stored.ID = f.nextID
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func (f *fakeBookingRepo) UpdatePaymentStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	f.paymentUpdates = append(f.paymentUpdates, status)
	return nil
}

type fakeWallet struct {
	deductions []*walletModels.DeductCreditsRequest
	err        error
}

func (f *fakeWallet) DeductCredits(_ context.Context, req *walletModels.DeductCreditsRequest) (*walletModels.OperationResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deductions = append(f.deductions, req)
	return &walletModels.OperationResult{Applied: true}, nil
}

type fakeTickets struct {
	issued int
}

func (f *fakeTickets) IssueForBooking(_ context.Context, userID, bookingID, totalCents int64) ([]*domain.Ticket, error) {
	count := (totalCents + 2499) / 2500
	batch := make([]*domain.Ticket, count)
	for i := range batch {
		batch[i] = &domain.Ticket{UserID: userID, BookingID: &bookingID}
	}
	f.issued += len(batch)
	return batch, nil
}

type fakeNotify struct {
	sent []*notifyservice.BookingNotification
	err  error
}

func (f *fakeNotify) SendBookingConfirmation(_ context.Context, n *notifyservice.BookingNotification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

type testEnv struct {
	availability *fakeAvailability
	bookings     *fakeBookingRepo
	wallet       *fakeWallet
	tickets      *fakeTickets
	notify       *fakeNotify
	usecase      *UseCase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		availability: &fakeAvailability{},
		bookings:     &fakeBookingRepo{},
		wallet:       &fakeWallet{},
		tickets:      &fakeTickets{},
		notify:       &fakeNotify{},
	}
	env.usecase = NewUseCase(
		env.availability, env.bookings, env.wallet, env.tickets, env.notify,
		passthroughTxManager{}, nopLogger{},
	)
	return env
}

func validRequest(t *testing.T) *models.CreateBookingRequest {
	t.Helper()
	pickup, err := time.Parse(time.RFC3339, "2026-09-01T10:00:00Z")
	require.NoError(t, err)
	return &models.CreateBookingRequest{
		UserID:          1,
		VehicleName:     "Urus",
		PickupAt:        pickup,
		DropoffAt:       pickup.Add(48 * time.Hour),
		PriceTotalCents: 50000,
	}
}

func TestUseCase_CreateBooking_Unpaid(t *testing.T) {
	env := newTestEnv()

	resp, err := env.usecase.CreateBooking(context.Background(), validRequest(t))
	require.NoError(t, err)

	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, domain.PaymentUnpaid, resp.Booking.PaymentStatus)
	assert.Equal(t, domain.ServiceRental, resp.Booking.ServiceType)

	// Неоплаченное бронирование билетов не получает
	assert.Zero(t, resp.TicketsIssued)
	assert.Empty(t, env.wallet.deductions)

	// Уведомление уходит после коммита
	require.Len(t, env.notify.sent, 1)
	assert.Equal(t, resp.Booking.ID, env.notify.sent[0].BookingID)
}

func TestUseCase_CreateBooking_PayWithWallet(t *testing.T) {
	env := newTestEnv()

	req := validRequest(t)
	req.PayWithWallet = true

	resp, err := env.usecase.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Equal(t, domain.PaymentPaid, resp.Booking.PaymentStatus)

	require.Len(t, env.wallet.deductions, 1)
	assert.Equal(t, int64(50000), env.wallet.deductions[0].AmountCents)
	require.NotNil(t, env.wallet.deductions[0].ReferenceID)
	assert.Equal(t, "booking", *env.wallet.deductions[0].ReferenceType)

	assert.Equal(t, []domain.PaymentStatus{domain.PaymentPaid}, env.bookings.paymentUpdates)
	assert.Equal(t, []domain.BookingStatus{domain.StatusConfirmed}, env.bookings.statusUpdates)

	// 50000 центов по тарифу 2500 за билет
	assert.Equal(t, 20, resp.TicketsIssued)
}

func TestUseCase_CreateBooking_ConflictReturnsDetails(t *testing.T) {
	env := newTestEnv()
	env.availability.conflicts = []availabilityModels.Conflict{
		{Source: availabilityModels.SourceBooking, ID: 42, VehicleName: "Urus"},
	}

	resp, err := env.usecase.CreateBooking(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrVehicleUnavailable)

	require.NotNil(t, resp)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(42), resp.Conflicts[0].ID)

	// Бронирование не создано, уведомление не отправлено
	assert.Nil(t, env.bookings.created)
	assert.Empty(t, env.notify.sent)
}

func TestUseCase_CreateBooking_InsufficientBalance(t *testing.T) {
	env := newTestEnv()
	env.wallet.err = walletService.ErrInsufficientBalance

	req := validRequest(t)
	req.PayWithWallet = true

	_, err := env.usecase.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Empty(t, env.notify.sent)
}

func TestUseCase_CreateBooking_NotificationFailureDoesNotFail(t *testing.T) {
	env := newTestEnv()
	env.notify.err = errors.New("notify service is down")

	resp, err := env.usecase.CreateBooking(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.NotNil(t, resp.Booking)
}

func TestUseCase_CreateBooking_Validation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *models.CreateBookingRequest)
	}{
		{name: "missing user", mutate: func(r *models.CreateBookingRequest) { r.UserID = 0 }},
		{name: "missing vehicle", mutate: func(r *models.CreateBookingRequest) { r.VehicleName = "" }},
		{name: "dropoff before pickup", mutate: func(r *models.CreateBookingRequest) { r.DropoffAt = r.PickupAt.Add(-time.Hour) }},
		{name: "zero interval", mutate: func(r *models.CreateBookingRequest) { r.DropoffAt = r.PickupAt }},
		{name: "period too long", mutate: func(r *models.CreateBookingRequest) {
			r.DropoffAt = r.PickupAt.Add((domain.MaxRentalDays + 1) * 24 * time.Hour)
		}},
		{name: "non-positive price", mutate: func(r *models.CreateBookingRequest) { r.PriceTotalCents = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			_, err := env.usecase.CreateBooking(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
