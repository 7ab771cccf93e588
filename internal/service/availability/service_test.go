package availability

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	vehicleRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/vehicle"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/ptr"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return parsed
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeVehicles struct {
	vehicles []*domain.Vehicle
}

func (f *fakeVehicles) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, vehicleRepo.ErrVehicleNotFound
}

func (f *fakeVehicles) GetByDisplayName(_ context.Context, name string) (*domain.Vehicle, error) {
	for _, v := range f.vehicles {
		if strings.EqualFold(v.DisplayName, strings.TrimSpace(name)) {
			return v, nil
		}
	}
	return nil, vehicleRepo.ErrVehicleNotFound
}

func (f *fakeVehicles) ListByDisplayNames(_ context.Context, names []string) ([]*domain.Vehicle, error) {
	out := make([]*domain.Vehicle, 0)
	for _, n := range names {
		for _, v := range f.vehicles {
			if strings.EqualFold(v.DisplayName, strings.TrimSpace(n)) {
				out = append(out, v)
			}
		}
	}
	return out, nil
}

type fakeBookings struct {
	rentals []*domain.Booking
	carWash []*domain.Booking
}

func (f *fakeBookings) GetActiveRentals(_ context.Context, _ domain.VehicleRentalsFilter) ([]*domain.Booking, error) {
	return f.rentals, nil
}

func (f *fakeBookings) GetCarWashByDate(_ context.Context, filter domain.CarWashBookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(f.carWash))
	for _, b := range f.carWash {
		if filter.ExcludeBookingID != nil && b.ID == *filter.ExcludeBookingID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeReservations struct {
	byVehicle map[int64][]*domain.Reservation
}

func (f *fakeReservations) GetActiveByVehicle(_ context.Context, vehicleID int64, _ *domain.TimeRange) ([]*domain.Reservation, error) {
	return f.byVehicle[vehicleID], nil
}

func newTestService(vehicles []*domain.Vehicle, rentals, carWash []*domain.Booking, reservations map[int64][]*domain.Reservation) *Service {
	if reservations == nil {
		reservations = map[int64][]*domain.Reservation{}
	}
	return NewService(
		&fakeVehicles{vehicles: vehicles},
		&fakeBookings{rentals: rentals, carWash: carWash},
		&fakeReservations{byVehicle: reservations},
		nopLogger{},
	)
}

func urus(id int64) *domain.Vehicle {
	return &domain.Vehicle{ID: id, DisplayName: "Urus", Plate: "AB123CD", Status: domain.VehicleAvailable}
}

func TestService_CheckVehicle_Free(t *testing.T) {
	svc := newTestService([]*domain.Vehicle{urus(1)}, nil, nil, nil)

	resp, err := svc.CheckVehicle(context.Background(), &models.CheckVehicleRequest{
		VehicleName: "Urus",
		PickupAt:    mustTime(t, "2026-09-01T10:00:00Z"),
		DropoffAt:   mustTime(t, "2026-09-02T10:00:00Z"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Conflicts)
}

func TestService_CheckVehicle_BufferConflict(t *testing.T) {
	existing := &domain.Booking{
		ID:          42,
		ServiceType: domain.ServiceRental,
		VehicleID:   ptr.Ptr(int64(1)),
		VehicleName: "Urus",
		PickupAt:    mustTime(t, "2026-09-01T10:00:00Z"),
		DropoffAt:   mustTime(t, "2026-09-01T12:00:00Z"),
		Status:      domain.StatusConfirmed,
	}
	svc := newTestService([]*domain.Vehicle{urus(1)}, []*domain.Booking{existing}, nil, nil)

	// Выдача через час после возврата - внутри turnaround-буфера
	resp, err := svc.CheckVehicle(context.Background(), &models.CheckVehicleRequest{
		VehicleName: "Urus",
		PickupAt:    mustTime(t, "2026-09-01T13:00:00Z"),
		DropoffAt:   mustTime(t, "2026-09-01T18:00:00Z"),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(42), resp.Conflicts[0].ID)
	assert.True(t, resp.Conflicts[0].Specific)
	assert.Equal(t, mustTime(t, "2026-09-01T13:30:00Z"), resp.Conflicts[0].BlockedUntil)

	// Выдача ровно на границе буфера - свободно
	resp, err = svc.CheckVehicle(context.Background(), &models.CheckVehicleRequest{
		VehicleName: "Urus",
		PickupAt:    mustTime(t, "2026-09-01T13:30:00Z"),
		DropoffAt:   mustTime(t, "2026-09-01T18:00:00Z"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestService_CheckVehicle_OtherSpecificVehicleIgnored(t *testing.T) {
	existing := &domain.Booking{
		ID:          7,
		VehicleID:   ptr.Ptr(int64(2)),
		VehicleName: "Urus",
		PickupAt:    mustTime(t, "2026-09-01T10:00:00Z"),
		DropoffAt:   mustTime(t, "2026-09-01T12:00:00Z"),
	}
	svc := newTestService([]*domain.Vehicle{urus(1)}, []*domain.Booking{existing}, nil, nil)

	resp, err := svc.CheckVehicle(context.Background(), &models.CheckVehicleRequest{
		VehicleName:     "Urus",
		TargetVehicleID: ptr.Ptr(int64(1)),
		PickupAt:        mustTime(t, "2026-09-01T11:00:00Z"),
		DropoffAt:       mustTime(t, "2026-09-01T15:00:00Z"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestService_CheckVehicle_NameOnlyFallback(t *testing.T) {
	// Автомобиль не заведен в справочнике - легаси-бронирование
	// должно найтись по имени
	existing := &domain.Booking{
		ID:          9,
		VehicleName: "Ferrari Roma",
		PickupAt:    mustTime(t, "2026-09-01T10:00:00Z"),
		DropoffAt:   mustTime(t, "2026-09-03T10:00:00Z"),
	}
	svc := newTestService(nil, []*domain.Booking{existing}, nil, nil)

	resp, err := svc.CheckVehicle(context.Background(), &models.CheckVehicleRequest{
		VehicleName: "Roma",
		PickupAt:    mustTime(t, "2026-09-02T10:00:00Z"),
		DropoffAt:   mustTime(t, "2026-09-04T10:00:00Z"),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.False(t, resp.Conflicts[0].Specific)
}

func TestService_CheckVehicle_UnknownIDFails(t *testing.T) {
	svc := newTestService([]*domain.Vehicle{urus(1)}, nil, nil, nil)

	_, err := svc.CheckVehicle(context.Background(), &models.CheckVehicleRequest{
		VehicleName:     "Urus",
		TargetVehicleID: ptr.Ptr(int64(99)),
		PickupAt:        mustTime(t, "2026-09-01T10:00:00Z"),
		DropoffAt:       mustTime(t, "2026-09-02T10:00:00Z"),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestService_CheckVehicle_ReservationConflict(t *testing.T) {
	reservations := map[int64][]*domain.Reservation{
		1: {{
			ID:        3,
			VehicleID: 1,
			StartAt:   mustTime(t, "2026-09-01T08:00:00Z"),
			EndAt:     mustTime(t, "2026-09-01T20:00:00Z"),
			Status:    domain.ReservationConfirmed,
		}},
	}
	svc := newTestService([]*domain.Vehicle{urus(1)}, nil, nil, reservations)

	resp, err := svc.CheckVehicle(context.Background(), &models.CheckVehicleRequest{
		VehicleName: "Urus",
		PickupAt:    mustTime(t, "2026-09-01T10:00:00Z"),
		DropoffAt:   mustTime(t, "2026-09-01T12:00:00Z"),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, models.SourceReservation, resp.Conflicts[0].Source)
	assert.True(t, resp.Conflicts[0].Specific)
}

func poolVehicles() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: 1, DisplayName: "Urus 1", Plate: "AA111AA"},
		{ID: 2, DisplayName: "Urus 2", Plate: "BB222BB"},
		{ID: 3, DisplayName: "Urus 3", Plate: "CC333CC"},
	}
}

func poolMembers() []models.GroupMember {
	return []models.GroupMember{
		{Name: "Urus 1"},
		{Name: "Urus 2"},
		{Name: "Urus 3"},
	}
}

func genericUrusBooking(t *testing.T, id int64) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:          id,
		VehicleName: "Urus",
		PickupAt:    mustTime(t, "2026-09-01T09:00:00Z"),
		DropoffAt:   mustTime(t, "2026-09-01T18:00:00Z"),
	}
}

func TestService_CheckGroup_OneGenericConflictLeavesPoolAvailable(t *testing.T) {
	svc := newTestService(poolVehicles(), []*domain.Booking{genericUrusBooking(t, 100)}, nil, nil)

	resp, err := svc.CheckGroup(context.Background(), &models.CheckGroupRequest{
		Members:   poolMembers(),
		PickupAt:  mustTime(t, "2026-09-01T10:00:00Z"),
		DropoffAt: mustTime(t, "2026-09-01T14:00:00Z"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, "Urus 1", resp.ChosenName)
	require.NotNil(t, resp.ChosenID)
	assert.Equal(t, int64(1), *resp.ChosenID)
}

func TestService_CheckGroup_ThreeGenericConflictsExhaustPool(t *testing.T) {
	rentals := []*domain.Booking{
		genericUrusBooking(t, 100),
		genericUrusBooking(t, 101),
		genericUrusBooking(t, 102),
	}
	svc := newTestService(poolVehicles(), rentals, nil, nil)

	resp, err := svc.CheckGroup(context.Background(), &models.CheckGroupRequest{
		Members:   poolMembers(),
		PickupAt:  mustTime(t, "2026-09-01T10:00:00Z"),
		DropoffAt: mustTime(t, "2026-09-01T14:00:00Z"),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	// Каждое генерическое бронирование учтено один раз, хотя видно из всех участников
	assert.Len(t, resp.Conflicts, 3)
	require.NotNil(t, resp.NextAvailableAt)
	assert.Equal(t, mustTime(t, "2026-09-01T19:30:00Z"), *resp.NextAvailableAt)
}

func TestService_CheckGroup_SpecificBlockRemovesOneMember(t *testing.T) {
	specific := &domain.Booking{
		ID:          200,
		VehicleID:   ptr.Ptr(int64(1)),
		VehicleName: "Urus 1",
		PickupAt:    mustTime(t, "2026-09-01T09:00:00Z"),
		DropoffAt:   mustTime(t, "2026-09-01T18:00:00Z"),
	}
	svc := newTestService(poolVehicles(), []*domain.Booking{specific}, nil, nil)

	resp, err := svc.CheckGroup(context.Background(), &models.CheckGroupRequest{
		Members:   poolMembers(),
		PickupAt:  mustTime(t, "2026-09-01T10:00:00Z"),
		DropoffAt: mustTime(t, "2026-09-01T14:00:00Z"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, "Urus 2", resp.ChosenName)
}

func TestService_UnavailableDateRanges(t *testing.T) {
	rentals := []*domain.Booking{
		{
			ID:          1,
			VehicleID:   ptr.Ptr(int64(1)),
			VehicleName: "Urus",
			PickupAt:    mustTime(t, "2026-09-10T10:00:00Z"),
			DropoffAt:   mustTime(t, "2026-09-12T10:00:00Z"),
		},
	}
	reservations := map[int64][]*domain.Reservation{
		1: {{
			ID:        2,
			VehicleID: 1,
			StartAt:   mustTime(t, "2026-09-01T08:00:00Z"),
			EndAt:     mustTime(t, "2026-09-02T08:00:00Z"),
			Status:    domain.ReservationConfirmed,
		}},
	}
	svc := newTestService([]*domain.Vehicle{urus(1)}, rentals, nil, reservations)

	ranges, err := svc.UnavailableDateRanges(context.Background(), "Urus")
	require.NoError(t, err)
	require.Len(t, ranges, 2)

	// Отсортировано по началу, границы сырые - без буфера
	assert.Equal(t, mustTime(t, "2026-09-01T08:00:00Z"), ranges[0].Start)
	assert.Equal(t, mustTime(t, "2026-09-02T08:00:00Z"), ranges[0].End)
	assert.Equal(t, mustTime(t, "2026-09-10T10:00:00Z"), ranges[1].Start)
	assert.Equal(t, mustTime(t, "2026-09-12T10:00:00Z"), ranges[1].End)
}

func TestService_CheckPartialDay(t *testing.T) {
	from := types.TimeString("09:00")
	until := types.TimeString("13:00")
	reason := "detailing"

	vehicle := urus(1)
	vehicle.UnavailableFrom = ptr.Ptr(mustTime(t, "2026-09-01T00:00:00Z"))
	vehicle.UnavailableUntil = ptr.Ptr(mustTime(t, "2026-09-01T00:00:00Z"))
	vehicle.UnavailableFromTime = &from
	vehicle.UnavailableUntilTime = &until
	vehicle.UnavailableReason = &reason

	svc := newTestService([]*domain.Vehicle{vehicle}, nil, nil, nil)

	t.Run("date outside blackout", func(t *testing.T) {
		resp, err := svc.CheckPartialDay(context.Background(), &models.PartialDayRequest{
			VehicleName: "Urus",
			Date:        mustTime(t, "2026-09-05T00:00:00Z"),
		})
		require.NoError(t, err)
		assert.False(t, resp.Blocked)
	})

	t.Run("time bounded blackout", func(t *testing.T) {
		resp, err := svc.CheckPartialDay(context.Background(), &models.PartialDayRequest{
			VehicleName: "Urus",
			Date:        mustTime(t, "2026-09-01T00:00:00Z"),
		})
		require.NoError(t, err)
		assert.True(t, resp.Blocked)
		assert.False(t, resp.FullDay)
		require.NotNil(t, resp.AvailableAgain)
		assert.Equal(t, "14:30", resp.AvailableAgain.String())
	})

	t.Run("pickup inside blackout window", func(t *testing.T) {
		pickup := types.TimeString("14:00")
		resp, err := svc.CheckPartialDay(context.Background(), &models.PartialDayRequest{
			VehicleName: "Urus",
			Date:        mustTime(t, "2026-09-01T00:00:00Z"),
			PickupTime:  &pickup,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.PickupBlocked)
		assert.True(t, *resp.PickupBlocked)
	})

	t.Run("pickup after available-again time", func(t *testing.T) {
		pickup := types.TimeString("14:30")
		resp, err := svc.CheckPartialDay(context.Background(), &models.PartialDayRequest{
			VehicleName: "Urus",
			Date:        mustTime(t, "2026-09-01T00:00:00Z"),
			PickupTime:  &pickup,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.PickupBlocked)
		assert.False(t, *resp.PickupBlocked)
	})

	t.Run("blackout ending near midnight blocks the rest of the day", func(t *testing.T) {
		lateFrom := types.TimeString("20:00")
		lateUntil := types.TimeString("23:30")

		late := urus(3)
		late.DisplayName = "Aventador"
		late.UnavailableFrom = ptr.Ptr(mustTime(t, "2026-09-01T00:00:00Z"))
		late.UnavailableUntil = ptr.Ptr(mustTime(t, "2026-09-01T00:00:00Z"))
		late.UnavailableFromTime = &lateFrom
		late.UnavailableUntilTime = &lateUntil

		svc := newTestService([]*domain.Vehicle{late}, nil, nil, nil)

		pickup := types.TimeString("23:45")
		resp, err := svc.CheckPartialDay(context.Background(), &models.PartialDayRequest{
			VehicleName: "Aventador",
			Date:        mustTime(t, "2026-09-01T00:00:00Z"),
			PickupTime:  &pickup,
		})
		require.NoError(t, err)
		assert.True(t, resp.Blocked)

		// Буфер уходит за полночь - времени "снова доступен" в этих сутках нет
		assert.Nil(t, resp.AvailableAgain)
		require.NotNil(t, resp.PickupBlocked)
		assert.True(t, *resp.PickupBlocked)
	})

	t.Run("full day when no time bounds", func(t *testing.T) {
		fullDay := urus(2)
		fullDay.DisplayName = "Huracan"
		fullDay.UnavailableFrom = ptr.Ptr(mustTime(t, "2026-09-01T00:00:00Z"))
		fullDay.UnavailableUntil = ptr.Ptr(mustTime(t, "2026-09-02T00:00:00Z"))

		svc := newTestService([]*domain.Vehicle{fullDay}, nil, nil, nil)
		resp, err := svc.CheckPartialDay(context.Background(), &models.PartialDayRequest{
			VehicleName: "Huracan",
			Date:        mustTime(t, "2026-09-01T00:00:00Z"),
		})
		require.NoError(t, err)
		assert.True(t, resp.Blocked)
		assert.True(t, resp.FullDay)
	})
}

func TestService_CheckCarWash(t *testing.T) {
	appointment := types.TimeString("10:00")
	existing := &domain.Booking{
		ID:              50,
		ServiceType:     domain.ServiceCarWash,
		VehicleName:     "Panamera",
		AppointmentTime: &appointment,
		PriceTotalCents: 2500, // час
	}
	svc := newTestService(nil, nil, []*domain.Booking{existing}, nil)

	t.Run("slot thirty minutes later conflicts", func(t *testing.T) {
		resp, err := svc.CheckCarWash(context.Background(), &models.CarWashRequest{
			Date:       mustTime(t, "2026-09-01T00:00:00Z"),
			StartTime:  types.TimeString("10:30"),
			PriceCents: 2500,
		})
		require.NoError(t, err)
		assert.False(t, resp.Available)
		require.NotNil(t, resp.Conflict)
		assert.Equal(t, int64(50), resp.Conflict.ID)
	})

	t.Run("back to back slot is free", func(t *testing.T) {
		resp, err := svc.CheckCarWash(context.Background(), &models.CarWashRequest{
			Date:       mustTime(t, "2026-09-01T00:00:00Z"),
			StartTime:  types.TimeString("11:00"),
			PriceCents: 2500,
		})
		require.NoError(t, err)
		assert.True(t, resp.Available)
		assert.Equal(t, 60, resp.DurationMinutes)
	})

	t.Run("premium wash takes longer and reaches back", func(t *testing.T) {
		// €75 - три часа: слот в 08:00 дотягивается до 11:00 и
		// пересекает бронирование в 10:00
		resp, err := svc.CheckCarWash(context.Background(), &models.CarWashRequest{
			Date:       mustTime(t, "2026-09-01T00:00:00Z"),
			StartTime:  types.TimeString("08:00"),
			PriceCents: 7500,
		})
		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Equal(t, 180, resp.DurationMinutes)
	})

	t.Run("edited booking excludes itself", func(t *testing.T) {
		resp, err := svc.CheckCarWash(context.Background(), &models.CarWashRequest{
			Date:             mustTime(t, "2026-09-01T00:00:00Z"),
			StartTime:        types.TimeString("10:00"),
			PriceCents:       2500,
			ExcludeBookingID: ptr.Ptr(int64(50)),
		})
		require.NoError(t, err)
		assert.True(t, resp.Available)
	})

	t.Run("invalid price rejected", func(t *testing.T) {
		_, err := svc.CheckCarWash(context.Background(), &models.CarWashRequest{
			Date:       mustTime(t, "2026-09-01T00:00:00Z"),
			StartTime:  types.TimeString("10:00"),
			PriceCents: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
