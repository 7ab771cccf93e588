package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/ptr"
)

func TestNameMatchesLoosely(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "exact match", a: "Urus", b: "Urus", want: true},
		{name: "case insensitive", a: "URUS", b: "urus", want: true},
		{name: "substring in either direction", a: "Urus", b: "Lamborghini Urus Giallo", want: true},
		{name: "no relation", a: "Urus", b: "Huracan", want: false},
		{name: "empty side never matches", a: "", b: "Urus", want: false},
		{name: "whitespace trimmed", a: "  urus  ", b: "Urus", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nameMatchesLoosely(tt.a, tt.b))
		})
	}
}

func TestAttributeBooking(t *testing.T) {
	plate := "AB123CD"

	tests := []struct {
		name     string
		booking  *domain.Booking
		target   *int64
		plate    *string
		expected attribution
	}{
		{
			name:     "same specific id",
			booking:  &domain.Booking{VehicleID: ptr.Ptr(int64(7)), VehicleName: "Urus"},
			target:   ptr.Ptr(int64(7)),
			expected: attrSpecific,
		},
		{
			name:     "different specific id is excluded",
			booking:  &domain.Booking{VehicleID: ptr.Ptr(int64(8)), VehicleName: "Urus"},
			target:   ptr.Ptr(int64(7)),
			expected: attrNone,
		},
		{
			name:     "specific id matched by name when no target requested",
			booking:  &domain.Booking{VehicleID: ptr.Ptr(int64(8)), VehicleName: "Lamborghini Urus"},
			target:   nil,
			expected: attrSpecific,
		},
		{
			name:     "plate match beats name",
			booking:  &domain.Booking{VehicleName: "some legacy name", VehiclePlate: ptr.Ptr("ab123cd")},
			target:   ptr.Ptr(int64(7)),
			plate:    &plate,
			expected: attrSpecific,
		},
		{
			name:     "name-only match is generic",
			booking:  &domain.Booking{VehicleName: "Urus"},
			target:   ptr.Ptr(int64(7)),
			expected: attrGeneric,
		},
		{
			name:     "unrelated booking",
			booking:  &domain.Booking{VehicleName: "Huracan"},
			target:   ptr.Ptr(int64(7)),
			expected: attrNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := attributeBooking(tt.booking, "Urus", tt.target, tt.plate)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCarWashOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		startA int
		durA   int
		startB int
		durB   int
		want   bool
	}{
		{name: "thirty minutes apart one-hour slots overlap", startA: 600, durA: 60, startB: 630, durB: 60, want: true},
		{name: "back to back slots do not overlap", startA: 600, durA: 60, startB: 660, durB: 60, want: false},
		{name: "identical slots overlap", startA: 600, durA: 60, startB: 600, durB: 60, want: true},
		{name: "long slot swallows short one", startA: 600, durA: 240, startB: 660, durB: 60, want: true},
		{name: "disjoint slots", startA: 600, durA: 60, startB: 900, durB: 60, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, carWashOverlaps(tt.startA, tt.durA, tt.startB, tt.durB))
			assert.Equal(t, tt.want, carWashOverlaps(tt.startB, tt.durB, tt.startA, tt.durA))
		})
	}
}
