package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveBookingStatuses(t *testing.T) {
	// Список занимающих ресурс статусов должен совпадать с предикатом IsActive
	for _, status := range ActiveBookingStatuses {
		b := Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s", status)
	}
	assert.NotContains(t, ActiveBookingStatuses, StatusCancelled)
	assert.Len(t, ActiveBookingStatuses, 4)
}

func TestCarWashDurationMinutes(t *testing.T) {
	tests := []struct {
		name       string
		priceCents int64
		want       int
	}{
		{name: "€25 is one hour", priceCents: 2500, want: 60},
		{name: "€49 rounds up to two hours", priceCents: 4900, want: 120},
		{name: "€50 is exactly two hours", priceCents: 5000, want: 120},
		{name: "€75 is three hours", priceCents: 7500, want: 180},
		{name: "€99 rounds up to four hours", priceCents: 9900, want: 240},
		{name: "€10 still takes a full hour", priceCents: 1000, want: 60},
		{name: "zero price falls back to one hour", priceCents: 0, want: 60},
		{name: "negative price falls back to one hour", priceCents: -100, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CarWashDurationMinutes(tt.priceCents))
		})
	}
}
