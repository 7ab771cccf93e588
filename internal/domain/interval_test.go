package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return parsed
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{
			name: "disjoint ranges",
			a:    TimeRange{Start: mustTime(t, "2026-09-01T10:00:00Z"), End: mustTime(t, "2026-09-01T12:00:00Z")},
			b:    TimeRange{Start: mustTime(t, "2026-09-01T14:00:00Z"), End: mustTime(t, "2026-09-01T16:00:00Z")},
			want: false,
		},
		{
			name: "touching endpoints do not overlap",
			a:    TimeRange{Start: mustTime(t, "2026-09-01T10:00:00Z"), End: mustTime(t, "2026-09-01T12:00:00Z")},
			b:    TimeRange{Start: mustTime(t, "2026-09-01T12:00:00Z"), End: mustTime(t, "2026-09-01T14:00:00Z")},
			want: false,
		},
		{
			name: "partial overlap",
			a:    TimeRange{Start: mustTime(t, "2026-09-01T10:00:00Z"), End: mustTime(t, "2026-09-01T12:00:00Z")},
			b:    TimeRange{Start: mustTime(t, "2026-09-01T11:00:00Z"), End: mustTime(t, "2026-09-01T13:00:00Z")},
			want: true,
		},
		{
			name: "containment",
			a:    TimeRange{Start: mustTime(t, "2026-09-01T10:00:00Z"), End: mustTime(t, "2026-09-01T18:00:00Z")},
			b:    TimeRange{Start: mustTime(t, "2026-09-01T12:00:00Z"), End: mustTime(t, "2026-09-01T13:00:00Z")},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_ConflictsWithBuffered(t *testing.T) {
	existing := TimeRange{
		Start: mustTime(t, "2026-09-01T10:00:00Z"),
		End:   mustTime(t, "2026-09-01T12:00:00Z"),
	}

	tests := []struct {
		name      string
		candidate TimeRange
		want      bool
	}{
		{
			name: "pickup inside buffer window conflicts",
			candidate: TimeRange{
				Start: mustTime(t, "2026-09-01T13:00:00Z"),
				End:   mustTime(t, "2026-09-01T15:00:00Z"),
			},
			want: true,
		},
		{
			name: "pickup exactly at buffer end is free",
			candidate: TimeRange{
				Start: mustTime(t, "2026-09-01T13:30:00Z"),
				End:   mustTime(t, "2026-09-01T15:00:00Z"),
			},
			want: false,
		},
		{
			name: "candidate before existing is free",
			candidate: TimeRange{
				Start: mustTime(t, "2026-09-01T07:00:00Z"),
				End:   mustTime(t, "2026-09-01T10:00:00Z"),
			},
			want: false,
		},
		{
			name: "direct overlap conflicts",
			candidate: TimeRange{
				Start: mustTime(t, "2026-09-01T11:00:00Z"),
				End:   mustTime(t, "2026-09-01T13:00:00Z"),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.candidate.ConflictsWithBuffered(existing, TurnaroundBuffer)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeRange_IsValid(t *testing.T) {
	start := mustTime(t, "2026-09-01T10:00:00Z")

	assert.True(t, TimeRange{Start: start, End: start.Add(time.Hour)}.IsValid())
	assert.False(t, TimeRange{Start: start, End: start}.IsValid())
	assert.False(t, TimeRange{Start: start, End: start.Add(-time.Hour)}.IsValid())
}
