package domain

import "time"

// TimeRange is a half-open time interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true when the interval has positive length
func (r TimeRange) IsValid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && r.End.After(r.Start)
}

// WithBuffer extends the end of the interval by d.
// Used to model the turnaround gap after a rental or service.
func (r TimeRange) WithBuffer(d time.Duration) TimeRange {
	return TimeRange{Start: r.Start, End: r.End.Add(d)}
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints (one ends exactly where the other starts) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// ConflictsWithBuffered reports whether a candidate interval conflicts with an
// existing commitment once the turnaround buffer is applied to the existing end.
// This is the single conflict rule for vehicle availability:
// candidate [s1,e1) vs existing [s2, e2+buffer).
func (r TimeRange) ConflictsWithBuffered(existing TimeRange, buffer time.Duration) bool {
	return r.Overlaps(existing.WithBuffer(buffer))
}
