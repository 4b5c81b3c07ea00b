package domain

import (
	"fmt"
	"time"
)

// Interval is a span between two instants, start inclusive. Start and End
// keep whatever location they were built with for display purposes; every
// comparison below uses the absolute instant, never the zone name.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval creates an interval, rejecting end-before-start. Code that
// already holds ordered instants may construct the struct directly.
func NewInterval(start, end time.Time) (Interval, error) {
	if end.Before(start) {
		return Interval{}, fmt.Errorf("%w: %s > %s", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// IsEmpty reports whether the interval covers no time at all.
func (iv Interval) IsEmpty() bool {
	return !iv.End.After(iv.Start)
}

// Equal reports instant equality of both endpoints. Two intervals expressed
// in different zones are equal when they cover the same absolute span.
func (iv Interval) Equal(other Interval) bool {
	return iv.Start.Equal(other.Start) && iv.End.Equal(other.End)
}

// Overlaps reports whether the two intervals share any positive amount of
// time. Touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// OverlapsOrTouches additionally treats shared endpoints as contact; the
// exclusion normalizer uses it to coalesce adjacent spans.
func (iv Interval) OverlapsOrTouches(other Interval) bool {
	return !iv.Start.After(other.End) && !other.Start.After(iv.End)
}

// Contains reports whether the instant falls inside the interval,
// start inclusive, end exclusive.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}
