package domain

import "time"

// DateOverride replaces all recurring availability on exactly one calendar
// day. The day is held as a zone-agnostic CivilDate; it is never an instant
// until Resolve anchors it in the query location. Equal start and end wall
// times encode a fully unavailable day.
type DateOverride struct {
	date  CivilDate
	start TimeOfDay
	end   TimeOfDay
}

// NewDateOverride creates an override for the given calendar date.
func NewDateOverride(date CivilDate, start, end TimeOfDay) DateOverride {
	return DateOverride{date: date, start: start, end: end}
}

// NewDateOverrideAt creates an override whose calendar day is taken from the
// anchor instant as read in the anchor's own location. An override stored as
// midnight UTC (or any other reference zone) keeps naming that calendar date
// no matter which zone the availability query later runs in; re-projecting
// the anchor into the query zone instead would shift the override onto an
// adjacent day whenever the two zones straddle midnight.
func NewDateOverrideAt(anchor time.Time, start, end TimeOfDay) DateOverride {
	return DateOverride{date: CivilDateOf(anchor), start: start, end: end}
}

func (o DateOverride) Date() CivilDate  { return o.date }
func (o DateOverride) Start() TimeOfDay { return o.start }
func (o DateOverride) End() TimeOfDay   { return o.end }

// Unavailable reports whether the override closes its whole day.
func (o DateOverride) Unavailable() bool {
	return o.start.Equal(o.end)
}

// Resolve anchors the override's calendar date directly in loc and applies
// the wall-clock times, returning the concrete interval for that day. A
// fully unavailable override resolves to a zero-length interval; the range
// builder is the place that turns that into "no intervals". An end reading
// earlier than the start crosses local midnight and ends on the next civil
// day; the true instants are reported without day-boundary truncation.
func (o DateOverride) Resolve(loc *time.Location) Interval {
	return wallClockInterval(o.date, o.start, o.end, loc)
}
