package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock hour/minute pair. It carries no date and no time
// zone; it only becomes an instant when combined with a CivilDate and a
// location via On.
type TimeOfDay struct {
	hour   int
	minute int
}

// NewTimeOfDay creates a wall-clock time. Hours run 0-23, minutes 0-59.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// MustTimeOfDay is NewTimeOfDay for literals; it panics on invalid input.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

// Equal reports whether both wall-clock readings match.
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.hour == other.hour && t.minute == other.minute
}

// Before reports whether t reads earlier on a clock face than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.hour != other.hour {
		return t.hour < other.hour
	}
	return t.minute < other.minute
}

// On returns the instant whose local reading in loc is exactly this
// wall-clock time on the given civil date. The zone offset is resolved by the
// time library at that local moment, so a DST transition earlier in the day
// cannot shift the reading. A reading inside a spring-forward gap resolves
// with the pre-transition offset and lands before the gap, and a reading
// duplicated by a fall-back transition resolves to its first occurrence;
// both follow time.Date and are defined behavior.
func (t TimeOfDay) On(d CivilDate, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.hour, t.minute, 0, 0, loc)
}

// String renders the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
