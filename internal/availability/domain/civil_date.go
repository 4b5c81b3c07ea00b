package domain

import (
	"fmt"
	"time"
)

// CivilDate is a calendar date with no time zone attached. The same CivilDate
// names the same square on everyone's calendar; it only becomes an instant
// when anchored in a location.
type CivilDate struct {
	year  int
	month time.Month
	day   int
}

// NewCivilDate creates a calendar date. Out-of-range components are
// normalized the way the time library normalizes them (e.g. January 32
// becomes February 1).
func NewCivilDate(year int, month time.Month, day int) CivilDate {
	norm := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return CivilDate{year: norm.Year(), month: norm.Month(), day: norm.Day()}
}

// CivilDateOf returns the calendar date of t as read in t's own location.
// This is the only correct way to capture "the intended day" from an instant
// recorded in a foreign reference zone: the date components are taken in that
// zone's frame and from then on carry no zone at all.
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{year: y, month: m, day: d}
}

func (d CivilDate) Year() int         { return d.year }
func (d CivilDate) Month() time.Month { return d.month }
func (d CivilDate) Day() int          { return d.day }

// Weekday returns the day of week. A calendar date falls on the same weekday
// in every zone, so this is computed zone-independently.
func (d CivilDate) Weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d CivilDate) AddDays(n int) CivilDate {
	return NewCivilDate(d.year, d.month, d.day+n)
}

// Equal reports whether both values name the same calendar date.
func (d CivilDate) Equal(other CivilDate) bool {
	return d == other
}

// Before reports whether d is an earlier calendar date than other.
func (d CivilDate) Before(other CivilDate) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// After reports whether d is a later calendar date than other.
func (d CivilDate) After(other CivilDate) bool {
	return other.Before(d)
}

// String renders the date as YYYY-MM-DD.
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
