package domain

import (
	"fmt"
	"time"
)

// Window is an availability query range: two instants plus the location whose
// calendar days drive expansion. The boundary days are the civil dates of
// From and To as read in that location, both inclusive.
type Window struct {
	from time.Time
	to   time.Time
	loc  *time.Location
}

// NewWindow creates a query window. A window whose from instant is after its
// to instant is a contract violation and is rejected up front rather than
// yielding an empty result.
func NewWindow(from, to time.Time, loc *time.Location) (Window, error) {
	if loc == nil {
		return Window{}, ErrMissingLocation
	}
	if from.After(to) {
		return Window{}, fmt.Errorf("%w: %s > %s", ErrInvalidWindow, from, to)
	}
	return Window{from: from, to: to, loc: loc}, nil
}

func (w Window) From() time.Time          { return w.from }
func (w Window) To() time.Time            { return w.to }
func (w Window) Location() *time.Location { return w.loc }

// FirstDay returns the civil date of the window's opening instant in the
// window's own location.
func (w Window) FirstDay() CivilDate {
	return CivilDateOf(w.from.In(w.loc))
}

// LastDay returns the civil date of the window's closing instant in the
// window's own location.
func (w Window) LastDay() CivilDate {
	return CivilDateOf(w.to.In(w.loc))
}

// Days enumerates every civil date from FirstDay through LastDay inclusive.
func (w Window) Days() []CivilDate {
	var days []CivilDate
	last := w.LastDay()
	for d := w.FirstDay(); !d.After(last); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
