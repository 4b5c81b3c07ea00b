package domain

import (
	"fmt"
	"sort"
	"time"
)

// WeeklyRule is a recurring availability slot: the same wall-clock start and
// end applied to a set of weekdays, week after week. The rule itself is
// zone-free; it produces instants only when expanded over a Window.
//
// Start and end are not required to be ordered. Equal start and end encode
// "no availability": such a rule expands to zero-length intervals and the
// range builder drops them. An end reading earlier than the start means the
// slot runs past midnight and ends on the following civil day.
type WeeklyRule struct {
	weekdays map[time.Weekday]bool
	start    TimeOfDay
	end      TimeOfDay
}

// NewWeeklyRule creates a recurring rule. Weekday values outside
// Sunday..Saturday are rejected here, not deferred to expansion time.
func NewWeeklyRule(weekdays []time.Weekday, start, end TimeOfDay) (WeeklyRule, error) {
	set := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return WeeklyRule{}, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(wd))
		}
		set[wd] = true
	}
	return WeeklyRule{weekdays: set, start: start, end: end}, nil
}

// Weekdays returns the covered weekdays in Sunday-first order.
func (r WeeklyRule) Weekdays() []time.Weekday {
	out := make([]time.Weekday, 0, len(r.weekdays))
	for wd := range r.weekdays {
		out = append(out, wd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r WeeklyRule) Start() TimeOfDay { return r.start }
func (r WeeklyRule) End() TimeOfDay   { return r.end }

// AppliesOn reports whether the rule covers the given calendar date's weekday.
func (r WeeklyRule) AppliesOn(d CivilDate) bool {
	return r.weekdays[d.Weekday()]
}

// Expand enumerates every civil date of the window, in the window's location,
// and emits one interval per date the rule covers, in ascending date order.
// Wall-clock times are anchored per date with the zone offset resolved at the
// target local time, so intervals read exactly start/end on a local clock
// even across a DST transition. Pure function of its inputs.
func (r WeeklyRule) Expand(w Window) []Interval {
	var out []Interval
	for _, d := range w.Days() {
		if !r.AppliesOn(d) {
			continue
		}
		out = append(out, wallClockInterval(d, r.start, r.end, w.Location()))
	}
	return out
}

// wallClockInterval anchors a wall-clock pair on one civil date. An end
// reading earlier than the start lands on the following civil day.
func wallClockInterval(d CivilDate, start, end TimeOfDay, loc *time.Location) Interval {
	endDate := d
	if end.Before(start) {
		endDate = d.AddDays(1)
	}
	return Interval{Start: start.On(d, loc), End: end.On(endDate, loc)}
}
