package domain

import "sort"

// BuildAvailability resolves recurring rules and date overrides into the
// concrete availability intervals of a window.
//
// Precedence per civil day: a date with an override contributes only the
// override's resolved interval; recurring output for that day is discarded
// entirely. Days without an override contribute one interval per rule
// covering that weekday; a day may carry several disjoint slots and
// overlapping slots from distinct rules are left unmerged for the caller.
//
// Equal start and end wall times encode "unavailable" for overrides and
// recurring rules alike: both contribute nothing at all on such a day, not a
// zero-length interval.
//
// Intervals that already ended when the window opened are not reported.
// Apart from that, instants are never clipped: a slot on the window's last
// day may extend past the window's closing instant, and an override may run
// past local midnight.
//
// When several overrides name the same date, the last one wins. Output is
// sorted ascending by start instant.
func BuildAvailability(rules []WeeklyRule, overrides []DateOverride, window Window) []Interval {
	byDate := make(map[CivilDate]DateOverride, len(overrides))
	for _, o := range overrides {
		byDate[o.Date()] = o
	}

	var out []Interval
	for _, day := range window.Days() {
		if o, ok := byDate[day]; ok {
			if o.Unavailable() {
				continue
			}
			out = appendLive(out, o.Resolve(window.Location()), window)
			continue
		}
		for _, rule := range rules {
			if !rule.AppliesOn(day) {
				continue
			}
			out = appendLive(out, wallClockInterval(day, rule.Start(), rule.End(), window.Location()), window)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// appendLive keeps iv unless it covers no time or ended at or before the
// window's opening instant. Zero-length intervals are the "unavailable"
// encoding resolved, never availability. The first enumerated day is the
// civil date of From in the window's location, which can begin hours before
// From itself; slots on that day that are already over belong to the past,
// not to the query.
func appendLive(out []Interval, iv Interval, window Window) []Interval {
	if iv.IsEmpty() || !iv.End.After(window.From()) {
		return out
	}
	return append(out, iv)
}
