package domain

import "sort"

// Subtract removes every exclusion from every source interval and returns the
// residual free intervals, in source order. Exclusions may arrive in any
// order and may overlap each other; they are normalized first, so the result
// is identical for every permutation of the exclusion set. A source may
// survive untouched, be split into several residuals, or vanish entirely.
// Residuals of different sources are never merged.
func Subtract(sources, exclusions []Interval) []Interval {
	carve := normalizeExclusions(exclusions)

	var out []Interval
	for _, src := range sources {
		rest := src
		covered := false
		for _, ex := range carve {
			if !ex.End.After(rest.Start) {
				continue
			}
			if !ex.Start.Before(rest.End) {
				break
			}
			if ex.Start.After(rest.Start) {
				out = append(out, Interval{Start: rest.Start, End: ex.Start})
			}
			if ex.End.Before(rest.End) {
				rest = Interval{Start: ex.End, End: rest.End}
				continue
			}
			covered = true
			break
		}
		if !covered {
			out = append(out, rest)
		}
	}
	return out
}

// normalizeExclusions sorts the exclusions by start instant and merges every
// overlapping or touching pair, yielding a disjoint ascending set. Zero-length
// exclusions cover no time and are dropped. The input slice is left untouched.
func normalizeExclusions(exclusions []Interval) []Interval {
	sorted := make([]Interval, 0, len(exclusions))
	for _, ex := range exclusions {
		if ex.IsEmpty() {
			continue
		}
		sorted = append(sorted, ex)
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := sorted[:1]
	for _, ex := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !ex.Start.After(last.End) {
			if ex.End.After(last.End) {
				last.End = ex.End
			}
			continue
		}
		merged = append(merged, ex)
	}
	return merged
}
