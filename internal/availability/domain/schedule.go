package domain

import (
	sharedDomain "github.com/felixgeelhaar/freebusy/internal/shared/domain"
	"github.com/google/uuid"
)

// ResourceSchedule is the availability definition of one bookable resource
// (a person, a room, a machine): its recurring weekly rules plus the date
// overrides that replace them on specific days. The schedule only describes
// availability; turning it into concrete intervals always happens against an
// explicit Window, never against an ambient "now".
type ResourceSchedule struct {
	sharedDomain.BaseEntity
	resourceID uuid.UUID
	rules      []WeeklyRule
	overrides  []DateOverride
}

// NewResourceSchedule creates an empty schedule for a resource.
func NewResourceSchedule(resourceID uuid.UUID) *ResourceSchedule {
	return &ResourceSchedule{
		BaseEntity: sharedDomain.NewBaseEntity(),
		resourceID: resourceID,
	}
}

func (s *ResourceSchedule) ResourceID() uuid.UUID { return s.resourceID }

// WeeklyRules returns a copy of the recurring rules.
func (s *ResourceSchedule) WeeklyRules() []WeeklyRule {
	out := make([]WeeklyRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Overrides returns a copy of the date overrides.
func (s *ResourceSchedule) Overrides() []DateOverride {
	out := make([]DateOverride, len(s.overrides))
	copy(out, s.overrides)
	return out
}

// AddWeeklyRule appends a recurring rule. A day may carry several disjoint
// slots, so rules for the same weekday coexist.
func (s *ResourceSchedule) AddWeeklyRule(rule WeeklyRule) {
	s.rules = append(s.rules, rule)
	s.Touch()
}

// SetOverride installs an override for its date, replacing any existing
// override on that date.
func (s *ResourceSchedule) SetOverride(o DateOverride) {
	for i, existing := range s.overrides {
		if existing.Date().Equal(o.Date()) {
			s.overrides[i] = o
			s.Touch()
			return
		}
	}
	s.overrides = append(s.overrides, o)
	s.Touch()
}

// RemoveOverride deletes the override for the given date, restoring the
// recurring rules for that day.
func (s *ResourceSchedule) RemoveOverride(date CivilDate) error {
	for i, existing := range s.overrides {
		if existing.Date().Equal(date) {
			s.overrides = append(s.overrides[:i], s.overrides[i+1:]...)
			s.Touch()
			return nil
		}
	}
	return ErrOverrideNotFound
}

// Availability computes the concrete availability intervals of the window.
func (s *ResourceSchedule) Availability(window Window) []Interval {
	return BuildAvailability(s.rules, s.overrides, window)
}

// FreeIntervals computes availability and carves out the busy intervals,
// e.g. existing bookings.
func (s *ResourceSchedule) FreeIntervals(window Window, busy []Interval) []Interval {
	return Subtract(s.Availability(window), busy)
}
