package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/freebusy/internal/availability/domain"
	"github.com/google/uuid"
)

// BusyInterval is a caller-supplied blocked span, typically an existing
// booking. Order is insignificant and overlaps are allowed.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// FindFreeIntervalsQuery contains the parameters for computing the free
// portions of a resource's availability after removing busy intervals.
type FindFreeIntervalsQuery struct {
	ResourceID uuid.UUID
	From       time.Time
	To         time.Time
	TimeZone   string
	Busy       []BusyInterval
}

// FindFreeIntervalsHandler handles the FindFreeIntervalsQuery.
type FindFreeIntervalsHandler struct {
	schedules domain.ScheduleRepository
}

// NewFindFreeIntervalsHandler creates a new FindFreeIntervalsHandler.
func NewFindFreeIntervalsHandler(schedules domain.ScheduleRepository) *FindFreeIntervalsHandler {
	return &FindFreeIntervalsHandler{schedules: schedules}
}

// Handle executes the FindFreeIntervalsQuery.
func (h *FindFreeIntervalsHandler) Handle(ctx context.Context, query FindFreeIntervalsQuery) ([]IntervalDTO, error) {
	window, err := windowFor(query.From, query.To, query.TimeZone)
	if err != nil {
		return nil, err
	}

	schedule, err := h.schedules.FindByResource(ctx, query.ResourceID)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, len(query.Busy))
	for i, b := range query.Busy {
		busy[i] = domain.Interval{Start: b.Start, End: b.End}
	}

	return toDTOs(schedule.FreeIntervals(window, busy), window.Location()), nil
}
