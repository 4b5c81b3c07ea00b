package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/freebusy/internal/availability/domain"
	"github.com/google/uuid"
)

// IntervalDTO is a data transfer object for a computed interval. Start and
// End are expressed in the queried time zone.
type IntervalDTO struct {
	Start       time.Time
	End         time.Time
	DurationMin int
}

// GetAvailabilityQuery contains the parameters for computing a resource's
// availability. TimeZone is an IANA identifier; invalid identifiers are
// rejected by the time library when the zone is loaded.
type GetAvailabilityQuery struct {
	ResourceID uuid.UUID
	From       time.Time
	To         time.Time
	TimeZone   string
}

// GetAvailabilityHandler handles the GetAvailabilityQuery.
type GetAvailabilityHandler struct {
	schedules domain.ScheduleRepository
}

// NewGetAvailabilityHandler creates a new GetAvailabilityHandler.
func NewGetAvailabilityHandler(schedules domain.ScheduleRepository) *GetAvailabilityHandler {
	return &GetAvailabilityHandler{schedules: schedules}
}

// Handle executes the GetAvailabilityQuery.
func (h *GetAvailabilityHandler) Handle(ctx context.Context, query GetAvailabilityQuery) ([]IntervalDTO, error) {
	window, err := windowFor(query.From, query.To, query.TimeZone)
	if err != nil {
		return nil, err
	}

	schedule, err := h.schedules.FindByResource(ctx, query.ResourceID)
	if err != nil {
		return nil, err
	}

	return toDTOs(schedule.Availability(window), window.Location()), nil
}

func windowFor(from, to time.Time, timeZone string) (domain.Window, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return domain.Window{}, fmt.Errorf("load time zone %q: %w", timeZone, err)
	}
	return domain.NewWindow(from, to, loc)
}

func toDTOs(intervals []domain.Interval, loc *time.Location) []IntervalDTO {
	dtos := make([]IntervalDTO, len(intervals))
	for i, iv := range intervals {
		dtos[i] = IntervalDTO{
			Start:       iv.Start.In(loc),
			End:         iv.End.In(loc),
			DurationMin: int(iv.Duration().Minutes()),
		}
	}
	return dtos
}
