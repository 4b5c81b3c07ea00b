package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/felixgeelhaar/freebusy/internal/availability/domain"
	"github.com/google/uuid"
)

// scheduleDocument is the JSON shape of a schedule file. All string parsing
// happens here, at the consumer boundary; the core only ever sees structured
// values.
type scheduleDocument struct {
	ResourceID string            `json:"resourceId,omitempty"`
	Weekly     []weeklyRuleDoc   `json:"weekly"`
	Overrides  []dateOverrideDoc `json:"overrides,omitempty"`
}

type weeklyRuleDoc struct {
	// Weekdays are 0=Sunday .. 6=Saturday.
	Weekdays []int  `json:"weekdays"`
	Start    string `json:"start"` // HH:MM
	End      string `json:"end"`   // HH:MM
}

type dateOverrideDoc struct {
	Date  string `json:"date"`  // YYYY-MM-DD
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

// loadSchedule reads a schedule document and builds the domain schedule.
func loadSchedule(path string) (*domain.ResourceSchedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule document: %w", err)
	}

	var doc scheduleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode schedule document: %w", err)
	}

	return buildSchedule(doc)
}

func buildSchedule(doc scheduleDocument) (*domain.ResourceSchedule, error) {
	resourceID := uuid.New()
	if doc.ResourceID != "" {
		parsed, err := uuid.Parse(doc.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("invalid resource id %q: %w", doc.ResourceID, err)
		}
		resourceID = parsed
	}

	schedule := domain.NewResourceSchedule(resourceID)

	for i, w := range doc.Weekly {
		start, err := parseWallClock(w.Start)
		if err != nil {
			return nil, fmt.Errorf("weekly rule %d: %w", i, err)
		}
		end, err := parseWallClock(w.End)
		if err != nil {
			return nil, fmt.Errorf("weekly rule %d: %w", i, err)
		}
		weekdays := make([]time.Weekday, len(w.Weekdays))
		for j, wd := range w.Weekdays {
			weekdays[j] = time.Weekday(wd)
		}
		rule, err := domain.NewWeeklyRule(weekdays, start, end)
		if err != nil {
			return nil, fmt.Errorf("weekly rule %d: %w", i, err)
		}
		schedule.AddWeeklyRule(rule)
	}

	for i, o := range doc.Overrides {
		date, err := parseCivilDate(o.Date)
		if err != nil {
			return nil, fmt.Errorf("override %d: %w", i, err)
		}
		start, err := parseWallClock(o.Start)
		if err != nil {
			return nil, fmt.Errorf("override %d: %w", i, err)
		}
		end, err := parseWallClock(o.End)
		if err != nil {
			return nil, fmt.Errorf("override %d: %w", i, err)
		}
		schedule.SetOverride(domain.NewDateOverride(date, start, end))
	}

	return schedule, nil
}

func parseWallClock(s string) (domain.TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return domain.TimeOfDay{}, fmt.Errorf("invalid wall-clock time %q, use HH:MM: %w", s, err)
	}
	return domain.NewTimeOfDay(parsed.Hour(), parsed.Minute())
}

func parseCivilDate(s string) (domain.CivilDate, error) {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return domain.CivilDate{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", s, err)
	}
	return domain.CivilDateOf(parsed), nil
}

// parseInstant accepts RFC 3339 or a bare date, the latter read as local
// midnight in loc.
func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q, use RFC 3339 or YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}
