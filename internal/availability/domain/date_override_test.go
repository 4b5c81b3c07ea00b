package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/freebusy/internal/availability/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOverride_Resolve_InQueryZone(t *testing.T) {
	ny := newYork(t)
	o := domain.NewDateOverride(
		domain.NewCivilDate(2023, time.June, 13),
		domain.MustTimeOfDay(22, 0), domain.MustTimeOfDay(23, 0),
	)

	iv := o.Resolve(ny)

	// 22:00 EDT on June 13 is 02:00 UTC on June 14.
	assert.WithinDuration(t, time.Date(2023, time.June, 14, 2, 0, 0, 0, time.UTC), iv.Start, 0)
	assert.WithinDuration(t, time.Date(2023, time.June, 14, 3, 0, 0, 0, time.UTC), iv.End, 0)
	assert.Equal(t, 13, iv.Start.In(ny).Day(), "local reading stays on the override's day")
}

func TestNewDateOverrideAt_KeepsCalendarDayAcrossZones(t *testing.T) {
	brussels, err := time.LoadLocation("Europe/Brussels")
	require.NoError(t, err)
	honolulu, err := time.LoadLocation("Pacific/Honolulu")
	require.NoError(t, err)

	// The override was captured as midnight May 10 in Brussels. At that
	// instant Honolulu still shows May 9; re-projecting the instant would
	// shift the override onto the wrong day. The calendar day must survive.
	anchor := time.Date(2024, time.May, 10, 0, 0, 0, 0, brussels)
	o := domain.NewDateOverrideAt(anchor, domain.MustTimeOfDay(9, 0), domain.MustTimeOfDay(12, 0))

	require.Equal(t, domain.NewCivilDate(2024, time.May, 10), o.Date())

	iv := o.Resolve(honolulu)
	local := iv.Start.In(honolulu)
	assert.Equal(t, 10, local.Day())
	assert.Equal(t, 9, local.Hour())
	// Honolulu is UTC-10 year round.
	assert.WithinDuration(t, time.Date(2024, time.May, 10, 19, 0, 0, 0, time.UTC), iv.Start, 0)
}

func TestNewDateOverrideAt_UTCAnchor(t *testing.T) {
	ny := newYork(t)

	// Stored as midnight UTC, queried in New York: the fields still mean
	// calendar day June 13.
	anchor := time.Date(2023, time.June, 13, 0, 0, 0, 0, time.UTC)
	o := domain.NewDateOverrideAt(anchor, domain.MustTimeOfDay(22, 0), domain.MustTimeOfDay(23, 0))

	iv := o.Resolve(ny)
	assert.WithinDuration(t, time.Date(2023, time.June, 14, 2, 0, 0, 0, time.UTC), iv.Start, 0)
	assert.WithinDuration(t, time.Date(2023, time.June, 14, 3, 0, 0, 0, time.UTC), iv.End, 0)
}

func TestDateOverride_Unavailable(t *testing.T) {
	noon := domain.MustTimeOfDay(12, 0)
	o := domain.NewDateOverride(domain.NewCivilDate(2024, time.June, 3), noon, noon)

	assert.True(t, o.Unavailable())
	assert.True(t, o.Resolve(time.UTC).IsEmpty(), "resolves to a zero-length interval; the builder drops it")

	open := domain.NewDateOverride(domain.NewCivilDate(2024, time.June, 3), noon, domain.MustTimeOfDay(14, 0))
	assert.False(t, open.Unavailable())
}

func TestDateOverride_Resolve_CrossesLocalMidnight(t *testing.T) {
	ny := newYork(t)
	o := domain.NewDateOverride(
		domain.NewCivilDate(2024, time.June, 3),
		domain.MustTimeOfDay(23, 0), domain.MustTimeOfDay(1, 30),
	)

	iv := o.Resolve(ny)

	assert.Equal(t, 3, iv.Start.In(ny).Day())
	assert.Equal(t, 4, iv.End.In(ny).Day(), "true end instant on the next civil day, untruncated")
	assert.Equal(t, 150*time.Minute, iv.Duration())
}
