package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/freebusy/internal/availability/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCivilDate_Normalizes(t *testing.T) {
	d := domain.NewCivilDate(2024, time.January, 32)

	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 1, d.Day())
}

func TestCivilDateOf_ReadsDateInInstantsOwnZone(t *testing.T) {
	brussels, err := time.LoadLocation("Europe/Brussels")
	require.NoError(t, err)
	honolulu, err := time.LoadLocation("Pacific/Honolulu")
	require.NoError(t, err)

	// Midnight May 10 in Brussels is still May 9 in Honolulu. The captured
	// calendar date must be the one the instant's own zone names.
	anchor := time.Date(2024, time.May, 10, 0, 0, 0, 0, brussels)

	assert.Equal(t, domain.NewCivilDate(2024, time.May, 10), domain.CivilDateOf(anchor))
	assert.Equal(t, domain.NewCivilDate(2024, time.May, 9), domain.CivilDateOf(anchor.In(honolulu)))
}

func TestCivilDate_Weekday(t *testing.T) {
	// 2024-03-10 is a Sunday in every zone.
	assert.Equal(t, time.Sunday, domain.NewCivilDate(2024, time.March, 10).Weekday())
	assert.Equal(t, time.Monday, domain.NewCivilDate(2024, time.March, 11).Weekday())
}

func TestCivilDate_AddDays(t *testing.T) {
	d := domain.NewCivilDate(2024, time.December, 31)

	assert.Equal(t, domain.NewCivilDate(2025, time.January, 1), d.AddDays(1))
	assert.Equal(t, domain.NewCivilDate(2024, time.December, 1), d.AddDays(-30))
	assert.Equal(t, d, d.AddDays(0))
}

func TestCivilDate_Ordering(t *testing.T) {
	a := domain.NewCivilDate(2024, time.June, 13)
	b := domain.NewCivilDate(2024, time.June, 14)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.True(t, a.Equal(domain.NewCivilDate(2024, time.June, 13)))
}

func TestCivilDate_String(t *testing.T) {
	assert.Equal(t, "2024-06-03", domain.NewCivilDate(2024, time.June, 3).String())
}
