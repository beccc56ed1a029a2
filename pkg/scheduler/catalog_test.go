package scheduler

import (
	"testing"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftCatalog_NormalDay(t *testing.T) {
	seasons := yearRound(standardHours())
	delete(seasons["winter"].ShiftHours["Sunday"], models.BShift)

	c, err := NewShiftCatalog(seasons, models.HolidayConfig{})
	require.NoError(t, err)

	monday := &models.Day{Date: "2024-02-05", Day: 5, Weekday: "Monday", Season: "winter"}
	require.NoError(t, c.Resolve(monday))
	assert.Equal(t, []string{models.AShift, models.BShift, models.CShift}, monday.Shifts)
	assert.Equal(t, 9.5, monday.TotalHours)
	assert.Equal(t, 0.0, monday.AssignedHours)

	sunday := &models.Day{Date: "2024-02-04", Day: 4, Weekday: "Sunday", Season: "winter"}
	require.NoError(t, c.Resolve(sunday))
	assert.Equal(t, []string{models.AShift, models.CShift}, sunday.Shifts)
	assert.Equal(t, 6.0, sunday.TotalHours)
}

func TestShiftCatalog_HolidayOverride(t *testing.T) {
	holiday := models.HolidayConfig{ShiftHours: map[string]float64{models.HolidayAShift: 6, models.HolidayBShift: 5}}
	c, err := NewShiftCatalog(yearRound(standardHours()), holiday)
	require.NoError(t, err)

	day := &models.Day{Date: "2024-12-25", Day: 25, Weekday: "Wednesday", Season: "winter", Holiday: true}
	require.NoError(t, c.Resolve(day))
	assert.Equal(t, []string{models.HolidayAShift, models.HolidayBShift}, day.Shifts)
	assert.NotContains(t, day.Hours, models.AShift)
	assert.Equal(t, 11.0, day.TotalHours)
}

func TestShiftCatalog_MissingWeekday(t *testing.T) {
	seasons := yearRound(standardHours())
	delete(seasons["winter"].ShiftHours, "Wednesday")

	c, err := NewShiftCatalog(seasons, models.HolidayConfig{})
	require.NoError(t, err)

	err = c.Resolve(&models.Day{Date: "2024-02-07", Day: 7, Weekday: "Wednesday", Season: "winter"})
	assert.ErrorIs(t, err, ErrData)

	// a holiday does not need the weekday row
	err = c.Resolve(&models.Day{Date: "2024-02-07", Day: 7, Weekday: "Wednesday", Season: "winter", Holiday: true})
	assert.NoError(t, err)
}

func TestShiftCatalog_InvalidTables(t *testing.T) {
	seasons := yearRound(map[string]float64{"d_shift": 2})
	_, err := NewShiftCatalog(seasons, models.HolidayConfig{})
	assert.ErrorIs(t, err, ErrData)

	seasons = yearRound(map[string]float64{models.AShift: -1})
	_, err = NewShiftCatalog(seasons, models.HolidayConfig{})
	assert.ErrorIs(t, err, ErrData)

	_, err = NewShiftCatalog(yearRound(standardHours()), models.HolidayConfig{ShiftHours: map[string]float64{models.AShift: 3}})
	assert.ErrorIs(t, err, ErrData)
}
