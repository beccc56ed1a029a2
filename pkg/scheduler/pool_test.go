package scheduler

import (
	"testing"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMentor_HoursPrecedence(t *testing.T) {
	m, err := NormalizeMentor("Alice", models.MentorInput{HoursWanted: hoursPtr(8)})
	require.NoError(t, err)
	assert.Equal(t, 8.0, m.HoursWantedPerWeek)

	m, err = NormalizeMentor("Alice", models.MentorInput{HoursWanted: hoursPtr(8), HoursWantedPerWeek: hoursPtr(12)})
	require.NoError(t, err)
	assert.Equal(t, 12.0, m.HoursWantedPerWeek)

	m, err = NormalizeMentor("Alice", models.MentorInput{PreferredWeekdays: []string{"monday", "FRIDAY"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Friday"}, m.PreferredWeekdays)

	_, err = NormalizeMentor(" ", models.MentorInput{})
	assert.ErrorIs(t, err, ErrData)

	_, err = NormalizeMentor("Alice", models.MentorInput{UnavailableWeekdays: []string{"Someday"}})
	assert.ErrorIs(t, err, ErrData)

	_, err = NormalizeMentor("Alice", models.MentorInput{HoursWantedPerWeek: hoursPtr(-1)})
	assert.ErrorIs(t, err, ErrData)
}

func TestNormalizeRoster_Sorted(t *testing.T) {
	mentors, err := NormalizeRoster(map[string]models.MentorInput{"Zed": {}, "Amy": {}, "Max": {}})
	require.NoError(t, err)
	require.Len(t, mentors, 3)
	assert.Equal(t, "Amy", mentors[0].Name)
	assert.Equal(t, "Zed", mentors[2].Name)
}

func TestMentorPool_Eligible(t *testing.T) {
	mentors, err := NormalizeRoster(map[string]models.MentorInput{
		"Alice": {HardDates: []int{5}},
		"Bob":   {UnavailableWeekdays: []string{"Monday"}},
		"Cara":  {},
		"Dev":   {},
	})
	require.NoError(t, err)
	pool, err := NewMentorPool(mentors, 2024, 2)
	require.NoError(t, err)

	day := &models.Day{
		Date: "2024-02-05", Day: 5, Weekday: "Monday",
		Shifts:  []string{models.AShift, models.BShift},
		Hours:   map[string]float64{models.AShift: 4, models.BShift: 3},
		Mentors: map[string]string{models.AShift: "Cara", models.BShift: ""},
	}

	names := func(ms []*models.Mentor) []string {
		var out []string
		for _, m := range ms {
			out = append(out, m.Name)
		}
		return out
	}
	assert.Equal(t, []string{"Dev"}, names(pool.Eligible(day, models.BShift)))
	// the holder of a shift stays eligible for that same shift
	assert.Equal(t, []string{"Cara", "Dev"}, names(pool.Eligible(day, models.AShift)))
}

func TestMentorPool_CopiesRoster(t *testing.T) {
	original := &models.Mentor{Name: "Alice", HoursWantedPerWeek: 7, HoursAssigned: 99, HardDates: []int{1}}
	pool, err := NewMentorPool([]*models.Mentor{original}, 2024, 2)
	require.NoError(t, err)

	m := pool.Mentors()[0]
	assert.Equal(t, 0.0, m.HoursAssigned)
	assert.Equal(t, 28, m.DaysLeft)
	assert.InDelta(t, 29.0, pool.Target(m), 1e-9)

	pool.RecordAssignment(m, 4)
	assert.Equal(t, 4.0, m.HoursAssigned)
	assert.Equal(t, 27, m.DaysLeft)
	assert.Equal(t, 1, m.ShiftsAssigned)
	assert.Equal(t, 99.0, original.HoursAssigned)
	assert.Equal(t, 0, original.DaysLeft)
}

func TestMentorPool_DaysLeft(t *testing.T) {
	mentors, err := NormalizeRoster(map[string]models.MentorInput{
		// February 2024 has 4 Mondays and 4 Tuesdays
		"Bob": {UnavailableWeekdays: []string{"Monday", "Tuesday"}, HardDates: []int{1, 5}},
	})
	require.NoError(t, err)
	pool, err := NewMentorPool(mentors, 2024, 2)
	require.NoError(t, err)
	// 29 days - 8 weekday exclusions - day 1 (Monday 5th already excluded)
	assert.Equal(t, 20, pool.Mentors()[0].DaysLeft)
}
