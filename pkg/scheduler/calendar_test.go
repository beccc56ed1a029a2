package scheduler

import (
	"testing"
	"time"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendar_DayCounts(t *testing.T) {
	cases := []struct {
		year, month, days int
		first             time.Weekday
	}{
		{2024, 2, 29, time.Thursday},
		{2023, 2, 28, time.Wednesday},
		{2100, 2, 28, time.Monday},
		{2020, 1, 31, time.Wednesday},
		{2024, 4, 30, time.Monday},
		{2025, 12, 31, time.Monday},
	}
	seasons := yearRound(standardHours())

	for _, tc := range cases {
		days, err := BuildCalendar(tc.year, tc.month, nil, seasons)
		require.NoError(t, err)
		require.Len(t, days, tc.days, "%04d-%02d", tc.year, tc.month)
		assert.Equal(t, tc.first.String(), days[0].Weekday)
		for i, d := range days {
			assert.Equal(t, i+1, d.Day)
			assert.Equal(t, "winter", d.Season)
		}
	}
}

func TestBuildCalendar_LeapDayWeekday(t *testing.T) {
	days, err := BuildCalendar(2024, 2, nil, yearRound(standardHours()))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", days[28].Date)
	assert.Equal(t, "Thursday", days[28].Weekday)
}

func TestBuildCalendar_Bounds(t *testing.T) {
	seasons := yearRound(standardHours())
	for _, tc := range []struct{ year, month int }{{2019, 5}, {2101, 1}, {2024, 0}, {2024, 13}} {
		_, err := BuildCalendar(tc.year, tc.month, nil, seasons)
		assert.ErrorIs(t, err, ErrConfiguration, "%d-%d", tc.year, tc.month)
	}
}

func TestBuildCalendar_HalfOpenSeasons(t *testing.T) {
	table := yearRound(standardHours())["winter"].ShiftHours
	seasons := map[string]models.SeasonInfo{
		"spring": {DateRange: models.DateRange{Start: "03-01", End: "06-15"}, ShiftHours: table},
		"summer": {DateRange: models.DateRange{Start: "06-15", End: "09-01"}, ShiftHours: table},
		"winter": {DateRange: models.DateRange{Start: "09-01", End: "03-01"}, ShiftHours: table},
	}

	days, err := BuildCalendar(2024, 6, nil, seasons)
	require.NoError(t, err)
	assert.Equal(t, "spring", days[13].Season)
	assert.Equal(t, "summer", days[14].Season)

	days, err = BuildCalendar(2025, 1, nil, seasons)
	require.NoError(t, err)
	assert.Equal(t, "winter", days[0].Season)
}

func TestBuildCalendar_AbsoluteRanges(t *testing.T) {
	table := yearRound(standardHours())["winter"].ShiftHours
	seasons := map[string]models.SeasonInfo{
		"term":  {DateRange: models.DateRange{Start: "2024-01-01", End: "2024-05-10"}, ShiftHours: table},
		"break": {DateRange: models.DateRange{Start: "2024-05-10", End: "2024-06-01"}, ShiftHours: table},
	}
	days, err := BuildCalendar(2024, 5, nil, seasons)
	require.NoError(t, err)
	assert.Equal(t, "term", days[8].Season)
	assert.Equal(t, "break", days[9].Season)

	_, err = BuildCalendar(2024, 6, nil, seasons)
	assert.ErrorIs(t, err, ErrData)
}

func TestBuildCalendar_SeasonErrors(t *testing.T) {
	table := yearRound(standardHours())["winter"].ShiftHours

	gap := map[string]models.SeasonInfo{
		"summer": {DateRange: models.DateRange{Start: "06-01", End: "09-01"}, ShiftHours: table},
	}
	_, err := BuildCalendar(2024, 10, nil, gap)
	assert.ErrorIs(t, err, ErrData)

	overlap := map[string]models.SeasonInfo{
		"a": {DateRange: models.DateRange{Start: "01-01", End: "07-01"}, ShiftHours: table},
		"b": {DateRange: models.DateRange{Start: "06-01", End: "01-01"}, ShiftHours: table},
	}
	_, err = BuildCalendar(2024, 6, nil, overlap)
	assert.ErrorIs(t, err, ErrData)

	bad := map[string]models.SeasonInfo{
		"a": {DateRange: models.DateRange{Start: "2024-13-01", End: "2025-01-01"}, ShiftHours: table},
	}
	_, err = BuildCalendar(2024, 6, nil, bad)
	assert.ErrorIs(t, err, ErrData)
}

func TestBuildCalendar_Holidays(t *testing.T) {
	seasons := yearRound(standardHours())
	days, err := BuildCalendar(2024, 12, []int{25, 31}, seasons)
	require.NoError(t, err)
	assert.True(t, days[24].Holiday)
	assert.True(t, days[30].Holiday)
	assert.False(t, days[23].Holiday)

	_, err = BuildCalendar(2024, 2, []int{30}, seasons)
	assert.ErrorIs(t, err, ErrData)
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday(" saturday ")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, wd)

	_, err = ParseWeekday("Funday")
	assert.ErrorIs(t, err, ErrData)
}
