package scheduler

import "github.com/arnavshah/mentor-scheduler-api/pkg/models"

var allWeekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func hoursPtr(v float64) *float64 { return &v }

// yearRound builds a single season covering every date with the same
// shift hours on every weekday.
func yearRound(hours map[string]float64) map[string]models.SeasonInfo {
	table := make(map[string]map[string]float64, len(allWeekdays))
	for _, wd := range allWeekdays {
		row := make(map[string]float64, len(hours))
		for k, v := range hours {
			row[k] = v
		}
		table[wd] = row
	}
	return map[string]models.SeasonInfo{
		"winter": {
			DateRange:  models.DateRange{Start: "01-01", End: "01-01"},
			ShiftHours: table,
		},
	}
}

func standardHours() map[string]float64 {
	return map[string]float64{models.AShift: 4, models.BShift: 3.5, models.CShift: 2}
}

func sampleInput() models.ScheduleInput {
	return models.ScheduleInput{
		Year:              2024,
		Month:             3,
		SeasonalShiftInfo: yearRound(standardHours()),
		MentorRoster: map[string]models.MentorInput{
			"Alice": {HoursWantedPerWeek: hoursPtr(10), PreferredWeekdays: []string{"Monday"}, HardDates: []int{14}},
			"Bob":   {HoursWantedPerWeek: hoursPtr(12), UnavailableWeekdays: []string{"Friday", "Saturday"}},
			"Cara":  {HoursWanted: hoursPtr(8), PreferredWeekdays: []string{"Saturday", "Sunday"}},
			"Dev":   {HoursWantedPerWeek: hoursPtr(6), HardDates: []int{1, 2, 3}, UnavailableWeekdays: []string{"tuesday"}},
		},
		HolidayConfig: models.HolidayConfig{
			ShiftHours: map[string]float64{models.HolidayAShift: 6, models.HolidayBShift: 5},
			Dates:      []int{17},
		},
	}
}
