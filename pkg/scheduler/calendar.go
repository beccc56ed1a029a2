package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
)

// Supported year range for generation
const (
	MinYear = 2020
	MaxYear = 2100
)

const (
	dateLayout      = "2006-01-02"
	recurringLayout = "01-02"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves a case-insensitive weekday name
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown weekday %q", ErrData, name)
	}
	return wd, nil
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeeksInMonth returns the month length in (fractional) weeks
func WeeksInMonth(year, month int) float64 {
	return float64(DaysInMonth(year, month)) / 7
}

// checkMonth validates the year and month bounds
func checkMonth(year, month int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d outside %d-%d", ErrConfiguration, year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d outside 1-12", ErrConfiguration, month)
	}
	return nil
}

type seasonRange struct {
	name      string
	recurring bool
	start     time.Time
	end       time.Time
	startMD   int
	endMD     int
}

func monthDay(t time.Time) int {
	return int(t.Month())*100 + t.Day()
}

func parseSeasonRange(name string, r models.DateRange) (seasonRange, error) {
	sr := seasonRange{name: name}
	if len(r.Start) == len(recurringLayout) && len(r.End) == len(recurringLayout) {
		start, err := time.Parse(recurringLayout, r.Start)
		if err != nil {
			return sr, fmt.Errorf("%w: season %q start: %v", ErrData, name, err)
		}
		end, err := time.Parse(recurringLayout, r.End)
		if err != nil {
			return sr, fmt.Errorf("%w: season %q end: %v", ErrData, name, err)
		}
		sr.recurring = true
		sr.startMD = monthDay(start)
		sr.endMD = monthDay(end)
		return sr, nil
	}

	start, err := time.Parse(dateLayout, r.Start)
	if err != nil {
		return sr, fmt.Errorf("%w: season %q start: %v", ErrData, name, err)
	}
	end, err := time.Parse(dateLayout, r.End)
	if err != nil {
		return sr, fmt.Errorf("%w: season %q end: %v", ErrData, name, err)
	}
	if !start.Before(end) {
		return sr, fmt.Errorf("%w: season %q range is empty", ErrData, name)
	}
	sr.start = start
	sr.end = end
	return sr, nil
}

// contains reports whether t lies in [start, end). Recurring ranges whose
// end is not after their start wrap across the new year.
func (r seasonRange) contains(t time.Time) bool {
	if !r.recurring {
		return !t.Before(r.start) && t.Before(r.end)
	}
	md := monthDay(t)
	if r.startMD < r.endMD {
		return md >= r.startMD && md < r.endMD
	}
	return md >= r.startMD || md < r.endMD
}

func parseSeasonRanges(seasons map[string]models.SeasonInfo) ([]seasonRange, error) {
	names := make([]string, 0, len(seasons))
	for name := range seasons {
		names = append(names, name)
	}
	sort.Strings(names)

	ranges := make([]seasonRange, 0, len(names))
	for _, name := range names {
		sr, err := parseSeasonRange(name, seasons[name].DateRange)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, sr)
	}
	return ranges, nil
}

// BuildCalendar enumerates every date of the month with its weekday,
// season and holiday flag. Shifts are left for the catalog to resolve.
func BuildCalendar(year, month int, holidays []int, seasons map[string]models.SeasonInfo) ([]*models.Day, error) {
	if err := checkMonth(year, month); err != nil {
		return nil, err
	}

	n := DaysInMonth(year, month)
	holidaySet := make(map[int]bool, len(holidays))
	for _, d := range holidays {
		if d < 1 || d > n {
			return nil, fmt.Errorf("%w: holiday date %d outside %04d-%02d", ErrData, d, year, month)
		}
		holidaySet[d] = true
	}

	ranges, err := parseSeasonRanges(seasons)
	if err != nil {
		return nil, err
	}

	days := make([]*models.Day, 0, n)
	for d := 1; d <= n; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)

		season := ""
		for _, r := range ranges {
			if !r.contains(date) {
				continue
			}
			if season != "" {
				return nil, fmt.Errorf("%w: %s falls in seasons %q and %q", ErrData, date.Format(dateLayout), season, r.name)
			}
			season = r.name
		}
		if season == "" {
			return nil, fmt.Errorf("%w: %s falls in no season range", ErrData, date.Format(dateLayout))
		}

		days = append(days, &models.Day{
			Date:    date.Format(dateLayout),
			Day:     d,
			Weekday: date.Weekday().String(),
			Season:  season,
			Holiday: holidaySet[d],
			Hours:   map[string]float64{},
			Mentors: map[string]string{},
		})
	}
	return days, nil
}
