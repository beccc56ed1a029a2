package scheduler

import (
	"fmt"
	"time"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
)

// ShiftCatalog resolves which shifts are open on a day and their hours
type ShiftCatalog struct {
	seasons map[string]map[time.Weekday]map[string]float64
	holiday map[string]float64
}

func checkHours(owner, shift string, hours float64, allowed []string) error {
	known := false
	for _, s := range allowed {
		if s == shift {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %s: unknown shift %q", ErrData, owner, shift)
	}
	if hours < 0 {
		return fmt.Errorf("%w: %s: %s has negative hours %v", ErrData, owner, shift, hours)
	}
	return nil
}

// NewShiftCatalog normalises the seasonal and holiday hour tables
func NewShiftCatalog(seasons map[string]models.SeasonInfo, holiday models.HolidayConfig) (*ShiftCatalog, error) {
	c := &ShiftCatalog{
		seasons: make(map[string]map[time.Weekday]map[string]float64, len(seasons)),
		holiday: make(map[string]float64, len(holiday.ShiftHours)),
	}

	for season, info := range seasons {
		table := make(map[time.Weekday]map[string]float64, len(info.ShiftHours))
		for dayName, shifts := range info.ShiftHours {
			wd, err := ParseWeekday(dayName)
			if err != nil {
				return nil, fmt.Errorf("season %q: %w", season, err)
			}
			row := make(map[string]float64, len(shifts))
			for shift, hours := range shifts {
				if err := checkHours("season "+season, shift, hours, models.NormalShifts); err != nil {
					return nil, err
				}
				row[shift] = hours
			}
			table[wd] = row
		}
		c.seasons[season] = table
	}

	for shift, hours := range holiday.ShiftHours {
		if err := checkHours("holiday config", shift, hours, models.HolidayShifts); err != nil {
			return nil, err
		}
		c.holiday[shift] = hours
	}
	return c, nil
}

// Resolve fills in the open shifts, their hours and the day's total hours.
// Holiday shifts replace the normal shifts entirely.
func (c *ShiftCatalog) Resolve(day *models.Day) error {
	order := models.NormalShifts
	var row map[string]float64

	if day.Holiday {
		order = models.HolidayShifts
		row = c.holiday
	} else {
		table, ok := c.seasons[day.Season]
		if !ok {
			return fmt.Errorf("%w: %s: unknown season %q", ErrData, day.Date, day.Season)
		}
		wd, err := ParseWeekday(day.Weekday)
		if err != nil {
			return err
		}
		row, ok = table[wd]
		if !ok {
			return fmt.Errorf("%w: season %q has no shift hours for %s", ErrData, day.Season, day.Weekday)
		}
	}

	day.Shifts = make([]string, 0, len(order))
	day.Hours = make(map[string]float64, len(order))
	if day.Mentors == nil {
		day.Mentors = make(map[string]string, len(order))
	}
	for _, shift := range order {
		hours, ok := row[shift]
		if !ok {
			continue
		}
		day.Shifts = append(day.Shifts, shift)
		day.Hours[shift] = hours
		day.Mentors[shift] = ""
	}
	day.Recalculate()
	return nil
}
