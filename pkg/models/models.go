package models

import "sync"

// Shift names
const (
	AShift        = "a_shift"
	BShift        = "b_shift"
	CShift        = "c_shift"
	HolidayAShift = "holiday_a_shift"
	HolidayBShift = "holiday_b_shift"
)

// NormalShifts is the canonical order of shifts on a regular day
var NormalShifts = []string{AShift, BShift, CShift}

// HolidayShifts is the canonical order of shifts on a holiday
var HolidayShifts = []string{HolidayAShift, HolidayBShift}

// MentorInput is a roster entry as it arrives from clients or storage.
// HoursWanted is the legacy name for HoursWantedPerWeek.
type MentorInput struct {
	UnavailableWeekdays []string `json:"unavailable_weekdays" yaml:"unavailable_weekdays"`
	PreferredWeekdays   []string `json:"preferred_weekdays" yaml:"preferred_weekdays"`
	HardDates           []int    `json:"hard_dates" yaml:"hard_dates"`
	HoursWantedPerWeek  *float64 `json:"hours_wanted_per_week,omitempty" yaml:"hours_wanted_per_week,omitempty"`
	HoursWanted         *float64 `json:"hours_wanted,omitempty" yaml:"hours_wanted,omitempty"`
	AutoFill            bool     `json:"auto_fill" yaml:"auto_fill"`
	ShowOnCalendar      bool     `json:"show_on_calendar" yaml:"show_on_calendar"`
}

// Mentor is the canonical mentor record. HoursAssigned, DaysLeft and
// ShiftsAssigned are only meaningful on the copy returned with a schedule.
type Mentor struct {
	Name                string   `json:"name" yaml:"name"`
	HoursWantedPerWeek  float64  `json:"hours_wanted_per_week" yaml:"hours_wanted_per_week"`
	HardDates           []int    `json:"hard_dates" yaml:"hard_dates"`
	UnavailableWeekdays []string `json:"unavailable_weekdays" yaml:"unavailable_weekdays"`
	PreferredWeekdays   []string `json:"preferred_weekdays" yaml:"preferred_weekdays"`
	AutoFill            bool     `json:"auto_fill" yaml:"auto_fill"`
	ShowOnCalendar      bool     `json:"show_on_calendar" yaml:"show_on_calendar"`
	HoursAssigned       float64  `json:"hours_assigned" yaml:"hours_assigned"`
	DaysLeft            int      `json:"days_left" yaml:"days_left"`
	ShiftsAssigned      int      `json:"shifts_assigned" yaml:"shifts_assigned"`
}

// DateRange is a half-open [Start, End) range, either "2006-01-02" or
// recurring "01-02".
type DateRange struct {
	Start string `json:"start" yaml:"start" koanf:"start"`
	End   string `json:"end" yaml:"end" koanf:"end"`
}

// SeasonInfo holds a season's date range and its weekday -> shift -> hours table
type SeasonInfo struct {
	DateRange  DateRange                     `json:"date_range" yaml:"date_range" koanf:"date_range"`
	ShiftHours map[string]map[string]float64 `json:"shift_hours" yaml:"shift_hours" koanf:"shift_hours"`
}

// HolidayConfig lists the holiday days of a month and the holiday shift hours
type HolidayConfig struct {
	ShiftHours map[string]float64 `json:"shift_hours" yaml:"shift_hours" koanf:"shift_hours"`
	Dates      []int              `json:"dates" yaml:"dates" koanf:"dates"`
}

// ScheduleInput is the data structure for the scheduling endpoint
type ScheduleInput struct {
	Year              int                    `json:"year" yaml:"year"`
	Month             int                    `json:"month" yaml:"month"`
	PayPeriodLength   int                    `json:"pay_period_length,omitempty" yaml:"pay_period_length,omitempty"`
	SeasonalShiftInfo map[string]SeasonInfo  `json:"seasonal_shift_info" yaml:"seasonal_shift_info"`
	MentorRoster      map[string]MentorInput `json:"mentor_roster" yaml:"mentor_roster"`
	HolidayConfig     HolidayConfig          `json:"holiday_config" yaml:"holiday_config"`
}

// Day is one calendar date of a generated schedule. An empty string in
// Mentors means the shift is unassigned.
type Day struct {
	Date          string             `json:"date" yaml:"date"`
	Day           int                `json:"day" yaml:"day"`
	Weekday       string             `json:"weekday" yaml:"weekday"`
	Season        string             `json:"season" yaml:"season"`
	Holiday       bool               `json:"holiday" yaml:"holiday"`
	Shifts        []string           `json:"shifts" yaml:"shifts"`
	Hours         map[string]float64 `json:"hours" yaml:"hours"`
	Mentors       map[string]string  `json:"mentors" yaml:"mentors"`
	TotalHours    float64            `json:"total_hours" yaml:"total_hours"`
	AssignedHours float64            `json:"assigned_hours" yaml:"assigned_hours"`
}

// Assignee returns the mentor holding shift, if any
func (d *Day) Assignee(shift string) (string, bool) {
	name := d.Mentors[shift]
	return name, name != ""
}

// Recalculate recomputes TotalHours and AssignedHours from the shift maps
func (d *Day) Recalculate() {
	d.TotalHours = 0
	d.AssignedHours = 0
	for _, sh := range d.Shifts {
		d.TotalHours += d.Hours[sh]
		if d.Mentors[sh] != "" {
			d.AssignedHours += d.Hours[sh]
		}
	}
}

// PayPeriod is a contiguous run of days aggregated for payroll
type PayPeriod struct {
	Days          []*Day  `json:"days" yaml:"days"`
	TotalHours    float64 `json:"total_hours" yaml:"total_hours"`
	AssignedHours float64 `json:"assigned_hours" yaml:"assigned_hours"`
}

// Recalculate sums the hours of the member days
func (p *PayPeriod) Recalculate() {
	p.TotalHours = 0
	p.AssignedHours = 0
	for _, d := range p.Days {
		p.TotalHours += d.TotalHours
		p.AssignedHours += d.AssignedHours
	}
}

// ScheduleResult is the outcome of one generation run
type ScheduleResult struct {
	Year               int           `json:"year" yaml:"year"`
	Month              int           `json:"month" yaml:"month"`
	AssignedDays       []*Day        `json:"assigned_days" yaml:"assigned_days"`
	Pay1               PayPeriod     `json:"pay1" yaml:"pay1"`
	Pay2               PayPeriod     `json:"pay2" yaml:"pay2"`
	Holidays           HolidayConfig `json:"holiday_config" yaml:"holiday_config"`
	Mentors            []*Mentor     `json:"mentors" yaml:"mentors"`
	ValidationMessages []string      `json:"validation_messages" yaml:"validation_messages"`
	FairnessScore      float64       `json:"fairness_score" yaml:"fairness_score"`

	mu sync.Mutex
}

// Lock serializes edits to the result
func (r *ScheduleResult) Lock() { r.mu.Lock() }

// Unlock releases the edit lock
func (r *ScheduleResult) Unlock() { r.mu.Unlock() }

// Mentor returns the roster entry with the given name
func (r *ScheduleResult) Mentor(name string) *Mentor {
	for _, m := range r.Mentors {
		if m.Name == name {
			return m
		}
	}
	return nil
}
