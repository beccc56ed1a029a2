package scheduler

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
)

// Defaults for Options
const (
	DefaultPayPeriodLength    = 15
	DefaultDeviationThreshold = 5.0
)

// Options tunes a generation run
type Options struct {
	PayPeriodLength int
	// PreferenceTolerance lets a preferred mentor overshoot their target by this many hours
	PreferenceTolerance float64
	// DeviationThreshold is the distance from target, in hours, still reported as on target
	DeviationThreshold float64
}

// DefaultOptions returns the standard run options
func DefaultOptions() Options {
	return Options{
		PayPeriodLength:    DefaultPayPeriodLength,
		DeviationThreshold: DefaultDeviationThreshold,
	}
}

func (o Options) validate() error {
	if o.PayPeriodLength <= 0 {
		return fmt.Errorf("%w: pay period length must be positive, got %d", ErrConfiguration, o.PayPeriodLength)
	}
	if o.PreferenceTolerance < 0 {
		return fmt.Errorf("%w: preference tolerance must not be negative", ErrConfiguration)
	}
	if o.DeviationThreshold < 0 {
		return fmt.Errorf("%w: deviation threshold must not be negative", ErrConfiguration)
	}
	return nil
}

// Scheduler handles the logic of assigning mentors to the shifts of a month
type Scheduler struct {
	Days      []*models.Day
	Pool      *MentorPool
	Tolerance float64
}

// NewScheduler creates a new scheduler instance
func NewScheduler(days []*models.Day, pool *MentorPool, tolerance float64) *Scheduler {
	return &Scheduler{
		Days:      days,
		Pool:      pool,
		Tolerance: tolerance,
	}
}

// Assign walks the days in calendar order and each day's shifts in catalog
// order, filling every shift that has an eligible mentor.
func (s *Scheduler) Assign() {
	for _, day := range s.Days {
		for _, shift := range day.Shifts {
			best := s.pick(day, shift)
			if best == nil {
				continue
			}
			day.Mentors[shift] = best.Name
			s.Pool.RecordAssignment(best, day.Hours[shift])
		}
		day.Recalculate()
	}
}

// pick applies the priority chain: preferred mentors still within target,
// then everyone eligible; largest deficit first, ties by name.
func (s *Scheduler) pick(day *models.Day, shift string) *models.Mentor {
	eligible := s.Pool.Eligible(day, shift)
	if len(eligible) == 0 {
		return nil
	}

	wd, err := ParseWeekday(day.Weekday)
	if err != nil {
		return nil
	}
	hours := day.Hours[shift]

	var preferred []*models.Mentor
	for _, m := range eligible {
		if s.Pool.Prefers(m, wd) && m.HoursAssigned+hours <= s.Pool.Target(m)+s.Tolerance {
			preferred = append(preferred, m)
		}
	}

	candidates := eligible
	if len(preferred) > 0 {
		candidates = preferred
	}

	// candidates are sorted by name, so strict comparison keeps the alphabetical tie-break
	best := candidates[0]
	bestDeficit := s.Pool.Target(best) - best.HoursAssigned
	for _, m := range candidates[1:] {
		if d := s.Pool.Target(m) - m.HoursAssigned; d > bestDeficit {
			best = m
			bestDeficit = d
		}
	}
	return best
}

// prepare validates the input and builds the resolved calendar and mentor
// pool. Every configuration and data error surfaces here.
func prepare(in models.ScheduleInput, opts Options) ([]*models.Day, *MentorPool, Options, error) {
	if in.PayPeriodLength != 0 {
		opts.PayPeriodLength = in.PayPeriodLength
	}
	if err := opts.validate(); err != nil {
		return nil, nil, opts, err
	}

	days, err := BuildCalendar(in.Year, in.Month, in.HolidayConfig.Dates, in.SeasonalShiftInfo)
	if err != nil {
		return nil, nil, opts, err
	}
	catalog, err := NewShiftCatalog(in.SeasonalShiftInfo, in.HolidayConfig)
	if err != nil {
		return nil, nil, opts, err
	}
	for _, day := range days {
		if err := catalog.Resolve(day); err != nil {
			return nil, nil, opts, err
		}
	}

	mentors, err := NormalizeRoster(in.MentorRoster)
	if err != nil {
		return nil, nil, opts, err
	}
	pool, err := NewMentorPool(mentors, in.Year, in.Month)
	if err != nil {
		return nil, nil, opts, err
	}
	return days, pool, opts, nil
}

// CheckInput reports the error Generate would return, without assigning
func CheckInput(in models.ScheduleInput, opts Options) error {
	_, _, _, err := prepare(in, opts)
	return err
}

// Generate runs the whole pipeline for one month: calendar, catalog,
// assignment, pay periods and validation. Configuration and data errors
// are returned before any shift is assigned.
func Generate(in models.ScheduleInput, opts Options) (*models.ScheduleResult, error) {
	days, pool, opts, err := prepare(in, opts)
	if err != nil {
		return nil, err
	}

	s := NewScheduler(days, pool, opts.PreferenceTolerance)
	s.Assign()

	pay1, pay2 := SplitPayPeriods(days, opts.PayPeriodLength)
	result := &models.ScheduleResult{
		Year:         in.Year,
		Month:        in.Month,
		AssignedDays: days,
		Pay1:         pay1,
		Pay2:         pay2,
		Holidays:     copyHolidays(in.HolidayConfig),
		Mentors:      pool.Mentors(),
	}
	result.FairnessScore = CalculateFairnessScore(result)
	result.ValidationMessages = Validate(result, opts.DeviationThreshold)
	return result, nil
}

func copyHolidays(h models.HolidayConfig) models.HolidayConfig {
	out := models.HolidayConfig{
		ShiftHours: make(map[string]float64, len(h.ShiftHours)),
		Dates:      append([]int{}, h.Dates...),
	}
	for k, v := range h.ShiftHours {
		out.ShiftHours[k] = v
	}
	return out
}

// HoursTarget returns the mentor's monthly target for the result's month
func HoursTarget(m *models.Mentor, year, month int) float64 {
	return m.HoursWantedPerWeek * WeeksInMonth(year, month)
}

// CalculateFairnessScore returns a percentage (0-100) representing how evenly
// mentors are served relative to their targets. 100% means every mentor
// reached the same fraction of their target.
func CalculateFairnessScore(r *models.ScheduleResult) float64 {
	var ratios []float64
	for _, m := range r.Mentors {
		target := HoursTarget(m, r.Year, r.Month)
		if target > 0 {
			ratios = append(ratios, m.HoursAssigned/target)
		}
	}
	if len(ratios) == 0 {
		return 100.0
	}

	mean, stdDev := stat.PopMeanStdDev(ratios, nil)
	if mean == 0 {
		return 100.0
	}

	score := (1.0 - (stdDev / mean)) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}
