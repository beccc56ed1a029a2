package scheduler

import (
	"fmt"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
)

// ReassignShift replaces the mentor on one shift of one day. An empty
// mentor clears the slot. Only that day's assigned hours and its pay
// period's totals are recomputed; the previous and new mentors' hours move
// with the slot. Double booking is not checked.
func ReassignShift(r *models.ScheduleResult, day int, shift, mentor string) error {
	r.Lock()
	defer r.Unlock()

	var target *models.Day
	for _, d := range r.AssignedDays {
		if d.Day == day {
			target = d
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: day %d", ErrNotFound, day)
	}
	if _, open := target.Hours[shift]; !open {
		return fmt.Errorf("%w: %s is not open on %s", ErrNotFound, shift, target.Date)
	}

	var next *models.Mentor
	if mentor != "" {
		if next = r.Mentor(mentor); next == nil {
			return fmt.Errorf("%w: mentor %q", ErrNotFound, mentor)
		}
	}

	hours := target.Hours[shift]
	if prevName, ok := target.Assignee(shift); ok {
		if prev := r.Mentor(prevName); prev != nil {
			prev.HoursAssigned -= hours
			prev.ShiftsAssigned--
			prev.DaysLeft++
		}
	}
	if next != nil {
		next.HoursAssigned += hours
		next.ShiftsAssigned++
		next.DaysLeft--
	}

	setSlot(target, shift, mentor)
	for _, period := range []*models.PayPeriod{&r.Pay1, &r.Pay2} {
		for _, d := range period.Days {
			if d.Day == day {
				setSlot(d, shift, mentor)
				period.Recalculate()
			}
		}
	}
	return nil
}

// setSlot is idempotent so Day pointers shared between AssignedDays and a
// pay period are safe to update twice.
func setSlot(d *models.Day, shift, mentor string) {
	if d.Mentors == nil {
		d.Mentors = make(map[string]string, len(d.Shifts))
	}
	d.Mentors[shift] = mentor
	d.Recalculate()
}
