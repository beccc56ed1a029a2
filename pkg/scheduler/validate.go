package scheduler

import (
	"fmt"
	"math"
	"sort"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
)

// SuccessMarker prefixes messages for mentors who met their target
const SuccessMarker = "✓"

// Validate inspects a generated schedule without modifying it. It reports
// every unfilled shift in day order, then each mentor by name: on target,
// under or over target, and whether they received no shifts at all.
func Validate(r *models.ScheduleResult, threshold float64) []string {
	messages := []string{}

	for _, day := range r.AssignedDays {
		for _, shift := range day.Shifts {
			if _, ok := day.Assignee(shift); !ok {
				messages = append(messages, fmt.Sprintf("Warning: %s (%s) %s is unfilled", day.Date, day.Weekday, shift))
			}
		}
	}

	mentors := append([]*models.Mentor{}, r.Mentors...)
	sort.Slice(mentors, func(i, j int) bool { return mentors[i].Name < mentors[j].Name })

	shiftCounts := make(map[string]int, len(mentors))
	for _, day := range r.AssignedDays {
		for _, shift := range day.Shifts {
			if name, ok := day.Assignee(shift); ok {
				shiftCounts[name]++
			}
		}
	}

	for _, m := range mentors {
		target := HoursTarget(m, r.Year, r.Month)
		diff := m.HoursAssigned - target
		if math.Abs(diff) <= threshold {
			messages = append(messages, fmt.Sprintf("%s %s: %.1f hours assigned (target %.1f)", SuccessMarker, m.Name, m.HoursAssigned, target))
		} else {
			direction := "under"
			if diff > 0 {
				direction = "over"
			}
			messages = append(messages, fmt.Sprintf("Warning: %s is %.1f hours %s target (%.1f of %.1f)", m.Name, math.Abs(diff), direction, m.HoursAssigned, target))
		}
		if shiftCounts[m.Name] == 0 {
			messages = append(messages, fmt.Sprintf("Info: %s was not assigned any shifts this month", m.Name))
		}
	}
	return messages
}

// UnfilledShifts counts the open shifts with no mentor
func UnfilledShifts(r *models.ScheduleResult) int {
	n := 0
	for _, day := range r.AssignedDays {
		for _, shift := range day.Shifts {
			if _, ok := day.Assignee(shift); !ok {
				n++
			}
		}
	}
	return n
}
