package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
)

func splitList(field string) []string {
	var out []string
	for _, part := range strings.Split(field, "|") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseMentorsCSV reads a roster with the columns name, hours_wanted_per_week
// (or hours_wanted), unavailable_weekdays, preferred_weekdays, hard_dates,
// auto_fill and show_on_calendar. List columns are "|" separated.
func ParseMentorsCSV(r io.Reader) (map[string]models.MentorInput, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read mentors header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("mentors file needs a name column")
	}

	get := func(record []string, col string) string {
		if i, ok := cols[col]; ok && i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	roster := make(map[string]models.MentorInput)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		name := get(record, "name")
		if name == "" {
			continue
		}
		in := models.MentorInput{
			UnavailableWeekdays: splitList(get(record, "unavailable_weekdays")),
			PreferredWeekdays:   splitList(get(record, "preferred_weekdays")),
		}
		for _, col := range []string{"hours_wanted_per_week", "hours_wanted"} {
			if v := get(record, col); v != "" {
				hours, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %s: %w", line, col, err)
				}
				if col == "hours_wanted" {
					in.HoursWanted = &hours
				} else {
					in.HoursWantedPerWeek = &hours
				}
			}
		}
		for _, d := range splitList(get(record, "hard_dates")) {
			day, err := strconv.Atoi(d)
			if err != nil {
				return nil, fmt.Errorf("line %d: hard_dates: %w", line, err)
			}
			in.HardDates = append(in.HardDates, day)
		}
		in.AutoFill, _ = strconv.ParseBool(get(record, "auto_fill"))
		in.ShowOnCalendar, _ = strconv.ParseBool(get(record, "show_on_calendar"))

		if _, dup := roster[name]; dup {
			return nil, fmt.Errorf("line %d: duplicate mentor %q", line, name)
		}
		roster[name] = in
	}
	return roster, nil
}

// WriteScheduleCSV exports one row per open shift
func WriteScheduleCSV(w io.Writer, r *models.ScheduleResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "weekday", "season", "pay_period", "shift", "hours", "mentor"}); err != nil {
		return err
	}

	periods := [][]*models.Day{r.Pay1.Days, r.Pay2.Days}
	for i, days := range periods {
		for _, day := range days {
			for _, shift := range day.Shifts {
				name, _ := day.Assignee(shift)
				if err := writer.Write([]string{
					day.Date,
					day.Weekday,
					day.Season,
					strconv.Itoa(i + 1),
					shift,
					strconv.FormatFloat(day.Hours[shift], 'f', 2, 64),
					name,
				}); err != nil {
					return err
				}
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
