package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
)

// NormalizeMentor converts a roster entry into the canonical mentor record.
// hours_wanted_per_week takes precedence over the legacy hours_wanted.
func NormalizeMentor(name string, in models.MentorInput) (*models.Mentor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: mentor name is required", ErrData)
	}

	m := &models.Mentor{
		Name:           name,
		HardDates:      append([]int{}, in.HardDates...),
		AutoFill:       in.AutoFill,
		ShowOnCalendar: in.ShowOnCalendar,
	}
	switch {
	case in.HoursWantedPerWeek != nil:
		m.HoursWantedPerWeek = *in.HoursWantedPerWeek
	case in.HoursWanted != nil:
		m.HoursWantedPerWeek = *in.HoursWanted
	}
	if m.HoursWantedPerWeek < 0 {
		return nil, fmt.Errorf("%w: mentor %q wants negative hours", ErrData, name)
	}

	var err error
	if m.UnavailableWeekdays, err = canonicalWeekdays(in.UnavailableWeekdays); err != nil {
		return nil, fmt.Errorf("mentor %q: %w", name, err)
	}
	if m.PreferredWeekdays, err = canonicalWeekdays(in.PreferredWeekdays); err != nil {
		return nil, fmt.Errorf("mentor %q: %w", name, err)
	}
	return m, nil
}

// NormalizeRoster converts a roster map into mentors sorted by name
func NormalizeRoster(roster map[string]models.MentorInput) ([]*models.Mentor, error) {
	mentors := make([]*models.Mentor, 0, len(roster))
	seen := make(map[string]bool, len(roster))
	for name, in := range roster {
		m, err := NormalizeMentor(name, in)
		if err != nil {
			return nil, err
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("%w: duplicate mentor %q", ErrData, m.Name)
		}
		seen[m.Name] = true
		mentors = append(mentors, m)
	}
	sort.Slice(mentors, func(i, j int) bool { return mentors[i].Name < mentors[j].Name })
	return mentors, nil
}

// MentorInputFrom converts a canonical mentor back to the wire shape
func MentorInputFrom(m *models.Mentor) models.MentorInput {
	hours := m.HoursWantedPerWeek
	return models.MentorInput{
		UnavailableWeekdays: append([]string{}, m.UnavailableWeekdays...),
		PreferredWeekdays:   append([]string{}, m.PreferredWeekdays...),
		HardDates:           append([]int{}, m.HardDates...),
		HoursWantedPerWeek:  &hours,
		AutoFill:            m.AutoFill,
		ShowOnCalendar:      m.ShowOnCalendar,
	}
}

func canonicalWeekdays(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, n := range names {
		wd, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		out = append(out, wd.String())
	}
	return out, nil
}

type poolEntry struct {
	mentor      *models.Mentor
	target      float64
	hard        map[int]bool
	unavailable map[time.Weekday]bool
	preferred   map[time.Weekday]bool
}

// MentorPool holds run-scoped copies of the roster and their accumulators
type MentorPool struct {
	entries []*poolEntry
	byName  map[string]*poolEntry
}

// NewMentorPool copies the mentors, resets their accumulators and computes
// each mentor's monthly hours target and available days.
func NewMentorPool(mentors []*models.Mentor, year, month int) (*MentorPool, error) {
	if err := checkMonth(year, month); err != nil {
		return nil, err
	}
	weeks := WeeksInMonth(year, month)
	n := DaysInMonth(year, month)

	p := &MentorPool{byName: make(map[string]*poolEntry, len(mentors))}
	for _, src := range mentors {
		if _, dup := p.byName[src.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate mentor %q", ErrData, src.Name)
		}

		m := *src
		m.HardDates = append([]int{}, src.HardDates...)
		m.UnavailableWeekdays = append([]string{}, src.UnavailableWeekdays...)
		m.PreferredWeekdays = append([]string{}, src.PreferredWeekdays...)
		m.HoursAssigned = 0
		m.ShiftsAssigned = 0

		e := &poolEntry{
			mentor:      &m,
			target:      m.HoursWantedPerWeek * weeks,
			hard:        make(map[int]bool, len(m.HardDates)),
			unavailable: make(map[time.Weekday]bool, len(m.UnavailableWeekdays)),
			preferred:   make(map[time.Weekday]bool, len(m.PreferredWeekdays)),
		}
		for _, d := range m.HardDates {
			e.hard[d] = true
		}
		for _, name := range m.UnavailableWeekdays {
			wd, err := ParseWeekday(name)
			if err != nil {
				return nil, fmt.Errorf("mentor %q: %w", m.Name, err)
			}
			e.unavailable[wd] = true
		}
		for _, name := range m.PreferredWeekdays {
			wd, err := ParseWeekday(name)
			if err != nil {
				return nil, fmt.Errorf("mentor %q: %w", m.Name, err)
			}
			e.preferred[wd] = true
		}

		m.DaysLeft = 0
		for d := 1; d <= n; d++ {
			wd := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday()
			if !e.hard[d] && !e.unavailable[wd] {
				m.DaysLeft++
			}
		}

		p.entries = append(p.entries, e)
		p.byName[m.Name] = e
	}
	sort.Slice(p.entries, func(i, j int) bool { return p.entries[i].mentor.Name < p.entries[j].mentor.Name })
	return p, nil
}

// Mentors returns the run-scoped mentor copies, sorted by name
func (p *MentorPool) Mentors() []*models.Mentor {
	out := make([]*models.Mentor, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.mentor
	}
	return out
}

// Target returns the mentor's monthly hours target
func (p *MentorPool) Target(m *models.Mentor) float64 {
	if e, ok := p.byName[m.Name]; ok {
		return e.target
	}
	return 0
}

// Prefers reports whether the mentor prefers working on weekday
func (p *MentorPool) Prefers(m *models.Mentor, weekday time.Weekday) bool {
	e, ok := p.byName[m.Name]
	return ok && e.preferred[weekday]
}

// Eligible returns the mentors, sorted by name, who may take shift on day:
// not on a hard date, not on an unavailable weekday and not already
// holding another shift that day.
func (p *MentorPool) Eligible(day *models.Day, shift string) []*models.Mentor {
	wd, err := ParseWeekday(day.Weekday)
	if err != nil {
		return nil
	}

	busy := make(map[string]bool, len(day.Mentors))
	for sh, name := range day.Mentors {
		if sh != shift && name != "" {
			busy[name] = true
		}
	}

	var out []*models.Mentor
	for _, e := range p.entries {
		if e.hard[day.Day] || e.unavailable[wd] || busy[e.mentor.Name] {
			continue
		}
		out = append(out, e.mentor)
	}
	return out
}

// RecordAssignment credits the mentor with a shift of the given hours
func (p *MentorPool) RecordAssignment(m *models.Mentor, hours float64) {
	m.HoursAssigned += hours
	m.ShiftsAssigned++
	m.DaysLeft--
}
